package glob

import (
	"github.com/buildbarn/bb-pathlib/pkg/filesystem"
	"github.com/buildbarn/bb-pathlib/pkg/filesystem/path"
)

// preciseSelector processes pattern components that contain no
// wildcards. Instead of listing the directory, the child is looked up
// directly.
type preciseSelector struct {
	name            string
	directoriesOnly bool
	successor       selector
}

func (s *preciseSelector) selectFrom(c *selectContext, parent path.PurePath) bool {
	child := parent.Append(s.name)
	info, err := c.accessor.Stat(child.String())
	if err != nil {
		return c.handleError(child, err)
	}
	if s.directoriesOnly && info.Type() != filesystem.FileTypeDirectory {
		return true
	}
	return s.successor.selectFrom(c, child)
}

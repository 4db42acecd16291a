package glob

import (
	"github.com/buildbarn/bb-pathlib/pkg/filesystem"
	"github.com/buildbarn/bb-pathlib/pkg/filesystem/path"
)

// wildcardSelector processes pattern components containing "*", "?"
// or character classes, by listing the directory and matching the
// names of all entries against the pattern.
type wildcardSelector struct {
	flavour         path.Flavour
	pattern         string
	directoriesOnly bool
	successor       selector
}

func (s *wildcardSelector) selectFrom(c *selectContext, parent path.PurePath) bool {
	entries, err := c.accessor.ReadDir(parent.String())
	if err != nil {
		return c.handleError(parent, err)
	}
	for _, entry := range entries {
		name, ok := path.NewComponent(entry.Name())
		if !ok || !path.MatchComponent(s.pattern, s.flavour.CaseFold(name.String())) {
			continue
		}
		child := parent.Append(name.String())
		if s.directoriesOnly {
			switch entry.Type() {
			case filesystem.FileTypeDirectory:
			case filesystem.FileTypeSymlink:
				// Symbolic links to directories are followed.
				isDirectory, ok := c.isDirectory(child)
				if !ok {
					return false
				}
				if !isDirectory {
					continue
				}
			default:
				continue
			}
		}
		if !s.successor.selectFrom(c, child) {
			return false
		}
	}
	return true
}

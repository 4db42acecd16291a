package glob

import (
	"github.com/buildbarn/bb-pathlib/pkg/filesystem/path"
)

// terminatingSelector is placed at the end of every chain. It reports
// every path that reaches it as a match.
type terminatingSelector struct{}

func (terminatingSelector) selectFrom(c *selectContext, parent path.PurePath) bool {
	return c.emit(parent)
}

package glob

import (
	"iter"

	"github.com/buildbarn/bb-pathlib/pkg/filesystem"
	"github.com/buildbarn/bb-pathlib/pkg/filesystem/path"
	"github.com/buildbarn/bb-pathlib/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Selector of paths matching a compiled pattern.
type Selector interface {
	// Select returns all paths below a starting directory that match
	// the pattern. Paths are computed lazily. Every iteration over the
	// returned sequence traverses the file system anew, and breaking
	// out of the iteration stops all further file system access.
	//
	// If the starting path is not a directory, the sequence is empty.
	// Errors other than ones indicating that a file does not exist end
	// the sequence.
	Select(accessor filesystem.Accessor, start path.PurePath, options ...Option) iter.Seq2[path.PurePath, error]
}

// selectContext holds the state of a single traversal.
type selectContext struct {
	accessor filesystem.Accessor
	options  options
	yield    func(path.PurePath, error) bool
	yielded  map[string]struct{}
}

// emit reports a matching path to the consumer, unless it has been
// reported before. It returns false if the traversal should stop.
func (c *selectContext) emit(p path.PurePath) bool {
	key := p.Key()
	if _, ok := c.yielded[key]; ok {
		return true
	}
	c.yielded[key] = struct{}{}
	return c.yield(p, nil)
}

// handleError determines how an error returned by the accessor
// affects the traversal. Errors indicating that files are absent prune
// the current branch. All other errors are reported to the consumer,
// after which the traversal stops.
func (c *selectContext) handleError(p path.PurePath, err error) bool {
	switch filesystem.GetErrorKind(err) {
	case filesystem.ErrorKindNotFound, filesystem.ErrorKindNotADirectory:
		return true
	case filesystem.ErrorKindPermissionDenied:
		if l := c.options.permissionDeniedLogger; l != nil {
			l.Log(util.StatusWrapf(err, "Skipping %#v", p.String()))
			return true
		}
	}
	c.yield(path.PurePath{}, err)
	return false
}

// isDirectory returns whether a path refers to a directory, following
// symbolic links. The boolean return value is false if the traversal
// should stop.
func (c *selectContext) isDirectory(p path.PurePath) (bool, bool) {
	info, err := c.accessor.Stat(p.String())
	if err != nil {
		return false, c.handleError(p, err)
	}
	return info.Type() == filesystem.FileTypeDirectory, true
}

// selector is a node in a chain of selectors, each of them processing
// a single component of the pattern.
type selector interface {
	// selectFrom applies the selector against a directory. It
	// returns false if the traversal should stop.
	selectFrom(c *selectContext, parent path.PurePath) bool
}

type chainSelector struct {
	flavour path.Flavour
	first   selector
}

func (s *chainSelector) Select(accessor filesystem.Accessor, start path.PurePath, options ...Option) iter.Seq2[path.PurePath, error] {
	return func(yield func(path.PurePath, error) bool) {
		if start.Flavour() != s.flavour {
			yield(path.PurePath{}, status.Errorf(
				codes.InvalidArgument,
				"Pattern of flavour %#v cannot be applied to path %#v of flavour %#v",
				s.flavour.String(),
				start.String(),
				start.Flavour().String()))
			return
		}

		c := selectContext{
			accessor: accessor,
			yield:    yield,
			yielded:  map[string]struct{}{},
		}
		for _, o := range options {
			o(&c.options)
		}
		if isDirectory, ok := c.isDirectory(start); ok && isDirectory {
			s.first.selectFrom(&c, start)
		}
	}
}

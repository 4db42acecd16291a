package glob

import (
	"iter"
	"strings"

	"github.com/buildbarn/bb-pathlib/pkg/filesystem"
	"github.com/buildbarn/bb-pathlib/pkg/filesystem/path"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewSelector creates a Selector for a pattern that has already been
// split into components. Consecutive "**" components are treated as a
// single one.
func NewSelector(flavour path.Flavour, patternParts []string) (Selector, error) {
	var next selector = terminatingSelector{}
	for i := len(patternParts) - 1; i >= 0; i-- {
		part := patternParts[i]
		directoriesOnly := i < len(patternParts)-1
		switch {
		case part == "**":
			if _, ok := next.(*recursiveWildcardSelector); !ok {
				next = &recursiveWildcardSelector{successor: next}
			}
		case strings.Contains(part, "**"):
			return nil, status.Errorf(codes.InvalidArgument, "Invalid pattern component %#v: \"**\" can only be an entire path component", part)
		case path.IsWildcardPattern(part):
			next = &wildcardSelector{
				flavour:         flavour,
				pattern:         flavour.CaseFold(part),
				directoriesOnly: directoriesOnly,
				successor:       next,
			}
		default:
			next = &preciseSelector{
				name:            part,
				directoriesOnly: directoriesOnly,
				successor:       next,
			}
		}
	}
	return &chainSelector{
		flavour: flavour,
		first:   next,
	}, nil
}

// Compile a pattern string into a Selector. Patterns are relative to
// the directory against which the selector is applied. If recursive is
// set, the pattern is matched against all subdirectories as well, as
// if it were prefixed with "**".
func Compile(flavour path.Flavour, pattern string, recursive bool) (Selector, error) {
	if pattern == "" {
		return nil, status.Error(codes.InvalidArgument, "Empty pattern")
	}
	drive, root, patternParts, err := flavour.ParseParts(pattern)
	if err != nil {
		return nil, err
	}
	if drive != "" || root != "" {
		return nil, status.Errorf(codes.Unimplemented, "Non-relative pattern %#v is unsupported", pattern)
	}
	if recursive {
		patternParts = append([]string{"**"}, patternParts...)
	}
	return NewSelector(flavour, patternParts)
}

func selectOrFail(accessor filesystem.Accessor, start path.PurePath, pattern string, recursive bool, options []Option) iter.Seq2[path.PurePath, error] {
	s, err := Compile(start.Flavour(), pattern, recursive)
	if err != nil {
		return func(yield func(path.PurePath, error) bool) {
			yield(path.PurePath{}, err)
		}
	}
	return s.Select(accessor, start, options...)
}

// Glob returns all paths below a starting directory that match a
// relative pattern. Errors in the pattern are returned as the first
// and only element of the sequence, without accessing the file system.
func Glob(accessor filesystem.Accessor, start path.PurePath, pattern string, options ...Option) iter.Seq2[path.PurePath, error] {
	return selectOrFail(accessor, start, pattern, false, options)
}

// RecursiveGlob is identical to Glob, except that the pattern is
// matched against the starting directory and all of its
// subdirectories.
func RecursiveGlob(accessor filesystem.Accessor, start path.PurePath, pattern string, options ...Option) iter.Seq2[path.PurePath, error] {
	return selectOrFail(accessor, start, pattern, true, options)
}

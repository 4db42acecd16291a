package pathlib

import (
	"iter"

	"github.com/buildbarn/bb-pathlib/pkg/clock"
	"github.com/buildbarn/bb-pathlib/pkg/filesystem"
	"github.com/buildbarn/bb-pathlib/pkg/filesystem/glob"
	"github.com/buildbarn/bb-pathlib/pkg/filesystem/path"
)

// Path is a PurePath that is bound to a file system. In addition to
// the lexical operations provided by PurePath, it provides methods for
// inspecting and modifying the file it refers to.
//
// Lexical operations are overridden to return a Path that is bound to
// the same file system.
type Path struct {
	path.PurePath
	accessor filesystem.Accessor
	clock    clock.Clock
}

// New parses one or more pathname strings native to the local
// operating system, returning a Path that accesses the file system
// through the provided Accessor.
func New(accessor filesystem.Accessor, segments ...string) (Path, error) {
	return NewWithFlavour(accessor, path.LocalFlavour, segments...)
}

// NewWithFlavour is identical to New, except that the flavour of the
// pathname strings is provided explicitly.
func NewWithFlavour(accessor filesystem.Accessor, flavour path.Flavour, segments ...string) (Path, error) {
	p, err := path.NewPurePath(flavour, segments...)
	if err != nil {
		return Path{}, err
	}
	return FromPurePath(accessor, p), nil
}

// FromPurePath binds an existing PurePath to a file system.
func FromPurePath(accessor filesystem.Accessor, p path.PurePath) Path {
	return Path{
		PurePath: p,
		accessor: accessor,
		clock:    clock.SystemClock,
	}
}

// Cwd returns the current working directory.
func Cwd(accessor filesystem.Accessor) (Path, error) {
	return cwd(accessor, path.LocalFlavour)
}

func cwd(accessor filesystem.Accessor, flavour path.Flavour) (Path, error) {
	wd, err := accessor.Getwd()
	if err != nil {
		return Path{}, err
	}
	return NewWithFlavour(accessor, flavour, wd)
}

// Home returns the home directory of the current user.
func Home(accessor filesystem.Accessor) (Path, error) {
	return home(accessor, path.LocalFlavour, "")
}

func home(accessor filesystem.Accessor, flavour path.Flavour, user string) (Path, error) {
	dir, err := accessor.UserHomeDir(user)
	if err != nil {
		return Path{}, err
	}
	return NewWithFlavour(accessor, flavour, dir)
}

func (p Path) derive(pp path.PurePath) Path {
	return Path{
		PurePath: pp,
		accessor: p.accessor,
		clock:    p.clock,
	}
}

func (p Path) deriveWithError(pp path.PurePath, err error) (Path, error) {
	if err != nil {
		return Path{}, err
	}
	return p.derive(pp), nil
}

// Accessor returns the Accessor through which the path accesses the
// file system.
func (p Path) Accessor() filesystem.Accessor {
	return p.accessor
}

// Parent returns the logical parent of the path.
func (p Path) Parent() Path {
	return p.derive(p.PurePath.Parent())
}

// Parents returns all logical ancestors of the path.
func (p Path) Parents() []Path {
	pureParents := p.PurePath.Parents()
	parents := make([]Path, 0, len(pureParents))
	for _, parent := range pureParents {
		parents = append(parents, p.derive(parent))
	}
	return parents
}

// Join appends one or more paths to the current path.
func (p Path) Join(others ...path.PurePath) Path {
	return p.derive(p.PurePath.Join(others...))
}

// JoinPath parses one or more pathname strings and appends them to the
// current path.
func (p Path) JoinPath(segments ...string) (Path, error) {
	return p.deriveWithError(p.PurePath.JoinPath(segments...))
}

// Append adds a single pathname component to the path without parsing
// it.
func (p Path) Append(name string) Path {
	return p.derive(p.PurePath.Append(name))
}

// WithName returns a copy of the path with its final component replaced.
func (p Path) WithName(name string) (Path, error) {
	return p.deriveWithError(p.PurePath.WithName(name))
}

// WithStem returns a copy of the path with its stem replaced.
func (p Path) WithStem(stem string) (Path, error) {
	return p.deriveWithError(p.PurePath.WithStem(stem))
}

// WithSuffix returns a copy of the path with its suffix replaced.
func (p Path) WithSuffix(suffix string) (Path, error) {
	return p.deriveWithError(p.PurePath.WithSuffix(suffix))
}

// RelativeTo computes a version of the path relative to another path.
func (p Path) RelativeTo(others ...string) (Path, error) {
	return p.deriveWithError(p.PurePath.RelativeTo(others...))
}

// Normalize lexically removes ".." components from the path.
func (p Path) Normalize() Path {
	return p.derive(p.PurePath.Normalize())
}

// IterDir returns the entries of the directory, excluding "." and
// "..". The directory is read once iteration starts. An error reading
// the directory is returned as the only element of the sequence.
func (p Path) IterDir() iter.Seq2[Path, error] {
	return func(yield func(Path, error) bool) {
		entries, err := p.accessor.ReadDir(p.String())
		if err != nil {
			yield(Path{}, err)
			return
		}
		for _, entry := range entries {
			if name := entry.Name(); name != "." && name != ".." {
				if !yield(p.Append(name), nil) {
					return
				}
			}
		}
	}
}

func (p Path) bindSequence(seq iter.Seq2[path.PurePath, error]) iter.Seq2[Path, error] {
	return func(yield func(Path, error) bool) {
		for match, err := range seq {
			if err != nil {
				yield(Path{}, err)
				return
			}
			if !yield(p.derive(match), nil) {
				return
			}
		}
	}
}

// Glob returns all existing files below the directory that match a
// relative pattern.
func (p Path) Glob(pattern string, options ...glob.Option) iter.Seq2[Path, error] {
	return p.bindSequence(glob.Glob(p.accessor, p.PurePath, pattern, options...))
}

// RGlob returns all existing files below the directory that match a
// relative pattern in the directory itself, or any of its
// subdirectories.
func (p Path) RGlob(pattern string, options ...glob.Option) iter.Seq2[Path, error] {
	return p.bindSequence(glob.RecursiveGlob(p.accessor, p.PurePath, pattern, options...))
}

// Absolute returns an absolute version of the path by prefixing it
// with the current working directory. No normalization is performed,
// meaning that "." and ".." components are retained.
func (p Path) Absolute() (Path, error) {
	if p.IsAbsolute() {
		return p, nil
	}
	wd, err := cwd(p.accessor, p.Flavour())
	if err != nil {
		return Path{}, err
	}
	return p.derive(wd.PurePath.Join(p.PurePath)), nil
}

// Resolve returns an absolute version of the path, having all symbolic
// links resolved and all ".." components removed.
//
// If strict is set, all components of the path must exist. Otherwise,
// resolution of symbolic links stops at the first component that does
// not exist, and the remainder of the path is appended as is.
func (p Path) Resolve(strict bool) (Path, error) {
	absolute, err := p.Absolute()
	if err != nil {
		return Path{}, err
	}
	resolved, ok, err := p.accessor.ResolveSymlinks(absolute.String(), strict)
	if err != nil {
		return Path{}, err
	}
	if !ok {
		// Symbolic links cannot be resolved on this file system.
		// Continue with the absolute path, but still require that
		// it exists.
		if strict {
			if _, err := p.accessor.Stat(absolute.String()); err != nil {
				return Path{}, err
			}
		}
		return absolute.Normalize(), nil
	}
	resolvedPath, err := path.NewPurePath(p.Flavour(), resolved)
	if err != nil {
		return Path{}, err
	}
	return p.derive(resolvedPath.Normalize()), nil
}

// ExpandUser replaces a leading "~" or "~user" component with the home
// directory of the current user or the named user, respectively.
// Paths not starting with such a component are returned as is.
func (p Path) ExpandUser() (Path, error) {
	parts := p.Parts()
	if p.Anchor() != "" || len(parts) == 0 || parts[0][0] != '~' {
		return p, nil
	}
	homeDir, err := home(p.accessor, p.Flavour(), parts[0][1:])
	if err != nil {
		return Path{}, err
	}
	expanded := p.derive(homeDir.PurePath)
	for _, part := range parts[1:] {
		expanded = expanded.Append(part)
	}
	return expanded, nil
}

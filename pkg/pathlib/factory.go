package pathlib

import (
	"github.com/buildbarn/bb-pathlib/pkg/clock"
	"github.com/buildbarn/bb-pathlib/pkg/filesystem"
	"github.com/buildbarn/bb-pathlib/pkg/filesystem/path"
)

// Factory of Path objects that share the same flavour, file system
// and clock.
type Factory struct {
	flavour  path.Flavour
	accessor filesystem.Accessor
	clock    clock.Clock
}

// NewFactory creates a Factory of Path objects. The clock is used to
// obtain timestamps for Path.Touch().
func NewFactory(flavour path.Flavour, accessor filesystem.Accessor, clock clock.Clock) *Factory {
	return &Factory{
		flavour:  flavour,
		accessor: accessor,
		clock:    clock,
	}
}

// Flavour of the pathname strings parsed by the Factory.
func (f *Factory) Flavour() path.Flavour {
	return f.flavour
}

// New parses one or more pathname strings as if they were joined
// together.
func (f *Factory) New(segments ...string) (Path, error) {
	p, err := path.NewPurePath(f.flavour, segments...)
	if err != nil {
		return Path{}, err
	}
	return f.FromPurePath(p)
}

// FromPurePath binds an existing PurePath to the file system. PurePaths
// of a different flavour are converted by reparsing their string
// representation.
func (f *Factory) FromPurePath(p path.PurePath) (Path, error) {
	if p.Flavour() != f.flavour {
		var err error
		if p, err = path.NewPurePath(f.flavour, p.String()); err != nil {
			return Path{}, err
		}
	}
	return Path{
		PurePath: p,
		accessor: f.accessor,
		clock:    f.clock,
	}, nil
}

// Cwd returns the current working directory.
func (f *Factory) Cwd() (Path, error) {
	wd, err := f.accessor.Getwd()
	if err != nil {
		return Path{}, err
	}
	return f.New(wd)
}

// Home returns the home directory of the current user.
func (f *Factory) Home() (Path, error) {
	dir, err := f.accessor.UserHomeDir("")
	if err != nil {
		return Path{}, err
	}
	return f.New(dir)
}

package configuration

import (
	"github.com/buildbarn/bb-pathlib/pkg/clock"
	cfg "github.com/buildbarn/bb-pathlib/pkg/configuration"
	"github.com/buildbarn/bb-pathlib/pkg/filesystem/path"
	"github.com/buildbarn/bb-pathlib/pkg/pathlib"
	"github.com/buildbarn/bb-pathlib/pkg/util"
)

// NewPathFactoryFromConfiguration creates a factory of paths based on a
// configuration message. Default values are applied to fields that are
// not set.
func NewPathFactoryFromConfiguration(configuration *cfg.PathFactoryConfiguration) (*pathlib.Factory, error) {
	filled := *configuration
	cfg.SetDefaultPathFactoryValues(&filled)

	flavour, err := path.ParseFlavour(filled.Flavour)
	if err != nil {
		return nil, err
	}
	accessor, err := NewAccessorFromConfiguration(filled.Accessor)
	if err != nil {
		return nil, util.StatusWrap(err, "Failed to create accessor")
	}
	return pathlib.NewFactory(flavour, accessor, clock.SystemClock), nil
}

package configuration

import (
	"github.com/buildbarn/bb-pathlib/pkg/util"
)

// AccessorConfiguration describes how the file system is accessed.
// Exactly one of its fields must be set.
type AccessorConfiguration struct {
	// Access the file system of the locally running operating
	// system.
	Local *LocalAccessorConfiguration `json:"local,omitempty"`
	// Wrap another accessor, exposing Prometheus metrics for all
	// operations performed against it.
	Metrics *MetricsAccessorConfiguration `json:"metrics,omitempty"`
}

// LocalAccessorConfiguration has no options.
type LocalAccessorConfiguration struct{}

// MetricsAccessorConfiguration is the configuration of an accessor
// that exposes Prometheus metrics.
type MetricsAccessorConfiguration struct {
	// The value of the "name" label of the metrics.
	Name    string                 `json:"name"`
	Backend *AccessorConfiguration `json:"backend"`
}

// PathFactoryConfiguration is the configuration from which factories
// of paths may be constructed.
type PathFactoryConfiguration struct {
	// The flavour of pathname strings: "unix", "windows" or "local".
	// Defaults to "local".
	Flavour string `json:"flavour,omitempty"`
	// The file system against which paths are resolved. Defaults to
	// the local file system.
	Accessor *AccessorConfiguration `json:"accessor,omitempty"`
}

// GetPathFactoryConfiguration loads a PathFactoryConfiguration from a
// Jsonnet file, filling in default values for fields that are not set.
func GetPathFactoryConfiguration(path string) (*PathFactoryConfiguration, error) {
	var configuration PathFactoryConfiguration
	if err := util.UnmarshalConfigurationFromFile(path, &configuration); err != nil {
		return nil, util.StatusWrapf(err, "Failed to read configuration from %#v", path)
	}
	SetDefaultPathFactoryValues(&configuration)
	return &configuration, nil
}

// SetDefaultPathFactoryValues fills in default values for fields of a
// PathFactoryConfiguration that are not set.
func SetDefaultPathFactoryValues(configuration *PathFactoryConfiguration) {
	if configuration.Flavour == "" {
		configuration.Flavour = "local"
	}
	if configuration.Accessor == nil {
		configuration.Accessor = &AccessorConfiguration{
			Local: &LocalAccessorConfiguration{},
		}
	}
}

package configuration

import (
	cfg "github.com/buildbarn/bb-pathlib/pkg/configuration"
	"github.com/buildbarn/bb-pathlib/pkg/filesystem"
	"github.com/buildbarn/bb-pathlib/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewAccessorFromConfiguration creates a file system accessor based on
// a configuration message.
func NewAccessorFromConfiguration(configuration *cfg.AccessorConfiguration) (filesystem.Accessor, error) {
	if configuration == nil {
		return nil, status.Error(codes.InvalidArgument, "Accessor configuration not specified")
	}
	switch {
	case configuration.Local != nil && configuration.Metrics != nil:
		return nil, status.Error(codes.InvalidArgument, "Accessor configuration contains multiple backends")
	case configuration.Local != nil:
		return filesystem.NewLocalAccessor(), nil
	case configuration.Metrics != nil:
		if configuration.Metrics.Name == "" {
			return nil, status.Error(codes.InvalidArgument, "Metrics accessor configuration has no name")
		}
		base, err := NewAccessorFromConfiguration(configuration.Metrics.Backend)
		if err != nil {
			return nil, util.StatusWrap(err, "Metrics accessor backend")
		}
		return filesystem.NewMetricsAccessor(base, configuration.Metrics.Name), nil
	default:
		return nil, status.Error(codes.InvalidArgument, "Configuration did not contain a supported accessor")
	}
}

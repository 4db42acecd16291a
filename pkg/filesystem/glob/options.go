package glob

import (
	"github.com/buildbarn/bb-pathlib/pkg/util"
)

type options struct {
	permissionDeniedLogger util.ErrorLogger
}

// Option can be provided to Selector.Select(), Glob() and
// RecursiveGlob() to alter the way directories are traversed.
type Option func(o *options)

// WithPermissionDeniedLogger causes directories that cannot be read
// or inspected due to insufficient permissions to be skipped. The error
// is reported to the provided logger. By default, such errors are
// returned to the caller and terminate the traversal.
func WithPermissionDeniedLogger(errorLogger util.ErrorLogger) Option {
	return func(o *options) {
		o.permissionDeniedLogger = errorLogger
	}
}

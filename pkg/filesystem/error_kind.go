package filesystem

import (
	"errors"
	"io/fs"
	"syscall"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorKind is a classification of errors returned by an Accessor.
type ErrorKind int

const (
	// ErrorKindOther is used for all errors that have no more
	// specific classification.
	ErrorKindOther ErrorKind = iota
	// ErrorKindNotFound indicates that a file does not exist.
	ErrorKindNotFound
	// ErrorKindNotADirectory indicates that a pathname component that
	// was expected to be a directory is some other kind of file.
	ErrorKindNotADirectory
	// ErrorKindPermissionDenied indicates that the file system denied
	// access.
	ErrorKindPermissionDenied
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindNotFound:
		return "NotFound"
	case ErrorKindNotADirectory:
		return "NotADirectory"
	case ErrorKindPermissionDenied:
		return "PermissionDenied"
	default:
		return "Other"
	}
}

// GetErrorKind classifies an error returned by an Accessor. Both system
// call errors and gRPC status errors are recognized.
func GetErrorKind(err error) ErrorKind {
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.EBADF):
		return ErrorKindNotFound
	case errors.Is(err, syscall.ENOTDIR):
		return ErrorKindNotADirectory
	case errors.Is(err, fs.ErrPermission):
		return ErrorKindPermissionDenied
	}
	switch status.Code(err) {
	case codes.NotFound:
		return ErrorKindNotFound
	case codes.PermissionDenied:
		return ErrorKindPermissionDenied
	}
	return ErrorKindOther
}

// IsIgnorableError returns true if an error indicates that a file does
// not exist, or that one of its parent directories is not a directory.
// Predicates such as Path.Exists() and Path.IsDir() treat these as
// false instead of failing.
func IsIgnorableError(err error) bool {
	switch GetErrorKind(err) {
	case ErrorKindNotFound, ErrorKindNotADirectory:
		return true
	default:
		return false
	}
}

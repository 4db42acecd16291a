package filesystem

import (
	"os"
	"time"
)

// Accessor is the interface through which paths access the file
// system. Pathnames are passed in the string representation of the
// flavour that was used to construct them.
//
// Errors returned by implementations are passed on to callers
// unchanged. GetErrorKind() can be used to classify them.
//
// By placing this in a separate interface, it's easier to stub out file
// system handling as part of unit tests entirely.
type Accessor interface {
	// ReadDir returns the Lstat() information of all entries of a
	// directory, excluding "." and "..".
	ReadDir(path string) ([]FileInfo, error)
	// Stat returns the metadata of a file, following symbolic links.
	Stat(path string) (FileInfo, error)
	// Lstat returns the metadata of a file, without following a
	// trailing symbolic link.
	Lstat(path string) (FileInfo, error)
	// ResolveSymlinks returns the canonical absolute path of an
	// absolute path. If strict is false, components that do not exist
	// are appended to the canonical path of the longest existing
	// prefix. The boolean is false if the platform has no way of
	// resolving symbolic links.
	ResolveSymlinks(path string, strict bool) (string, bool, error)
	// Getwd returns the absolute path of the current working
	// directory.
	Getwd() (string, error)
	// UserHomeDir returns the home directory of a user, or the
	// current user if the name is empty.
	UserHomeDir(user string) (string, error)

	Mkdir(path string, perm os.FileMode) error
	// Remove removes a file that is not a directory.
	Remove(path string) error
	// Rmdir removes an empty directory.
	Rmdir(path string) error
	Rename(oldPath, newPath string) error
	Symlink(target, path string) error
	Chmod(path string, perm os.FileMode) error
	// Lchmod is identical to Chmod, except that the permissions of
	// a trailing symbolic link are changed, as opposed to the ones
	// of its target.
	Lchmod(path string, perm os.FileMode) error
	Chtimes(path string, atime, mtime time.Time) error
	ReadFile(path string) ([]byte, error)
	// WriteFile replaces the contents of a file, creating it if it
	// does not exist. If exclusive is set, writing fails if the file
	// already exists.
	WriteFile(path string, data []byte, perm os.FileMode, exclusive bool) error
}

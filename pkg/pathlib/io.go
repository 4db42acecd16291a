package pathlib

import (
	"os"

	"github.com/buildbarn/bb-pathlib/pkg/filesystem"
	"github.com/buildbarn/bb-pathlib/pkg/filesystem/path"
	"github.com/buildbarn/bb-pathlib/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Mkdir creates a directory at the path.
//
// If parents is set, missing parent directories are created with
// permissions 0o777, subject to the umask. If existOK is set, no error
// is returned if the path already refers to a directory.
func (p Path) Mkdir(perm os.FileMode, parents, existOK bool) error {
	err := p.accessor.Mkdir(p.String(), perm)
	if err == nil {
		return nil
	}
	if filesystem.GetErrorKind(err) == filesystem.ErrorKindNotFound {
		parent := p.Parent()
		if !parents || parent.Equal(p.PurePath) {
			return err
		}
		if err := parent.Mkdir(0o777, true, true); err != nil {
			return err
		}
		return p.Mkdir(perm, false, existOK)
	}

	// Don't rely on the error being EEXIST, as the operating system
	// may prefer reporting EACCES or EROFS.
	if existOK {
		if isDir, dirErr := p.IsDir(); dirErr == nil && isDir {
			return nil
		}
	}
	return err
}

// Touch creates an empty file at the path. If existOK is set and the
// file already exists, its access and modification times are set to
// the current time instead. Otherwise, an error is returned if the
// file already exists.
func (p Path) Touch(perm os.FileMode, existOK bool) error {
	if existOK {
		now := p.clock.Now()
		err := p.accessor.Chtimes(p.String(), now, now)
		if err == nil || filesystem.GetErrorKind(err) != filesystem.ErrorKindNotFound {
			return err
		}
	}
	return p.accessor.WriteFile(p.String(), nil, perm, true)
}

// Unlink removes the file or symbolic link. Directories must be
// removed using Rmdir.
func (p Path) Unlink(missingOK bool) error {
	err := p.accessor.Remove(p.String())
	if err != nil && missingOK && filesystem.GetErrorKind(err) == filesystem.ErrorKindNotFound {
		return nil
	}
	return err
}

// Rmdir removes the directory, which must be empty.
func (p Path) Rmdir() error {
	return p.accessor.Rmdir(p.String())
}

// Rename the file to a new path, returning the new path. Relative
// targets are interpreted relative to the current working directory,
// not the directory containing the file.
//
// Unlike Replace, Rename fails if the target already exists. As the
// check is performed prior to renaming, this is not guaranteed in the
// presence of concurrent modifications.
func (p Path) Rename(target path.PurePath) (Path, error) {
	if _, err := p.accessor.Lstat(target.String()); err == nil {
		return Path{}, status.Errorf(codes.AlreadyExists, "Cannot rename %#v to %#v, as the target already exists", p.String(), target.String())
	} else if !filesystem.IsIgnorableError(err) {
		return Path{}, util.StatusWrapf(err, "Failed to inspect target %#v", target.String())
	}
	return p.Replace(target)
}

// Replace renames the file to a new path, overwriting the target if
// it already exists.
func (p Path) Replace(target path.PurePath) (Path, error) {
	if err := p.accessor.Rename(p.String(), target.String()); err != nil {
		return Path{}, err
	}
	return p.derive(target), nil
}

// SymlinkTo turns the path into a symbolic link pointing to the target.
// The order of arguments is the reverse of os.Symlink().
func (p Path) SymlinkTo(target path.PurePath) error {
	return p.accessor.Symlink(target.String(), p.String())
}

// Chmod changes the permissions of the file, following symbolic links.
func (p Path) Chmod(perm os.FileMode) error {
	return p.accessor.Chmod(p.String(), perm)
}

// Lchmod is identical to Chmod, except that if the path refers to a
// symbolic link, the permissions of the symbolic link are changed.
func (p Path) Lchmod(perm os.FileMode) error {
	return p.accessor.Lchmod(p.String(), perm)
}

// ReadBytes returns the contents of the file.
func (p Path) ReadBytes() ([]byte, error) {
	return p.accessor.ReadFile(p.String())
}

// ReadText returns the contents of the file as a string.
func (p Path) ReadText() (string, error) {
	data, err := p.ReadBytes()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteBytes replaces the contents of the file, creating it with
// permissions 0o666, subject to the umask, if it does not exist.
func (p Path) WriteBytes(data []byte) error {
	return p.accessor.WriteFile(p.String(), data, 0o666, false)
}

// WriteText is identical to WriteBytes, except that the contents are
// provided as a string.
func (p Path) WriteText(data string) error {
	return p.WriteBytes([]byte(data))
}

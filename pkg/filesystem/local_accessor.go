package filesystem

import (
	"errors"
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"time"

	"github.com/buildbarn/bb-pathlib/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type localAccessor struct{}

// NewLocalAccessor creates an Accessor that provides access to the file
// system of the locally running operating system. Pathname strings
// must be of the local flavour.
func NewLocalAccessor() Accessor {
	return localAccessor{}
}

func (localAccessor) ReadDir(path string) ([]FileInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	// Obtain file info relative to the open directory, so that the
	// pathname is not reevaluated.
	list := make([]FileInfo, 0, len(names))
	for _, name := range names {
		info, err := lstatInDirectory(f, path, name)
		if err != nil {
			if os.IsNotExist(err) {
				// File got removed in the meantime.
				continue
			}
			return nil, err
		}
		list = append(list, info)
	}
	return list, nil
}

func (localAccessor) Stat(path string) (FileInfo, error) {
	return statLocal(path)
}

func (localAccessor) Lstat(path string) (FileInfo, error) {
	return lstatLocal(path)
}

func (localAccessor) ResolveSymlinks(path string, strict bool) (string, bool, error) {
	if strict {
		resolved, err := filepath.EvalSymlinks(path)
		return resolved, true, err
	}

	// Resolve the longest prefix of the path that exists, and append
	// the remaining components to it.
	var trailing []string
	for prefix := path; ; {
		resolved, err := filepath.EvalSymlinks(prefix)
		if err == nil {
			return filepath.Join(append([]string{resolved}, trailing...)...), true, nil
		}
		if !IsIgnorableError(err) {
			return "", true, err
		}
		parent, name := splitTrailingComponent(prefix)
		if name == "" || parent == "" {
			return "", true, err
		}
		trailing = append([]string{name}, trailing...)
		prefix = parent
	}
}

// splitTrailingComponent splits the last component from a path.
// Contrary to filepath.Dir(), the parent directory is not cleaned, as
// that would lexically remove ".." components.
func splitTrailingComponent(p string) (string, string) {
	parent, name := filepath.Split(p)
	i, minimum := len(parent), len(filepath.VolumeName(parent))+1
	for i > minimum && os.IsPathSeparator(parent[i-1]) {
		i--
	}
	return parent[:i], name
}

func (localAccessor) Getwd() (string, error) {
	return os.Getwd()
}

func (localAccessor) UserHomeDir(name string) (string, error) {
	if name == "" {
		return os.UserHomeDir()
	}
	u, err := user.Lookup(name)
	if err != nil {
		var unknownUserError user.UnknownUserError
		if errors.As(err, &unknownUserError) {
			return "", status.Errorf(codes.NotFound, "User %#v does not exist", name)
		}
		return "", util.StatusWrapfWithCode(err, codes.Internal, "Failed to look up user %#v", name)
	}
	return u.HomeDir, nil
}

func (localAccessor) Mkdir(path string, perm os.FileMode) error {
	return os.Mkdir(path, perm)
}

func (localAccessor) Remove(path string) error {
	return removeLocal(path)
}

func (localAccessor) Rmdir(path string) error {
	return rmdirLocal(path)
}

func (localAccessor) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

func (localAccessor) Symlink(target, path string) error {
	return os.Symlink(target, path)
}

func (localAccessor) Chmod(path string, perm os.FileMode) error {
	return os.Chmod(path, perm)
}

func (localAccessor) Lchmod(path string, perm os.FileMode) error {
	return lchmodLocal(path, perm)
}

func (localAccessor) Chtimes(path string, atime, mtime time.Time) error {
	return os.Chtimes(path, atime, mtime)
}

func (localAccessor) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (localAccessor) WriteFile(path string, data []byte, perm os.FileMode, exclusive bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if exclusive {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, perm)
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	if err1 := f.Close(); err == nil {
		err = err1
	}
	return err
}

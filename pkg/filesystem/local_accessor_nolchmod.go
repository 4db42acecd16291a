//go:build !darwin && !freebsd
// +build !darwin,!freebsd

package filesystem

import (
	"os"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// lchmodLocal falls back to changing the permissions of files that are
// not symbolic links, as the operating system can't change the
// permissions of symbolic links.
func lchmodLocal(path string, perm os.FileMode) error {
	info, err := lstatLocal(path)
	if err != nil {
		return err
	}
	if info.Type() == FileTypeSymlink {
		return status.Errorf(codes.Unimplemented, "Changing the permissions of symbolic link %#v is not supported on this platform", path)
	}
	return os.Chmod(path, perm)
}

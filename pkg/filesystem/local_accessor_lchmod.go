//go:build darwin || freebsd
// +build darwin freebsd

package filesystem

import (
	"os"

	"golang.org/x/sys/unix"
)

func lchmodLocal(path string, perm os.FileMode) error {
	if err := unix.Fchmodat(unix.AT_FDCWD, path, uint32(perm.Perm()), unix.AT_SYMLINK_NOFOLLOW); err != nil {
		return &os.PathError{Op: "lchmod", Path: path, Err: err}
	}
	return nil
}

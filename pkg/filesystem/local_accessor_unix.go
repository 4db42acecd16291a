//go:build darwin || freebsd || linux
// +build darwin freebsd linux

package filesystem

import (
	"os"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

func newFileInfoFromStat(path string, stat *unix.Stat_t) FileInfo {
	fileType := FileTypeOther
	switch stat.Mode & syscall.S_IFMT {
	case syscall.S_IFDIR:
		fileType = FileTypeDirectory
	case syscall.S_IFLNK:
		fileType = FileTypeSymlink
	case syscall.S_IFREG:
		fileType = FileTypeRegularFile
	case syscall.S_IFBLK:
		fileType = FileTypeBlockDevice
	case syscall.S_IFCHR:
		fileType = FileTypeCharacterDevice
	case syscall.S_IFIFO:
		fileType = FileTypeFIFO
	case syscall.S_IFSOCK:
		fileType = FileTypeSocket
	}
	return NewFileInfo(filepath.Base(path), fileType).
		WithAttributes(
			os.FileMode(stat.Mode&0o777),
			stat.Size,
			time.Unix(stat.Mtim.Unix())).
		WithUniqueID(NewDeviceNumberFromRaw(uint64(stat.Dev)), uint64(stat.Ino))
}

func statLocal(path string) (FileInfo, error) {
	var stat unix.Stat_t
	if err := unix.Stat(path, &stat); err != nil {
		return FileInfo{}, err
	}
	return newFileInfoFromStat(path, &stat), nil
}

func lstatLocal(path string) (FileInfo, error) {
	var stat unix.Stat_t
	if err := unix.Lstat(path, &stat); err != nil {
		return FileInfo{}, err
	}
	return newFileInfoFromStat(path, &stat), nil
}

func lstatInDirectory(d *os.File, directoryPath, name string) (FileInfo, error) {
	var stat unix.Stat_t
	if err := unix.Fstatat(int(d.Fd()), name, &stat, unix.AT_SYMLINK_NOFOLLOW); err != nil {
		return FileInfo{}, err
	}
	return newFileInfoFromStat(name, &stat), nil
}

func removeLocal(path string) error {
	return unix.Unlink(path)
}

func rmdirLocal(path string) error {
	return unix.Rmdir(path)
}

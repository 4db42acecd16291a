//go:build !darwin && !freebsd && !linux
// +build !darwin,!freebsd,!linux

package filesystem

import (
	"os"
	"path/filepath"
	"syscall"
)

// newFileInfoFromOS converts metadata returned by the os package. The
// os package does not expose device and inode numbers on these
// platforms, meaning that FileInfo.UniqueID() reports false.
func newFileInfoFromOS(info os.FileInfo) FileInfo {
	mode := info.Mode()
	fileType := FileTypeOther
	switch {
	case mode.IsDir():
		fileType = FileTypeDirectory
	case mode&os.ModeSymlink != 0:
		fileType = FileTypeSymlink
	case mode.IsRegular():
		fileType = FileTypeRegularFile
	case mode&os.ModeCharDevice != 0:
		fileType = FileTypeCharacterDevice
	case mode&os.ModeDevice != 0:
		fileType = FileTypeBlockDevice
	case mode&os.ModeNamedPipe != 0:
		fileType = FileTypeFIFO
	case mode&os.ModeSocket != 0:
		fileType = FileTypeSocket
	}
	return NewFileInfo(info.Name(), fileType).
		WithAttributes(mode.Perm(), info.Size(), info.ModTime())
}

func statLocal(path string) (FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}
	return newFileInfoFromOS(info), nil
}

func lstatLocal(path string) (FileInfo, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return FileInfo{}, err
	}
	return newFileInfoFromOS(info), nil
}

// lstatInDirectory obtains the metadata of a directory entry. The
// pathname is concatenated without cleaning it, as that would remove
// ".." components lexically.
func lstatInDirectory(d *os.File, directoryPath, name string) (FileInfo, error) {
	if directoryPath != filepath.VolumeName(directoryPath) && !os.IsPathSeparator(directoryPath[len(directoryPath)-1]) {
		directoryPath += string(os.PathSeparator)
	}
	return lstatLocal(directoryPath + name)
}

func removeLocal(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &os.PathError{Op: "remove", Path: path, Err: syscall.EISDIR}
	}
	return os.Remove(path)
}

func rmdirLocal(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &os.PathError{Op: "rmdir", Path: path, Err: syscall.ENOTDIR}
	}
	return os.Remove(path)
}

package filesystem

import (
	"os"
	"time"
)

// FileType is an enumeration of the type of a file stored on a file
// system.
type FileType int

const (
	// FileTypeRegularFile means the file is a regular file.
	FileTypeRegularFile FileType = iota
	// FileTypeDirectory means the file is a directory.
	FileTypeDirectory
	// FileTypeSymlink means the file is a symbolic link.
	FileTypeSymlink
	// FileTypeBlockDevice means the file is a block device.
	FileTypeBlockDevice
	// FileTypeCharacterDevice means the file is a character device.
	FileTypeCharacterDevice
	// FileTypeFIFO means the file is a FIFO.
	FileTypeFIFO
	// FileTypeSocket means the file is a socket.
	FileTypeSocket
	// FileTypeOther means the file is neither a regular file, a
	// directory or symbolic link.
	FileTypeOther
)

// FileInfo contains the metadata of a file, as returned by
// Accessor.Stat(), Accessor.Lstat() and Accessor.ReadDir().
type FileInfo struct {
	name        string
	fileType    FileType
	permissions os.FileMode
	size        int64
	modTime     time.Time

	hasUniqueID  bool
	deviceNumber DeviceNumber
	inodeNumber  uint64
}

// NewFileInfo constructs a FileInfo object that only has a name and a
// file type.
func NewFileInfo(name string, fileType FileType) FileInfo {
	return FileInfo{
		name:     name,
		fileType: fileType,
	}
}

// WithAttributes returns a copy of the FileInfo that has its
// permissions, size and modification time set.
func (fi FileInfo) WithAttributes(permissions os.FileMode, size int64, modTime time.Time) FileInfo {
	fi.permissions = permissions
	fi.size = size
	fi.modTime = modTime
	return fi
}

// WithUniqueID returns a copy of the FileInfo that has the device and
// inode number set. The pair uniquely identifies a file on the system.
func (fi FileInfo) WithUniqueID(deviceNumber DeviceNumber, inodeNumber uint64) FileInfo {
	fi.hasUniqueID = true
	fi.deviceNumber = deviceNumber
	fi.inodeNumber = inodeNumber
	return fi
}

// Name returns the filename of the file.
func (fi FileInfo) Name() string {
	return fi.name
}

// Type returns the type of a file (e.g., regular file, directory, symlink).
func (fi FileInfo) Type() FileType {
	return fi.fileType
}

// Permissions returns the permission bits of the file.
func (fi FileInfo) Permissions() os.FileMode {
	return fi.permissions
}

// Size returns the size of the file in bytes.
func (fi FileInfo) Size() int64 {
	return fi.size
}

// ModTime returns the modification time of the file.
func (fi FileInfo) ModTime() time.Time {
	return fi.modTime
}

// UniqueID returns the device and inode number of the file. The
// boolean is false if the file system does not provide these.
func (fi FileInfo) UniqueID() (DeviceNumber, uint64, bool) {
	return fi.deviceNumber, fi.inodeNumber, fi.hasUniqueID
}

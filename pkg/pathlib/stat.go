package pathlib

import (
	"github.com/buildbarn/bb-pathlib/pkg/filesystem"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Stat returns the metadata of the file, following symbolic links.
func (p Path) Stat() (filesystem.FileInfo, error) {
	return p.accessor.Stat(p.String())
}

// Lstat returns the metadata of the file. If the path refers to a
// symbolic link, the metadata of the symbolic link itself is returned.
func (p Path) Lstat() (filesystem.FileInfo, error) {
	return p.accessor.Lstat(p.String())
}

// hasFileType returns whether the file is of a given type. Errors
// indicating that the file does not exist are translated to false.
func hasFileType(stat func(string) (filesystem.FileInfo, error), name string, fileType filesystem.FileType) (bool, error) {
	info, err := stat(name)
	if err != nil {
		if filesystem.IsIgnorableError(err) {
			return false, nil
		}
		return false, err
	}
	return info.Type() == fileType, nil
}

// Exists returns whether the path refers to an existing file. Symbolic
// links are followed, meaning that false is returned for dangling
// symbolic links.
func (p Path) Exists() (bool, error) {
	if _, err := p.Stat(); err != nil {
		if filesystem.IsIgnorableError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// IsDir returns whether the path refers to a directory, or a symbolic
// link pointing to a directory.
func (p Path) IsDir() (bool, error) {
	return hasFileType(p.accessor.Stat, p.String(), filesystem.FileTypeDirectory)
}

// IsFile returns whether the path refers to a regular file, or a
// symbolic link pointing to a regular file.
func (p Path) IsFile() (bool, error) {
	return hasFileType(p.accessor.Stat, p.String(), filesystem.FileTypeRegularFile)
}

// IsSymlink returns whether the path refers to a symbolic link.
func (p Path) IsSymlink() (bool, error) {
	return hasFileType(p.accessor.Lstat, p.String(), filesystem.FileTypeSymlink)
}

func (p Path) IsBlockDevice() (bool, error) {
	return hasFileType(p.accessor.Stat, p.String(), filesystem.FileTypeBlockDevice)
}

func (p Path) IsCharDevice() (bool, error) {
	return hasFileType(p.accessor.Stat, p.String(), filesystem.FileTypeCharacterDevice)
}

func (p Path) IsFIFO() (bool, error) {
	return hasFileType(p.accessor.Stat, p.String(), filesystem.FileTypeFIFO)
}

func (p Path) IsSocket() (bool, error) {
	return hasFileType(p.accessor.Stat, p.String(), filesystem.FileTypeSocket)
}

func (p Path) uniqueID(info filesystem.FileInfo) (filesystem.DeviceNumber, uint64, error) {
	deviceNumber, inodeNumber, ok := info.UniqueID()
	if !ok {
		return filesystem.DeviceNumber{}, 0, status.Errorf(codes.Unimplemented, "File system does not report device and inode numbers for %#v", p.String())
	}
	return deviceNumber, inodeNumber, nil
}

// IsMount returns whether the path refers to a directory that is a
// mount point. This is the case if it resides on a different device
// than its parent directory, or if it is its own parent.
func (p Path) IsMount() (bool, error) {
	info, err := p.Stat()
	if err != nil {
		if filesystem.IsIgnorableError(err) {
			return false, nil
		}
		return false, err
	}
	if info.Type() != filesystem.FileTypeDirectory {
		return false, nil
	}
	deviceNumber, inodeNumber, err := p.uniqueID(info)
	if err != nil {
		return false, err
	}

	// Use ".." instead of the logical parent, so that the results
	// are correct for paths ending with symbolic links or "..".
	parent := p.Append("..")
	parentInfo, err := parent.Stat()
	if err != nil {
		if filesystem.IsIgnorableError(err) {
			return false, nil
		}
		return false, err
	}
	parentDeviceNumber, parentInodeNumber, err := parent.uniqueID(parentInfo)
	if err != nil {
		return false, err
	}
	return deviceNumber != parentDeviceNumber || inodeNumber == parentInodeNumber, nil
}

// SameFile returns whether two paths refer to the same file, following
// symbolic links.
func (p Path) SameFile(other Path) (bool, error) {
	info, err := p.Stat()
	if err != nil {
		return false, err
	}
	otherInfo, err := other.Stat()
	if err != nil {
		return false, err
	}
	deviceNumber, inodeNumber, err := p.uniqueID(info)
	if err != nil {
		return false, err
	}
	otherDeviceNumber, otherInodeNumber, err := other.uniqueID(otherInfo)
	if err != nil {
		return false, err
	}
	return deviceNumber == otherDeviceNumber && inodeNumber == otherInodeNumber, nil
}

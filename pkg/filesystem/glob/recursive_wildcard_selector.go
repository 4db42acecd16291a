package glob

import (
	"slices"

	"github.com/buildbarn/bb-pathlib/pkg/filesystem"
	"github.com/buildbarn/bb-pathlib/pkg/filesystem/path"
)

// fileID uniquely identifies a directory on the system.
type fileID struct {
	deviceNumber filesystem.DeviceNumber
	inodeNumber  uint64
}

// recursiveWildcardSelector processes "**" pattern components. It
// applies its successor against the directory itself and all of its
// subdirectories, recursively.
//
// Symbolic links to directories are not traversed. As bind mounts may
// still cause the same directory to be reachable through itself, every
// directory whose device and inode number are already part of the
// current chain of ancestors is skipped.
type recursiveWildcardSelector struct {
	successor selector
}

func (s *recursiveWildcardSelector) selectFrom(c *selectContext, parent path.PurePath) bool {
	info, err := c.accessor.Stat(parent.String())
	if err != nil {
		return c.handleError(parent, err)
	}
	var ancestors []fileID
	if deviceNumber, inodeNumber, ok := info.UniqueID(); ok {
		ancestors = append(ancestors, fileID{
			deviceNumber: deviceNumber,
			inodeNumber:  inodeNumber,
		})
	}
	return s.iterate(c, parent, ancestors)
}

func (s *recursiveWildcardSelector) iterate(c *selectContext, directory path.PurePath, ancestors []fileID) bool {
	if !s.successor.selectFrom(c, directory) {
		return false
	}

	entries, err := c.accessor.ReadDir(directory.String())
	if err != nil {
		return c.handleError(directory, err)
	}
	for _, entry := range entries {
		if entry.Type() != filesystem.FileTypeDirectory {
			continue
		}
		name, ok := path.NewComponent(entry.Name())
		if !ok {
			continue
		}
		childAncestors := ancestors
		if deviceNumber, inodeNumber, ok := entry.UniqueID(); ok {
			id := fileID{
				deviceNumber: deviceNumber,
				inodeNumber:  inodeNumber,
			}
			if slices.Contains(ancestors, id) {
				continue
			}
			childAncestors = append(ancestors[:len(ancestors):len(ancestors)], id)
		}
		if !s.iterate(c, directory.Append(name.String()), childAncestors) {
			return false
		}
	}
	return true
}

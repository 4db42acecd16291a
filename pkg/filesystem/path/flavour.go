package path

import (
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Flavour of pathname strings. A flavour determines how pathname
// strings are split into a drive, a root and a sequence of components,
// how they are stringified, and whether comparisons are case
// sensitive.
//
// The set of flavours is closed. Every PurePath carries the flavour
// with which it was parsed, so that two paths of different flavours
// never compare equal.
type Flavour int

const (
	// UNIXFlavour is used for pathname strings on UNIX-like
	// operating systems. Paths are separated by slashes, have no
	// drive and are case sensitive.
	UNIXFlavour Flavour = iota
	// WindowsFlavour is used for pathname strings on Windows. Both
	// backslashes and slashes act as separators. Paths may start
	// with a drive letter or a UNC share, and are compared case
	// insensitively.
	WindowsFlavour
)

func (f Flavour) String() string {
	switch f {
	case UNIXFlavour:
		return "unix"
	case WindowsFlavour:
		return "windows"
	default:
		panic("Unknown flavour")
	}
}

// ParseFlavour returns the flavour corresponding to a name returned
// by Flavour.String(). The name "local" corresponds to LocalFlavour.
func ParseFlavour(name string) (Flavour, error) {
	switch name {
	case "unix":
		return UNIXFlavour, nil
	case "windows":
		return WindowsFlavour, nil
	case "local":
		return LocalFlavour, nil
	default:
		return 0, status.Errorf(codes.InvalidArgument, "Unknown path flavour %#v", name)
	}
}

// Separator returns the preferred separator of pathname components.
func (f Flavour) Separator() byte {
	if f == WindowsFlavour {
		return '\\'
	}
	return '/'
}

// AltSeparator returns the alternative separator of pathname
// components, if any.
func (f Flavour) AltSeparator() (byte, bool) {
	if f == WindowsFlavour {
		return '/', true
	}
	return 0, false
}

// IsCaseSensitive returns whether pathname components of this flavour
// are compared case sensitively.
func (f Flavour) IsCaseSensitive() bool {
	return f != WindowsFlavour
}

func (f Flavour) hasDrive() bool {
	return f == WindowsFlavour
}

// CaseFold converts a string to a form that may be used for
// comparisons. The stored representation of paths is never case
// folded.
func (f Flavour) CaseFold(s string) string {
	if f.IsCaseSensitive() {
		return s
	}
	return strings.ToLower(s)
}

// CaseFoldParts applies CaseFold to every element of a list of
// pathname components. The provided list is left intact.
func (f Flavour) CaseFoldParts(parts []string) []string {
	if f.IsCaseSensitive() {
		return parts
	}
	folded := make([]string, 0, len(parts))
	for _, part := range parts {
		folded = append(folded, strings.ToLower(part))
	}
	return folded
}

// IsReserved returns whether a sequence of pathname components refers
// to a name that is reserved by the operating system. This is never
// the case for UNIX paths.
func (f Flavour) IsReserved(parts []string) bool {
	if f == WindowsFlavour {
		return isWindowsReserved(parts)
	}
	return false
}

// SplitRoot splits a single pathname string into a drive, a root and
// the remainder of the path. Alternative separators must already have
// been replaced by the preferred separator.
func (f Flavour) SplitRoot(part string) (drive, root, rest string, err error) {
	// Paths are generally passed to system calls that accept C
	// strings. There is no way these can accept null bytes.
	if strings.IndexByte(part, 0) >= 0 {
		return "", "", "", status.Error(codes.InvalidArgument, "Path contains a null byte")
	}
	if f == WindowsFlavour {
		return splitWindowsRoot(part)
	}
	root, rest = splitUNIXRoot(part)
	return "", root, rest, nil
}

func (f Flavour) normalizeSeparators(part string) string {
	if altSeparator, ok := f.AltSeparator(); ok {
		return strings.ReplaceAll(part, string(altSeparator), string(f.Separator()))
	}
	return part
}

// ParseParts parses one or more pathname strings as if they were
// joined together. Repeated separators and "." components are
// removed. ".." components are retained, as preceding components may
// refer to symbolic links.
//
// If more than one of the strings is anchored, the last one
// determines the anchor of the resulting path. The anchor is stored
// as the first element of parts.
func (f Flavour) ParseParts(parts ...string) (drive, root string, parsed []string, err error) {
	separator := string(f.Separator())
	i := len(parts) - 1
	for ; i >= 0; i-- {
		part := parts[i]
		if part == "" {
			continue
		}
		var rest string
		drive, root, rest, err = f.SplitRoot(f.normalizeSeparators(part))
		if err != nil {
			return "", "", nil, err
		}
		components := strings.Split(rest, separator)
		for j := len(components) - 1; j >= 0; j-- {
			if c := components[j]; c != "" && c != "." {
				parsed = append(parsed, c)
			}
		}
		if drive != "" || root != "" {
			break
		}
	}

	if root != "" && drive == "" {
		// If no drive is present, try to find one in the preceding
		// strings. This makes the result of parsing ("C:", "/", "a")
		// reasonably intuitive.
		for i--; i >= 0; i-- {
			if parts[i] == "" {
				continue
			}
			precedingDrive, _, _, err := f.SplitRoot(f.normalizeSeparators(parts[i]))
			if err != nil {
				return "", "", nil, err
			}
			if precedingDrive != "" {
				drive = precedingDrive
				break
			}
		}
	}

	if drive != "" || root != "" {
		parsed = append(parsed, drive+root)
	}
	for l, r := 0, len(parsed)-1; l < r; l, r = l+1, r-1 {
		parsed[l], parsed[r] = parsed[r], parsed[l]
	}
	return drive, root, parsed, nil
}

// JoinParsedParts computes the drive, root and components of the
// concatenation of two parsed paths. If the second path is anchored,
// it generally replaces the first path.
func (f Flavour) JoinParsedParts(drive, root string, parts []string, drive2, root2 string, parts2 []string) (string, string, []string) {
	if root2 != "" {
		if drive2 == "" && drive != "" {
			// Rooted, but without a drive. Stay on the
			// current drive.
			return drive, root2, concatParts([]string{drive + root2}, parts2[1:])
		}
	} else if drive2 != "" {
		if drive2 == drive || f.CaseFold(drive2) == f.CaseFold(drive) {
			// Same drive, meaning that the second path is
			// relative to the first.
			return drive, root, concatParts(parts, parts2[1:])
		}
	} else {
		// Second path is not anchored.
		return drive, root, concatParts(parts, parts2)
	}
	return drive2, root2, parts2
}

// formatParsedParts converts parsed components back to a pathname
// string using the preferred separator.
func (f Flavour) formatParsedParts(drive, root string, parts []string) string {
	separator := string(f.Separator())
	if drive != "" || root != "" {
		return drive + root + strings.Join(parts[1:], separator)
	}
	return strings.Join(parts, separator)
}

// concatParts returns a newly allocated list containing the elements of
// both lists. Lists of components are shared between immutable paths,
// so they must never be appended to in place.
func concatParts(a, b []string) []string {
	parts := make([]string, 0, len(a)+len(b))
	parts = append(parts, a...)
	return append(parts, b...)
}

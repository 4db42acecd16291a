package path

import (
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func stripWindowsSeparators(p string) string {
	return strings.TrimLeft(p, "\\")
}

func isASCIILetter(c byte) bool {
	upper := c &^ 0x20
	return upper >= 'A' && upper <= 'Z'
}

// splitUNCRoot splits a path of the form "server\share\rest" that
// followed a UNC prefix. The server and share names become part of the
// drive. UNC paths always have a root.
func splitUNCRoot(prefix, uncPath string) (drive, root, rest string, err error) {
	serverLen := strings.IndexByte(uncPath, '\\')
	if serverLen == -1 {
		return "", "", "", status.Error(codes.InvalidArgument, "Invalid UNC path: expected a non-empty server and share name")
	}
	if serverLen < 1 {
		return "", "", "", status.Error(codes.InvalidArgument, "Invalid UNC path: expected a non-empty server name")
	}

	shareStart := serverLen + 1
	shareLen := strings.IndexByte(uncPath[shareStart:], '\\')
	if shareLen == -1 {
		shareLen = len(uncPath) - shareStart
	}
	if shareLen < 1 {
		return "", "", "", status.Error(codes.InvalidArgument, "Invalid UNC path: expected a non-empty share name")
	}
	shareEnd := shareStart + shareLen
	return prefix + uncPath[:shareEnd], "\\", stripWindowsSeparators(uncPath[shareEnd:]), nil
}

// splitWindowsRoot splits a Windows pathname string in which all slashes
// have already been converted to backslashes.
func splitWindowsRoot(p string) (drive, root, rest string, err error) {
	// Handle extended-length paths starting with \\?\ and NT object
	// namespace paths starting with \??\.
	prefix := ""
	if len(p) >= 4 && p[0] == '\\' && (p[1] == '\\' || p[1] == '?') && p[2] == '?' && p[3] == '\\' {
		prefix, p = p[:4], p[4:]
		if len(p) >= 4 && strings.EqualFold(p[:4], "UNC\\") {
			return splitUNCRoot(prefix+p[:4], p[4:])
		}
	} else if len(p) >= 3 && p[0] == '\\' && p[1] == '\\' {
		// \\server\share\...
		return splitUNCRoot("\\\\", p[2:])
	}

	if len(p) >= 2 && p[1] == ':' && isASCIILetter(p[0]) {
		drive, p = prefix+p[:2], p[2:]
	} else if prefix != "" {
		// Device paths such as \\?\Volume{...}\ use their first
		// component as the drive.
		deviceLen := strings.IndexByte(p, '\\')
		if deviceLen == -1 {
			deviceLen = len(p)
		}
		if deviceLen == 0 {
			return "", "", "", status.Error(codes.InvalidArgument, "Invalid device path: expected a non-empty device name")
		}
		drive, p = prefix+p[:deviceLen], p[deviceLen:]
	}

	if p != "" && p[0] == '\\' {
		return drive, "\\", stripWindowsSeparators(p), nil
	}
	return drive, "", p, nil
}

var windowsReservedNames = func() map[string]struct{} {
	names := map[string]struct{}{
		"CON": {},
		"PRN": {},
		"AUX": {},
		"NUL": {},
	}
	for _, prefix := range []string{"COM", "LPT"} {
		for i := '1'; i <= '9'; i++ {
			names[prefix+string(i)] = struct{}{}
		}
	}
	return names
}()

func isWindowsReserved(parts []string) bool {
	if len(parts) == 0 {
		return false
	}
	// UNC paths are never reserved.
	if strings.HasPrefix(parts[0], "\\\\") {
		return false
	}
	name, _, _ := strings.Cut(parts[len(parts)-1], ".")
	_, ok := windowsReservedNames[strings.ToUpper(name)]
	return ok
}

// validateWindowsComponent returns an error if a pathname component
// cannot be used as a filename on Windows.
func validateWindowsComponent(name string) error {
	if name == ".." {
		return nil
	}
	for i := 0; i < len(name); i++ {
		if c := name[i]; c < 0x20 || strings.IndexByte("<>:\"|?*\\/", c) >= 0 {
			return status.Errorf(codes.InvalidArgument, "Filename contains invalid character %#v", string(c))
		}
	}
	if last := name[len(name)-1]; last == ' ' || last == '.' {
		return status.Error(codes.InvalidArgument, "Filename ends with a space or a period")
	}
	return nil
}

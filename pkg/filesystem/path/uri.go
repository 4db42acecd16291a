package path

import (
	"strings"
)

const upperHex = "0123456789ABCDEF"

// quoteURIPath percent-encodes all bytes of a path, except for ASCII
// letters, digits, "_.-~" and slashes.
func quoteURIPath(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isASCIILetter(c) || (c >= '0' && c <= '9') || strings.IndexByte("_.-~/", c) >= 0 {
			sb.WriteByte(c)
		} else {
			sb.WriteByte('%')
			sb.WriteByte(upperHex[c>>4])
			sb.WriteByte(upperHex[c&0xf])
		}
	}
	return sb.String()
}

// MakeURI returns a file:// URI for an absolute path of this flavour.
func (f Flavour) MakeURI(p PurePath) string {
	if f == WindowsFlavour {
		if drive := p.drive; len(drive) == 2 && drive[1] == ':' {
			// Path on a drive: file:///C:/a/b.
			rest := strings.TrimLeft(p.AsPOSIX()[2:], "/")
			return "file:///" + drive + "/" + quoteURIPath(rest)
		}
		// Path on a network share: file://server/share/a/b.
		return "file:" + quoteURIPath(p.AsPOSIX())
	}
	return "file://" + quoteURIPath(p.String())
}

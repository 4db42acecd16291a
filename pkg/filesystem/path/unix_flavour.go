package path

import (
	"strings"
)

// splitUNIXRoot strips leading slashes from a UNIX pathname string.
// Any number of leading slashes yields a single slash as the root.
func splitUNIXRoot(p string) (root, rest string) {
	if p != "" && p[0] == '/' {
		return "/", strings.TrimLeft(p, "/")
	}
	return "", p
}

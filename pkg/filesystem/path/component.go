package path

import (
	"strings"
)

// Component is a single filename, as returned by a directory listing.
// It is guaranteed to be non-empty, to differ from "." and "..", and to
// contain neither a slash nor a null byte.
type Component struct {
	name string
}

// NewComponent creates a new pathname component. Creation fails in
// case the name is empty, ".", "..", contains a slash, or is not a
// valid C string. Backslashes are permitted, as UNIX file systems
// allow them to be part of filenames.
func NewComponent(name string) (Component, bool) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, "/\x00") {
		return Component{}, false
	}
	return Component{name: name}, true
}

func (c Component) String() string {
	return c.name
}

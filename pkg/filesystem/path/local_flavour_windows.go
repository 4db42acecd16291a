//go:build windows

package path

// LocalFlavour is the flavour of pathname strings that are native to
// the locally running operating system.
var LocalFlavour = WindowsFlavour

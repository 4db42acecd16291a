package path

import (
	"slices"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PurePath is an immutable, parsed pathname. Operations on PurePath
// never access the file system. Instead of providing methods that
// mutate a path, every transformation returns a new PurePath.
//
// ".." components are never removed while parsing, as preceding
// pathname components may refer to symbolic links when applied
// against an actual file system.
//
// The zero value corresponds to the UNIX path ".".
type PurePath struct {
	flavour Flavour
	drive   string
	root    string
	// Components of the path. If the path has a drive or root, the
	// first element contains the anchor. This slice is shared
	// between instances and must never be modified.
	parts []string
}

// NewPurePath parses one or more pathname strings of a given flavour
// as if they were joined together.
func NewPurePath(flavour Flavour, segments ...string) (PurePath, error) {
	drive, root, parts, err := flavour.ParseParts(segments...)
	if err != nil {
		return PurePath{}, err
	}
	return PurePath{
		flavour: flavour,
		drive:   drive,
		root:    root,
		parts:   parts,
	}, nil
}

// MustNewPurePath is identical to NewPurePath, except that it panics
// upon failure.
func MustNewPurePath(flavour Flavour, segments ...string) PurePath {
	p, err := NewPurePath(flavour, segments...)
	if err != nil {
		panic(err)
	}
	return p
}

// NewUNIXPath parses UNIX pathname strings.
func NewUNIXPath(segments ...string) (PurePath, error) {
	return NewPurePath(UNIXFlavour, segments...)
}

// NewWindowsPath parses Windows pathname strings.
func NewWindowsPath(segments ...string) (PurePath, error) {
	return NewPurePath(WindowsFlavour, segments...)
}

// NewLocalPath parses pathname strings that are native to the locally
// running operating system.
func NewLocalPath(segments ...string) (PurePath, error) {
	return NewPurePath(LocalFlavour, segments...)
}

func (p PurePath) fromParsedParts(drive, root string, parts []string) PurePath {
	return PurePath{
		flavour: p.flavour,
		drive:   drive,
		root:    root,
		parts:   parts,
	}
}

func (p PurePath) isAnchored() bool {
	return p.drive != "" || p.root != ""
}

// Flavour returns the flavour with which the path was parsed.
func (p PurePath) Flavour() Flavour {
	return p.flavour
}

// Drive returns the drive letter or UNC share of the path, if any.
func (p PurePath) Drive() string {
	return p.drive
}

// Root returns the root of the path, if any.
func (p PurePath) Root() string {
	return p.root
}

// Anchor returns the concatenation of the drive and root.
func (p PurePath) Anchor() string {
	return p.drive + p.root
}

// Parts returns the components of the path. If the path is anchored,
// the anchor is returned as the first element. The list is empty if
// and only if the path is ".".
func (p PurePath) Parts() []string {
	return slices.Clone(p.parts)
}

func (p PurePath) String() string {
	if len(p.parts) == 0 {
		return "."
	}
	return p.flavour.formatParsedParts(p.drive, p.root, p.parts)
}

// AsPOSIX returns the string representation of the path with forward
// slashes.
func (p PurePath) AsPOSIX() string {
	return strings.ReplaceAll(p.String(), string(p.flavour.Separator()), "/")
}

// AsURI returns the path as a "file" URI. Relative paths cannot be
// expressed as URIs.
func (p PurePath) AsURI() (string, error) {
	if !p.IsAbsolute() {
		return "", status.Errorf(codes.InvalidArgument, "Relative path %#v cannot be expressed as a file URI", p.String())
	}
	return p.flavour.MakeURI(p), nil
}

// Name returns the final component of the path, or the empty string if
// the path only consists of an anchor or is ".".
func (p PurePath) Name() string {
	if len(p.parts) == 0 || (len(p.parts) == 1 && p.isAnchored()) {
		return ""
	}
	return p.parts[len(p.parts)-1]
}

// suffixIndex returns the offset of the final suffix within a name, or
// -1 if the name has no suffix. Leading and trailing periods do not
// start a suffix.
func suffixIndex(name string) int {
	if i := strings.LastIndexByte(name, '.'); i > 0 && i < len(name)-1 {
		return i
	}
	return -1
}

// Suffix returns the final suffix of the name of the path, including
// its leading period.
func (p PurePath) Suffix() string {
	name := p.Name()
	if i := suffixIndex(name); i >= 0 {
		return name[i:]
	}
	return ""
}

// Suffixes returns all suffixes of the name of the path.
func (p PurePath) Suffixes() []string {
	name := p.Name()
	if strings.HasSuffix(name, ".") {
		return nil
	}
	fields := strings.Split(strings.TrimLeft(name, "."), ".")
	suffixes := make([]string, 0, len(fields)-1)
	for _, field := range fields[1:] {
		suffixes = append(suffixes, "."+field)
	}
	return suffixes
}

// Stem returns the name of the path without its final suffix.
func (p PurePath) Stem() string {
	name := p.Name()
	if i := suffixIndex(name); i >= 0 {
		return name[:i]
	}
	return name
}

func (p PurePath) containsSeparator(s string) bool {
	if strings.IndexByte(s, p.flavour.Separator()) >= 0 {
		return true
	}
	altSeparator, ok := p.flavour.AltSeparator()
	return ok && strings.IndexByte(s, altSeparator) >= 0
}

func (p PurePath) withLastPart(name string) PurePath {
	return p.fromParsedParts(p.drive, p.root, concatParts(p.parts[:len(p.parts)-1], []string{name}))
}

// WithName returns a new path with the final component replaced.
func (p PurePath) WithName(name string) (PurePath, error) {
	if p.Name() == "" {
		return PurePath{}, status.Errorf(codes.InvalidArgument, "Path %#v has an empty name", p.String())
	}
	if name == "" || p.containsSeparator(name) {
		return PurePath{}, status.Errorf(codes.InvalidArgument, "Invalid name %#v", name)
	}
	drive, root, parts, err := p.flavour.ParseParts(name)
	if err != nil {
		return PurePath{}, status.Errorf(codes.InvalidArgument, "Invalid name %#v: %s", name, status.Convert(err).Message())
	}
	if drive != "" || root != "" || len(parts) != 1 {
		return PurePath{}, status.Errorf(codes.InvalidArgument, "Invalid name %#v", name)
	}
	return p.withLastPart(name), nil
}

// WithStem returns a new path with the name replaced, while retaining
// the final suffix.
func (p PurePath) WithStem(stem string) (PurePath, error) {
	return p.WithName(stem + p.Suffix())
}

// WithSuffix returns a new path with the final suffix replaced. If the
// path has no suffix, the suffix is added. If the suffix is empty, any
// existing suffix is removed.
func (p PurePath) WithSuffix(suffix string) (PurePath, error) {
	if p.containsSeparator(suffix) || (suffix != "" && suffix[0] != '.') || suffix == "." {
		return PurePath{}, status.Errorf(codes.InvalidArgument, "Invalid suffix %#v", suffix)
	}
	name := p.Name()
	if name == "" {
		return PurePath{}, status.Errorf(codes.InvalidArgument, "Path %#v has an empty name", p.String())
	}
	if i := suffixIndex(name); i >= 0 {
		name = name[:i]
	}
	return p.withLastPart(name + suffix), nil
}

// JoinPath parses one or more pathname strings and appends them to the
// current path. If one of the strings is anchored, it replaces the
// current path.
func (p PurePath) JoinPath(segments ...string) (PurePath, error) {
	drive, root, parts, err := p.flavour.ParseParts(segments...)
	if err != nil {
		return PurePath{}, err
	}
	return p.fromParsedParts(p.flavour.JoinParsedParts(p.drive, p.root, p.parts, drive, root, parts)), nil
}

// Join appends one or more parsed paths to the current path, using the
// same rules as JoinPath. Paths of a different flavour are converted
// by reparsing their string representation. This causes a panic if the
// string representation is not valid in the current flavour.
func (p PurePath) Join(others ...PurePath) PurePath {
	drive, root, parts := p.drive, p.root, p.parts
	for _, other := range others {
		if other.flavour != p.flavour {
			other = MustNewPurePath(p.flavour, other.String())
		}
		drive, root, parts = p.flavour.JoinParsedParts(drive, root, parts, other.drive, other.root, other.parts)
	}
	return p.fromParsedParts(drive, root, parts)
}

// Append adds a single pathname component to the path without parsing
// it. This is used to construct paths of entries returned by directory
// listings, and of components of patterns that have already been
// parsed. The name must not be empty or ".".
func (p PurePath) Append(name string) PurePath {
	return p.fromParsedParts(p.drive, p.root, concatParts(p.parts, []string{name}))
}

// Parent returns the logical parent of the path. The parent of an
// anchor and the parent of "." are the path itself.
func (p PurePath) Parent() PurePath {
	if len(p.parts) == 0 || (len(p.parts) == 1 && p.isAnchored()) {
		return p
	}
	return p.fromParsedParts(p.drive, p.root, p.parts[:len(p.parts)-1])
}

// Parents returns all logical ancestors of the path, starting at the
// immediate parent and ending at either the anchor or ".".
func (p PurePath) Parents() []PurePath {
	var parents []PurePath
	for current := p; ; {
		parent := current.Parent()
		if len(parent.parts) == len(current.parts) {
			return parents
		}
		parents = append(parents, parent)
		current = parent
	}
}

// IsAbsolute returns true if the path has a root and, in case of
// flavours that support drives, a drive.
func (p PurePath) IsAbsolute() bool {
	if p.root == "" {
		return false
	}
	return !p.flavour.hasDrive() || p.drive != ""
}

// IsReserved returns true if the path refers to a name that is
// reserved by the operating system.
func (p PurePath) IsReserved() bool {
	return p.flavour.IsReserved(p.parts)
}

// absoluteParts returns the components of the path, where the drive
// and root are stored as separate leading elements.
func absoluteParts(drive, root string, parts []string) []string {
	if root == "" {
		return parts
	}
	return concatParts([]string{drive, root}, parts[1:])
}

// RelativeTo computes a path relative to another path. This fails if
// the current path does not start with the other path.
//
// For the purpose of this method, the drive and root are considered
// separate components. This means that "C:\" relative to "C:" yields
// "\", while "C:\" relative to "\" fails.
func (p PurePath) RelativeTo(others ...string) (PurePath, error) {
	if len(others) == 0 {
		return PurePath{}, status.Error(codes.InvalidArgument, "Need at least one path to compute a relative path")
	}
	toDrive, toRoot, toParts, err := p.flavour.ParseParts(others...)
	if err != nil {
		return PurePath{}, err
	}
	absParts := absoluteParts(p.drive, p.root, p.parts)
	toAbsParts := absoluteParts(toDrive, toRoot, toParts)
	n := len(toAbsParts)
	if (n == 0 && p.isAnchored()) ||
		(n != 0 && (n > len(absParts) || !slices.Equal(p.flavour.CaseFoldParts(absParts[:n]), p.flavour.CaseFoldParts(toAbsParts)))) {
		return PurePath{}, status.Errorf(
			codes.InvalidArgument,
			"%#v does not start with %#v",
			p.String(),
			p.fromParsedParts(toDrive, toRoot, toParts).String())
	}
	root := ""
	if n == 1 {
		root = p.root
	}
	return p.fromParsedParts("", root, concatParts(nil, absParts[n:])), nil
}

// IsRelativeTo returns whether RelativeTo would succeed.
func (p PurePath) IsRelativeTo(others ...string) bool {
	_, err := p.RelativeTo(others...)
	return err == nil
}

// Normalize lexically removes ".." components from the path. This is
// only correct if the path contains no symbolic links. ".." components
// that would escape the anchor of an absolute path are dropped, while
// leading ".." components of relative paths are retained.
func (p PurePath) Normalize() PurePath {
	first := 0
	if p.isAnchored() {
		first = 1
	}
	parts := concatParts(nil, p.parts[:first])
	for _, part := range p.parts[first:] {
		if part != ".." {
			parts = append(parts, part)
		} else if len(parts) > first && parts[len(parts)-1] != ".." {
			parts = parts[:len(parts)-1]
		} else if !p.isAnchored() {
			parts = append(parts, part)
		}
	}
	return p.fromParsedParts(p.drive, p.root, parts)
}

// Validate checks whether all components of the path may be used as
// filenames. Components may not exceed 255 bytes. On Windows, certain
// characters are also disallowed.
func (p PurePath) Validate() error {
	first := 0
	if p.isAnchored() {
		first = 1
	}
	for _, part := range p.parts[first:] {
		if len(part) > 255 {
			return status.Errorf(codes.InvalidArgument, "Pathname component %#v exceeds 255 bytes", part)
		}
		if p.flavour == WindowsFlavour {
			if err := validateWindowsComponent(part); err != nil {
				return status.Errorf(codes.InvalidArgument, "Invalid pathname component %#v: %s", part, status.Convert(err).Message())
			}
		}
	}
	return nil
}

func (p PurePath) caseFoldedParts() []string {
	return p.flavour.CaseFoldParts(p.parts)
}

// Equal returns whether two paths have the same flavour and are equal
// after case folding.
func (p PurePath) Equal(other PurePath) bool {
	return p.flavour == other.flavour && slices.Equal(p.caseFoldedParts(), other.caseFoldedParts())
}

// Compare orders paths by flavour, followed by their case folded
// components.
func (p PurePath) Compare(other PurePath) int {
	if p.flavour != other.flavour {
		if p.flavour < other.flavour {
			return -1
		}
		return 1
	}
	return slices.Compare(p.caseFoldedParts(), other.caseFoldedParts())
}

// Key returns a string that is identical for paths that are Equal. It
// can be used as a map key.
func (p PurePath) Key() string {
	return p.flavour.String() + ":" + p.flavour.CaseFold(p.String())
}

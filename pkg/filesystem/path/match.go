package path

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// IsWildcardPattern returns whether a pattern component contains any
// characters that require it to be matched using MatchComponent, as
// opposed to being looked up in a directory directly.
func IsWildcardPattern(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

// translatePattern converts a shell-style component pattern to the
// syntax accepted by doublestar. Characters that doublestar gives a
// meaning that shell-style patterns don't have are escaped. A "[" that
// does not start a complete character class is matched literally.
func translatePattern(pattern string) string {
	var sb strings.Builder
	for i, n := 0, len(pattern); i < n; {
		c := pattern[i]
		i++
		switch c {
		case '[':
			j := i
			if j < n && pattern[j] == '!' {
				j++
			}
			if j < n && pattern[j] == ']' {
				j++
			}
			for j < n && pattern[j] != ']' {
				j++
			}
			if j >= n {
				sb.WriteString("\\[")
				continue
			}
			class := pattern[i:j]
			sb.WriteByte('[')
			if class[0] == '!' {
				sb.WriteByte('!')
				class = class[1:]
			}
			for k := 0; k < len(class); k++ {
				switch d := class[k]; {
				case d == '\\' || d == ']' || (k == 0 && d == '^'):
					sb.WriteByte('\\')
					sb.WriteByte(d)
				default:
					sb.WriteByte(d)
				}
			}
			sb.WriteByte(']')
			i = j + 1
		case '\\', '{', '}':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// MatchComponent matches a single pathname component against a
// shell-style pattern. "*" matches any sequence of characters, "?"
// matches any single character, and "[...]" and "[!...]" match
// character classes. Names starting with a period are not treated
// specially. A "[" without a matching "]" only matches itself.
func MatchComponent(pattern, name string) bool {
	matched, err := doublestar.Match(translatePattern(pattern), name)
	if err != nil {
		return pattern == name
	}
	return matched
}

// Match returns whether the path matches a pattern. Relative patterns
// are matched against the trailing components of the path. Anchored
// patterns must match the path entirely.
func (p PurePath) Match(pattern string) (bool, error) {
	cf := p.flavour.CaseFold
	drive, root, patternParts, err := p.flavour.ParseParts(cf(pattern))
	if err != nil {
		return false, err
	}
	if len(patternParts) == 0 {
		return false, status.Error(codes.InvalidArgument, "Empty pattern")
	}
	if drive != "" && drive != cf(p.drive) {
		return false, nil
	}
	if root != "" && root != cf(p.root) {
		return false, nil
	}
	parts := p.caseFoldedParts()
	if drive != "" || root != "" {
		if len(patternParts) != len(parts) {
			return false, nil
		}
		patternParts = patternParts[1:]
	} else if len(patternParts) > len(parts) {
		return false, nil
	}
	for i, j := len(parts)-1, len(patternParts)-1; j >= 0; i, j = i-1, j-1 {
		if !MatchComponent(patternParts[j], parts[i]) {
			return false, nil
		}
	}
	return true, nil
}

package path_test

import (
	"testing"

	"github.com/buildbarn/bb-pathlib/pkg/filesystem/path"
	"github.com/buildbarn/bb-pathlib/pkg/testutil"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMatchComponent(t *testing.T) {
	for _, data := range []struct {
		pattern string
		name    string
		matches bool
	}{
		{"*", "hello", true},
		{"*", ".hidden", true},
		{"*.txt", "a.txt", true},
		{"*.txt", "a.txt.gz", false},
		{"?", "a", true},
		{"?", "ab", false},
		{"[a-c]x", "bx", true},
		{"[a-c]x", "dx", false},
		{"[!a]", "b", true},
		{"[!a]", "a", false},
		{"a{b,c}", "ab", false},
		{"a{b,c}", "a{b,c}", true},
		{"a\\b", "a\\b", true},
		{"[", "[", true},
		{"[", "x", false},
		{"[a*", "[abc", true},
		{"[a*", "abc", false},
		{"a[!", "a[!", true},
		{"[]a]", "]", true},
		{"[]a]", "b", false},
		{"[!]a]", "b", true},
		{"[!]a]", "]", false},
		{"[^a]", "^", true},
		{"[^a]", "b", false},
		{"[\\]", "\\", true},
		{"[{]", "{", true},
		{"literal", "literal", true},
		{"literal", "Literal", false},
	} {
		require.Equal(t, data.matches, path.MatchComponent(data.pattern, data.name), data)
	}
}

func TestIsWildcardPattern(t *testing.T) {
	require.True(t, path.IsWildcardPattern("*.go"))
	require.True(t, path.IsWildcardPattern("a?"))
	require.True(t, path.IsWildcardPattern("[ab]"))
	require.False(t, path.IsWildcardPattern("hello.go"))
	require.False(t, path.IsWildcardPattern("a{b}"))
}

func TestPurePathMatch(t *testing.T) {
	t.Run("UNIX", func(t *testing.T) {
		for _, data := range []struct {
			path    string
			pattern string
			matches bool
		}{
			{"a/b.py", "*.py", true},
			{"a/b.py", "a/*.py", true},
			{"b.py", "a/*.py", false},
			{"/a/b.py", "/*.py", false},
			{"/a.py", "/*.py", true},
			{"a.py", "/*.py", false},
			{"/a/b/c.py", "b/*.py", true},
			{"/a/b/c.py", "a/*.py", false},
			{"A.PY", "*.py", false},
			{".bashrc", "*", true},
			{"/", "/", true},
			{"/a", "/", false},
		} {
			matches, err := path.MustNewPurePath(path.UNIXFlavour, data.path).Match(data.pattern)
			require.NoError(t, err)
			require.Equal(t, data.matches, matches, data)
		}
	})

	t.Run("Windows", func(t *testing.T) {
		for _, data := range []struct {
			path    string
			pattern string
			matches bool
		}{
			{"C:/A/B.PY", "*.py", true},
			{"c:\\a\\b.py", "A/*.PY", true},
			{"c:\\a.py", "c:/*.py", true},
			{"c:\\a.py", "d:/*.py", false},
			{"c:\\a.py", "/*.py", true},
			{"//server/share/x.py", "//SERVER/share/*.py", true},
			{"c:a.py", "c:/*.py", false},
		} {
			matches, err := path.MustNewPurePath(path.WindowsFlavour, data.path).Match(data.pattern)
			require.NoError(t, err)
			require.Equal(t, data.matches, matches, data)
		}
	})

	t.Run("EmptyPattern", func(t *testing.T) {
		for _, pattern := range []string{"", ".", "./"} {
			_, err := path.MustNewPurePath(path.UNIXFlavour, "a").Match(pattern)
			testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Empty pattern"), err)
		}
	})
}

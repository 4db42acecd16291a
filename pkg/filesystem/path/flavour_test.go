package path_test

import (
	"testing"

	"github.com/buildbarn/bb-pathlib/pkg/filesystem/path"
	"github.com/buildbarn/bb-pathlib/pkg/testutil"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestFlavourParseParts(t *testing.T) {
	t.Run("UNIX", func(t *testing.T) {
		for _, data := range []struct {
			segments []string
			drive    string
			root     string
			parts    []string
		}{
			{[]string{}, "", "", nil},
			{[]string{""}, "", "", nil},
			{[]string{"."}, "", "", nil},
			{[]string{"./"}, "", "", nil},
			{[]string{"a"}, "", "", []string{"a"}},
			{[]string{"a/./b/../c"}, "", "", []string{"a", "b", "..", "c"}},
			{[]string{"//a//b/"}, "", "/", []string{"/", "a", "b"}},
			{[]string{"///"}, "", "/", []string{"/"}},
			{[]string{"a", "/b"}, "", "/", []string{"/", "b"}},
			{[]string{"/a", "b", "/c", "d"}, "", "/", []string{"/", "c", "d"}},
			{[]string{"a", "", "b"}, "", "", []string{"a", "b"}},
			{[]string{"a\\b"}, "", "", []string{"a\\b"}},
			{[]string{"c:/a"}, "", "", []string{"c:", "a"}},
		} {
			drive, root, parts, err := path.UNIXFlavour.ParseParts(data.segments...)
			require.NoError(t, err)
			require.Equal(t, data.drive, drive, data.segments)
			require.Equal(t, data.root, root, data.segments)
			require.Equal(t, data.parts, parts, data.segments)
		}
	})

	t.Run("UNIXNullByte", func(t *testing.T) {
		_, _, _, err := path.UNIXFlavour.ParseParts("hello\x00world")
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Path contains a null byte"), err)
	})

	t.Run("Windows", func(t *testing.T) {
		for _, data := range []struct {
			segments []string
			drive    string
			root     string
			parts    []string
		}{
			{[]string{"a/b\\c"}, "", "", []string{"a", "b", "c"}},
			{[]string{"c:"}, "c:", "", []string{"c:"}},
			{[]string{"c:a"}, "c:", "", []string{"c:", "a"}},
			{[]string{"c:/a/b"}, "c:", "\\", []string{"c:\\", "a", "b"}},
			{[]string{"\\a"}, "", "\\", []string{"\\", "a"}},
			{[]string{"\\\\server\\share\\x"}, "\\\\server\\share", "\\", []string{"\\\\server\\share\\", "x"}},
			{[]string{"//server/share"}, "\\\\server\\share", "\\", []string{"\\\\server\\share\\"}},
			{[]string{"\\\\?\\C:\\x"}, "\\\\?\\C:", "\\", []string{"\\\\?\\C:\\", "x"}},
			{[]string{"\\\\?\\UNC\\server\\share\\x"}, "\\\\?\\UNC\\server\\share", "\\", []string{"\\\\?\\UNC\\server\\share\\", "x"}},
			{[]string{"C:", "/", "a"}, "C:", "\\", []string{"C:\\", "a"}},
			{[]string{"C:/a", "D:b"}, "D:", "", []string{"D:", "b"}},
			{[]string{"a", "c:/b", "c"}, "c:", "\\", []string{"c:\\", "b", "c"}},
		} {
			drive, root, parts, err := path.WindowsFlavour.ParseParts(data.segments...)
			require.NoError(t, err)
			require.Equal(t, data.drive, drive, data.segments)
			require.Equal(t, data.root, root, data.segments)
			require.Equal(t, data.parts, parts, data.segments)
		}
	})

	t.Run("WindowsInvalidUNC", func(t *testing.T) {
		_, _, _, err := path.WindowsFlavour.ParseParts("\\\\server")
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Invalid UNC path: expected a non-empty server and share name"), err)

		_, _, _, err = path.WindowsFlavour.ParseParts("\\\\server\\\\share")
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Invalid UNC path: expected a non-empty share name"), err)

		_, _, _, err = path.WindowsFlavour.ParseParts("\\\\\\share")
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Invalid UNC path: expected a non-empty server name"), err)

		_, _, _, err = path.WindowsFlavour.ParseParts("//\\share\\x")
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Invalid UNC path: expected a non-empty server name"), err)

		_, _, _, err = path.WindowsFlavour.ParseParts("\\\\?\\UNC\\\\share")
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Invalid UNC path: expected a non-empty server name"), err)
	})
}

func TestFlavourJoinParsedParts(t *testing.T) {
	f := path.WindowsFlavour
	for _, data := range [][3]string{
		{"C:\\a", "b", "C:\\a\\b"},
		{"C:\\a", "\\b", "C:\\b"},
		{"C:a", "c:b", "C:a\\b"},
		{"C:\\a", "D:b", "D:b"},
		{"C:\\a", "D:\\b", "D:\\b"},
		{"a", "\\\\server\\share\\b", "\\\\server\\share\\b"},
	} {
		p := path.MustNewPurePath(f, data[0])
		joined, err := p.JoinPath(data[1])
		require.NoError(t, err)
		require.Equal(t, data[2], joined.String(), data)
	}
}

func TestFlavourCaseFold(t *testing.T) {
	require.Equal(t, "Hello", path.UNIXFlavour.CaseFold("Hello"))
	require.Equal(t, "hello", path.WindowsFlavour.CaseFold("Hello"))
	require.Equal(t, []string{"A", "b"}, path.UNIXFlavour.CaseFoldParts([]string{"A", "b"}))
	require.Equal(t, []string{"a", "b"}, path.WindowsFlavour.CaseFoldParts([]string{"A", "b"}))
}

func TestFlavourIsReserved(t *testing.T) {
	require.False(t, path.UNIXFlavour.IsReserved([]string{"nul"}))

	for _, p := range []string{"nul", "a/con.txt", "C:/x/COM1", "lpt9.tar.gz"} {
		require.True(t, path.MustNewPurePath(path.WindowsFlavour, p).IsReserved(), p)
	}
	for _, p := range []string{"", "console", "com0", "//server/share/nul", "nul/a"} {
		require.False(t, path.MustNewPurePath(path.WindowsFlavour, p).IsReserved(), p)
	}
}

func TestFlavourString(t *testing.T) {
	require.Equal(t, "unix", path.UNIXFlavour.String())
	require.Equal(t, "windows", path.WindowsFlavour.String())
	require.Equal(t, byte('/'), path.UNIXFlavour.Separator())
	require.Equal(t, byte('\\'), path.WindowsFlavour.Separator())

	_, ok := path.UNIXFlavour.AltSeparator()
	require.False(t, ok)
	altSeparator, ok := path.WindowsFlavour.AltSeparator()
	require.True(t, ok)
	require.Equal(t, byte('/'), altSeparator)
}

func TestParseFlavour(t *testing.T) {
	for _, flavour := range []path.Flavour{path.UNIXFlavour, path.WindowsFlavour} {
		parsed, err := path.ParseFlavour(flavour.String())
		require.NoError(t, err)
		require.Equal(t, flavour, parsed)
	}

	parsed, err := path.ParseFlavour("local")
	require.NoError(t, err)
	require.Equal(t, path.LocalFlavour, parsed)

	_, err = path.ParseFlavour("UNIX")
	testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Unknown path flavour \"UNIX\""), err)
}

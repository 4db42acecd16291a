//go:build darwin || freebsd || linux
// +build darwin freebsd linux

package pathlib_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/buildbarn/bb-pathlib/pkg/clock"
	"github.com/buildbarn/bb-pathlib/pkg/filesystem"
	"github.com/buildbarn/bb-pathlib/pkg/filesystem/path"
	"github.com/buildbarn/bb-pathlib/pkg/pathlib"
	"github.com/stretchr/testify/require"
)

func newLocalDirectory(t *testing.T) pathlib.Path {
	// Resolve the temporary directory, as it may be placed behind a
	// symbolic link (e.g., /tmp -> /private/tmp on macOS).
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	p, err := pathlib.NewFactory(path.UNIXFlavour, filesystem.NewLocalAccessor(), clock.SystemClock).New(dir)
	require.NoError(t, err)
	return p
}

func mustJoinPath(t *testing.T, p pathlib.Path, segments ...string) pathlib.Path {
	joined, err := p.JoinPath(segments...)
	require.NoError(t, err)
	return joined
}

func TestLocalPathLifecycle(t *testing.T) {
	dir := newLocalDirectory(t)
	nested := mustJoinPath(t, dir, "a/b/c")

	// Creating nested directories requires parents to be set.
	require.Equal(t, filesystem.ErrorKindNotFound, filesystem.GetErrorKind(nested.Mkdir(0o777, false, false)))
	require.NoError(t, nested.Mkdir(0o777, true, false))
	require.Error(t, nested.Mkdir(0o777, true, false))
	require.NoError(t, nested.Mkdir(0o777, true, true))

	isDir, err := nested.IsDir()
	require.NoError(t, err)
	require.True(t, isDir)

	// Files can be created and written.
	file := nested.Append("hello.txt")
	require.NoError(t, file.Touch(0o666, false))
	require.Error(t, file.Touch(0o666, false))
	require.NoError(t, file.Touch(0o666, true))
	require.NoError(t, file.WriteText("Hello, world"))
	text, err := file.ReadText()
	require.NoError(t, err)
	require.Equal(t, "Hello, world", text)

	require.NoError(t, file.Chmod(0o600))
	info, err := file.Stat()
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Permissions())
	require.Equal(t, int64(12), info.Size())

	// A directory containing files cannot be removed, and a mkdir
	// with existOK on top of a file must fail.
	require.Error(t, nested.Rmdir())
	require.Error(t, file.Mkdir(0o777, false, true))

	// Rename refuses to overwrite existing files, while Replace does.
	other := nested.Append("other.txt")
	require.NoError(t, other.WriteBytes([]byte("Other")))
	_, err = file.Rename(other.PurePath)
	require.Error(t, err)
	renamed, err := file.Replace(other.PurePath)
	require.NoError(t, err)
	text, err = renamed.ReadText()
	require.NoError(t, err)
	require.Equal(t, "Hello, world", text)

	exists, err := file.Exists()
	require.NoError(t, err)
	require.False(t, exists)

	final, err := renamed.Rename(file.PurePath)
	require.NoError(t, err)
	require.Equal(t, file.String(), final.String())

	// Tear everything down again.
	require.Error(t, nested.Unlink(false))
	require.NoError(t, final.Unlink(false))
	require.Error(t, final.Unlink(false))
	require.NoError(t, final.Unlink(true))
	require.NoError(t, nested.Rmdir())
	exists, err = nested.Exists()
	require.NoError(t, err)
	require.False(t, exists)
}

func TestLocalPathIterDir(t *testing.T) {
	dir := newLocalDirectory(t)
	for _, name := range []string{"b", "a", "c"} {
		require.NoError(t, dir.Append(name).Touch(0o666, false))
	}

	var names []string
	for child, err := range dir.IterDir() {
		require.NoError(t, err)
		names = append(names, child.Name())
	}
	require.Equal(t, []string{"a", "b", "c"}, names)

	var matches []string
	for match, err := range dir.Glob("[ab]") {
		require.NoError(t, err)
		matches = append(matches, match.Name())
	}
	require.ElementsMatch(t, []string{"a", "b"}, matches)
}

func TestLocalPathSymlinks(t *testing.T) {
	dir := newLocalDirectory(t)
	target := dir.Append("target")
	require.NoError(t, target.Mkdir(0o777, false, false))
	link := dir.Append("link")
	require.NoError(t, link.SymlinkTo(path.MustNewPurePath(path.UNIXFlavour, "target")))

	isSymlink, err := link.IsSymlink()
	require.NoError(t, err)
	require.True(t, isSymlink)
	isDir, err := link.IsDir()
	require.NoError(t, err)
	require.True(t, isDir)

	same, err := link.SameFile(target)
	require.NoError(t, err)
	require.True(t, same)
	same, err = link.SameFile(dir)
	require.NoError(t, err)
	require.False(t, same)

	// Symbolic links in the path should be resolved, while ".."
	// components are applied after resolution.
	resolved, err := mustJoinPath(t, link, "../link").Resolve(true)
	require.NoError(t, err)
	require.Equal(t, target.String(), resolved.String())

	_, err = link.Append("nonexistent").Resolve(true)
	require.Equal(t, filesystem.ErrorKindNotFound, filesystem.GetErrorKind(err))
	resolved, err = link.Append("nonexistent").Resolve(false)
	require.NoError(t, err)
	require.Equal(t, target.Append("nonexistent").String(), resolved.String())

	// Dangling symbolic links only exist as symbolic links.
	dangling := dir.Append("dangling")
	require.NoError(t, dangling.SymlinkTo(path.MustNewPurePath(path.UNIXFlavour, "nonexistent")))
	exists, err := dangling.Exists()
	require.NoError(t, err)
	require.False(t, exists)
	isSymlink, err = dangling.IsSymlink()
	require.NoError(t, err)
	require.True(t, isSymlink)
}

func TestLocalPathIsMount(t *testing.T) {
	root, err := pathlib.NewWithFlavour(filesystem.NewLocalAccessor(), path.UNIXFlavour, "/")
	require.NoError(t, err)
	isMount, err := root.IsMount()
	require.NoError(t, err)
	require.True(t, isMount)

	dir := newLocalDirectory(t)
	subdirectory := dir.Append("subdirectory")
	require.NoError(t, subdirectory.Mkdir(0o777, false, false))
	isMount, err = subdirectory.IsMount()
	require.NoError(t, err)
	require.False(t, isMount)
}

func TestLocalPathCwd(t *testing.T) {
	accessor := filesystem.NewLocalAccessor()
	wd, err := os.Getwd()
	require.NoError(t, err)

	cwd, err := pathlib.Cwd(accessor)
	require.NoError(t, err)
	require.Equal(t, wd, cwd.String())

	relative, err := pathlib.New(accessor, "foo", "..", "bar")
	require.NoError(t, err)
	absolute, err := relative.Absolute()
	require.NoError(t, err)
	require.Equal(t, wd+"/foo/../bar", absolute.String())
}

func TestLocalPathRelativeGlob(t *testing.T) {
	dir := newLocalDirectory(t)
	require.NoError(t, mustJoinPath(t, dir, "a/b").Mkdir(0o777, true, false))
	require.NoError(t, mustJoinPath(t, dir, "a/b/c.txt").Touch(0o666, false))
	require.NoError(t, mustJoinPath(t, dir, "a/d.txt").Touch(0o666, false))
	t.Chdir(dir.String())

	a, err := pathlib.New(filesystem.NewLocalAccessor(), "a")
	require.NoError(t, err)

	var matches []string
	for match, err := range a.Glob("*.txt") {
		require.NoError(t, err)
		matches = append(matches, match.String())
	}
	require.ElementsMatch(t, []string{"a/d.txt"}, matches)

	matches = nil
	for match, err := range a.RGlob("*.txt") {
		require.NoError(t, err)
		matches = append(matches, match.String())
	}
	require.ElementsMatch(t, []string{"a/d.txt", "a/b/c.txt"}, matches)
}

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/buildbarn/bb-pathlib/pkg/testutil"
	"github.com/buildbarn/bb-pathlib/pkg/util"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type exampleConfiguration struct {
	Name    string   `json:"name"`
	Workers int      `json:"workers"`
	Tags    []string `json:"tags"`
}

func writeConfigurationFile(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "config.jsonnet")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o666))
	return path
}

func TestUnmarshalConfigurationFromFile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		t.Setenv("EXAMPLE_NAME", "workspace")
		path := writeConfigurationFile(t, `
local tags = ['a', 'b'];
{
  name: std.extVar('EXAMPLE_NAME'),
  workers: 2 * 4,
  tags: tags + ['c'],
}`)

		var configuration exampleConfiguration
		require.NoError(t, util.UnmarshalConfigurationFromFile(path, &configuration))
		require.Equal(t, exampleConfiguration{
			Name:    "workspace",
			Workers: 8,
			Tags:    []string{"a", "b", "c"},
		}, configuration)
	})

	t.Run("NonexistentFile", func(t *testing.T) {
		var configuration exampleConfiguration
		err := util.UnmarshalConfigurationFromFile(filepath.Join(t.TempDir(), "nonexistent.jsonnet"), &configuration)
		testutil.RequirePrefixedStatus(t, status.Error(codes.Unknown, "Failed to read file contents: "), err)
	})

	t.Run("EvaluationFailure", func(t *testing.T) {
		path := writeConfigurationFile(t, `{ name: error 'Name not set' }`)

		var configuration exampleConfiguration
		err := util.UnmarshalConfigurationFromFile(path, &configuration)
		testutil.RequirePrefixedStatus(t, status.Error(codes.InvalidArgument, "Failed to evaluate configuration: "), err)
	})

	t.Run("UnknownField", func(t *testing.T) {
		path := writeConfigurationFile(t, `{ name: 'workspace', color: 'blue' }`)

		var configuration exampleConfiguration
		err := util.UnmarshalConfigurationFromFile(path, &configuration)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Failed to unmarshal configuration: json: unknown field \"color\""), err)
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		path := writeConfigurationFile(t, `{ workers: 'many' }`)

		var configuration exampleConfiguration
		err := util.UnmarshalConfigurationFromFile(path, &configuration)
		testutil.RequirePrefixedStatus(t, status.Error(codes.InvalidArgument, "Failed to unmarshal configuration: "), err)
	})
}

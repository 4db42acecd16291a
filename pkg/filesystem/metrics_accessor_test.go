package filesystem_test

import (
	"strings"
	"syscall"
	"testing"

	"github.com/buildbarn/bb-pathlib/internal/mock"
	"github.com/buildbarn/bb-pathlib/pkg/filesystem"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMetricsAccessor(t *testing.T) {
	ctrl := gomock.NewController(t)

	baseAccessor := mock.NewMockAccessor(ctrl)
	accessor := filesystem.NewMetricsAccessor(baseAccessor, "metrics_test")

	info := filesystem.NewFileInfo("file", filesystem.FileTypeRegularFile)
	baseAccessor.EXPECT().Stat("/file").Return(info, nil).Times(2)
	baseAccessor.EXPECT().Lstat("/nonexistent").Return(filesystem.FileInfo{}, syscall.ENOENT)
	baseAccessor.EXPECT().ReadDir("/file").Return(nil, syscall.ENOTDIR)
	errPermissionDenied := status.Error(codes.PermissionDenied, "Access denied")
	baseAccessor.EXPECT().ReadFile("/secret").Return(nil, errPermissionDenied)
	baseAccessor.EXPECT().Rename("/a", "/b").Return(syscall.EXDEV)

	// Results and errors must be passed through unmodified.
	for i := 0; i < 2; i++ {
		gotInfo, err := accessor.Stat("/file")
		require.NoError(t, err)
		require.Equal(t, info, gotInfo)
	}
	_, err := accessor.Lstat("/nonexistent")
	require.Equal(t, syscall.ENOENT, err)
	_, err = accessor.ReadDir("/file")
	require.Equal(t, syscall.ENOTDIR, err)
	_, err = accessor.ReadFile("/secret")
	require.Equal(t, errPermissionDenied, err)
	require.Equal(t, syscall.EXDEV, accessor.Rename("/a", "/b"))

	require.NoError(t, testutil.GatherAndCompare(
		prometheus.DefaultGatherer,
		strings.NewReader(`
# HELP buildbarn_filesystem_accessor_operations_total Total number of operations performed on file system accessors.
# TYPE buildbarn_filesystem_accessor_operations_total counter
buildbarn_filesystem_accessor_operations_total{name="metrics_test",operation="Lstat",result="NotFound"} 1
buildbarn_filesystem_accessor_operations_total{name="metrics_test",operation="ReadDir",result="NotADirectory"} 1
buildbarn_filesystem_accessor_operations_total{name="metrics_test",operation="ReadFile",result="PermissionDenied"} 1
buildbarn_filesystem_accessor_operations_total{name="metrics_test",operation="Rename",result="Other"} 1
buildbarn_filesystem_accessor_operations_total{name="metrics_test",operation="Stat",result="Success"} 2
`),
		"buildbarn_filesystem_accessor_operations_total"))

	// Duration histograms exist for every operation, regardless of
	// whether they have been called.
	count, err := testutil.GatherAndCount(prometheus.DefaultGatherer, "buildbarn_filesystem_accessor_operations_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 16, count)
}

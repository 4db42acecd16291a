package filesystem

import (
	"os"
	"time"

	"github.com/buildbarn/bb-pathlib/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	accessorOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "filesystem",
			Name:      "accessor_operations_total",
			Help:      "Total number of operations performed on file system accessors.",
		},
		[]string{"name", "operation", "result"})
	accessorOperationsDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "buildbarn",
			Subsystem: "filesystem",
			Name:      "accessor_operations_duration_seconds",
			Help:      "Amount of time spent per operation on file system accessors, in seconds.",
			Buckets:   util.DecimalExponentialBuckets(-6, 7, 2),
		},
		[]string{"name", "operation"})
)

func init() {
	prometheus.MustRegister(accessorOperationsTotal)
	prometheus.MustRegister(accessorOperationsDurationSeconds)
}

type operationMetrics struct {
	total           *prometheus.CounterVec
	durationSeconds prometheus.Observer
}

func newOperationMetrics(name, operation string) operationMetrics {
	return operationMetrics{
		total: accessorOperationsTotal.MustCurryWith(prometheus.Labels{
			"name":      name,
			"operation": operation,
		}),
		durationSeconds: accessorOperationsDurationSeconds.WithLabelValues(name, operation),
	}
}

func (m *operationMetrics) observe(timeStart time.Time, err error) {
	m.durationSeconds.Observe(time.Now().Sub(timeStart).Seconds())
	result := "Success"
	if err != nil {
		result = GetErrorKind(err).String()
	}
	m.total.WithLabelValues(result).Inc()
}

type metricsAccessor struct {
	base Accessor

	readDir         operationMetrics
	stat            operationMetrics
	lstat           operationMetrics
	resolveSymlinks operationMetrics
	getwd           operationMetrics
	userHomeDir     operationMetrics
	mkdir           operationMetrics
	remove          operationMetrics
	rmdir           operationMetrics
	rename          operationMetrics
	symlink         operationMetrics
	chmod           operationMetrics
	lchmod          operationMetrics
	chtimes         operationMetrics
	readFile        operationMetrics
	writeFile       operationMetrics
}

// NewMetricsAccessor creates an adapter for Accessor that adds basic
// instrumentation in the form of Prometheus metrics.
func NewMetricsAccessor(base Accessor, name string) Accessor {
	return &metricsAccessor{
		base: base,

		readDir:         newOperationMetrics(name, "ReadDir"),
		stat:            newOperationMetrics(name, "Stat"),
		lstat:           newOperationMetrics(name, "Lstat"),
		resolveSymlinks: newOperationMetrics(name, "ResolveSymlinks"),
		getwd:           newOperationMetrics(name, "Getwd"),
		userHomeDir:     newOperationMetrics(name, "UserHomeDir"),
		mkdir:           newOperationMetrics(name, "Mkdir"),
		remove:          newOperationMetrics(name, "Remove"),
		rmdir:           newOperationMetrics(name, "Rmdir"),
		rename:          newOperationMetrics(name, "Rename"),
		symlink:         newOperationMetrics(name, "Symlink"),
		chmod:           newOperationMetrics(name, "Chmod"),
		lchmod:          newOperationMetrics(name, "Lchmod"),
		chtimes:         newOperationMetrics(name, "Chtimes"),
		readFile:        newOperationMetrics(name, "ReadFile"),
		writeFile:       newOperationMetrics(name, "WriteFile"),
	}
}

func (a *metricsAccessor) ReadDir(path string) ([]FileInfo, error) {
	timeStart := time.Now()
	entries, err := a.base.ReadDir(path)
	a.readDir.observe(timeStart, err)
	return entries, err
}

func (a *metricsAccessor) Stat(path string) (FileInfo, error) {
	timeStart := time.Now()
	info, err := a.base.Stat(path)
	a.stat.observe(timeStart, err)
	return info, err
}

func (a *metricsAccessor) Lstat(path string) (FileInfo, error) {
	timeStart := time.Now()
	info, err := a.base.Lstat(path)
	a.lstat.observe(timeStart, err)
	return info, err
}

func (a *metricsAccessor) ResolveSymlinks(path string, strict bool) (string, bool, error) {
	timeStart := time.Now()
	resolved, supported, err := a.base.ResolveSymlinks(path, strict)
	a.resolveSymlinks.observe(timeStart, err)
	return resolved, supported, err
}

func (a *metricsAccessor) Getwd() (string, error) {
	timeStart := time.Now()
	wd, err := a.base.Getwd()
	a.getwd.observe(timeStart, err)
	return wd, err
}

func (a *metricsAccessor) UserHomeDir(user string) (string, error) {
	timeStart := time.Now()
	home, err := a.base.UserHomeDir(user)
	a.userHomeDir.observe(timeStart, err)
	return home, err
}

func (a *metricsAccessor) Mkdir(path string, perm os.FileMode) error {
	timeStart := time.Now()
	err := a.base.Mkdir(path, perm)
	a.mkdir.observe(timeStart, err)
	return err
}

func (a *metricsAccessor) Remove(path string) error {
	timeStart := time.Now()
	err := a.base.Remove(path)
	a.remove.observe(timeStart, err)
	return err
}

func (a *metricsAccessor) Rmdir(path string) error {
	timeStart := time.Now()
	err := a.base.Rmdir(path)
	a.rmdir.observe(timeStart, err)
	return err
}

func (a *metricsAccessor) Rename(oldPath, newPath string) error {
	timeStart := time.Now()
	err := a.base.Rename(oldPath, newPath)
	a.rename.observe(timeStart, err)
	return err
}

func (a *metricsAccessor) Symlink(target, path string) error {
	timeStart := time.Now()
	err := a.base.Symlink(target, path)
	a.symlink.observe(timeStart, err)
	return err
}

func (a *metricsAccessor) Chmod(path string, perm os.FileMode) error {
	timeStart := time.Now()
	err := a.base.Chmod(path, perm)
	a.chmod.observe(timeStart, err)
	return err
}

func (a *metricsAccessor) Lchmod(path string, perm os.FileMode) error {
	timeStart := time.Now()
	err := a.base.Lchmod(path, perm)
	a.lchmod.observe(timeStart, err)
	return err
}

func (a *metricsAccessor) Chtimes(path string, atime, mtime time.Time) error {
	timeStart := time.Now()
	err := a.base.Chtimes(path, atime, mtime)
	a.chtimes.observe(timeStart, err)
	return err
}

func (a *metricsAccessor) ReadFile(path string) ([]byte, error) {
	timeStart := time.Now()
	data, err := a.base.ReadFile(path)
	a.readFile.observe(timeStart, err)
	return data, err
}

func (a *metricsAccessor) WriteFile(path string, data []byte, perm os.FileMode, exclusive bool) error {
	timeStart := time.Now()
	err := a.base.WriteFile(path, data, perm, exclusive)
	a.writeFile.observe(timeStart, err)
	return err
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePaths(t *testing.T) {
	base := t.TempDir()

	t.Run("relative paths", func(t *testing.T) {
		paths := ResolvePaths(base, Default().Paths)

		assert.Equal(t, filepath.Join(base, "datasets"), paths.DatasetsDir)
		assert.Equal(t, base, paths.OutputDir)
		assert.Equal(t, filepath.Join(base, "datasets", "sample_sales.csv"), paths.SalesCSV)
		assert.Equal(t, filepath.Join(base, "datasets", "student_grades.csv"), paths.StudentsCSV)
		assert.Equal(t, filepath.Join(base, "examples", "basic_plots.png"), paths.BasicPlotsPNG)
		assert.Equal(t, filepath.Join(base, "projects", "sales_analysis_report.png"), paths.SalesReportPNG)
		assert.Equal(t, filepath.Join(base, "projects", "student_performance_report.png"), paths.StudentReportPNG)
	})

	t.Run("absolute paths are kept", func(t *testing.T) {
		other := t.TempDir()
		cfg := Default().Paths
		cfg.DatasetsDir = other
		cfg.SalesFile = filepath.Join(other, "custom.csv")

		paths := ResolvePaths(base, cfg)
		assert.Equal(t, other, paths.DatasetsDir)
		assert.Equal(t, filepath.Join(other, "custom.csv"), paths.SalesCSV)
	})

	t.Run("export path", func(t *testing.T) {
		paths := ResolvePaths(base, Default().Paths)
		assert.Equal(t, filepath.Join(base, "exports", "sales", "products.csv"), paths.ExportPath("sales", "products.csv"))
	})
}

func TestEnsureOutputDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := Default().Paths
	cfg.OutputDir = "out"
	paths := ResolvePaths(base, cfg)

	require.NoError(t, paths.EnsureOutputDirectories())

	for _, dir := range []string{paths.OutputDir, paths.ExamplesDir, paths.ProjectsDir, paths.ExportsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// idempotent
	assert.NoError(t, paths.EnsureOutputDirectories())
}

func TestGetPathsUsesWorkingDirectory(t *testing.T) {
	paths, err := GetPaths(Default().Paths)
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, paths.BaseDir)
	assert.True(t, filepath.IsAbs(paths.SalesCSV))
}

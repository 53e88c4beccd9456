package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataguide/internal/config"
	"dataguide/internal/exporter"
	"dataguide/internal/infrastructure"
	"dataguide/internal/sampledata"
)

func writeDataset(t *testing.T, dir string) {
	t.Helper()
	paths := config.ResolvePaths(dir, config.Default().Paths)
	require.NoError(t, paths.EnsureDatasetsDir())
	records := sampledata.New(42).SalesRecords(200, 30)
	require.NoError(t, exporter.NewDatasetExporter(paths).ExportSales(records, paths.SalesCSV))
}

func TestRun(t *testing.T) {
	t.Cleanup(infrastructure.ResetLoggerForTesting)
	dir := t.TempDir()
	writeDataset(t, dir)

	args := []string{
		"-no-color", "-log-level", "error", "-dpi", "50",
		"-datasets", filepath.Join(dir, "datasets"),
		"-out", filepath.Join(dir, "out"),
		"-export-csv", "-export-xlsx",
	}
	var out bytes.Buffer
	require.Equal(t, 0, run(context.Background(), args, &out))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "🚀 SALES DATA ANALYSIS PROJECT\n"+strings.Repeat("=", 50)+"\n"))
	assert.Contains(t, text, "Loaded 200 sales records")
	assert.Contains(t, text, "Visualizations saved as 'sales_analysis_report.png'")
	assert.Contains(t, text, "Exported 5 files to ")
	assert.True(t, strings.HasSuffix(text, "\n\n✅ Analysis complete! Check the generated visualizations.\n"))

	assert.FileExists(t, filepath.Join(dir, "out", "projects", "sales_analysis_report.png"))
	assert.FileExists(t, filepath.Join(dir, "out", "exports", "sales_analysis", "sales_analysis.xlsx"))
}

func TestRunMissingDataset(t *testing.T) {
	t.Cleanup(infrastructure.ResetLoggerForTesting)
	dir := t.TempDir()

	var out bytes.Buffer
	code := run(context.Background(), []string{"-log-level", "error", "-datasets", dir, "-out", dir}, &out)

	assert.Equal(t, 1, code)
	assert.NotContains(t, out.String(), "Analysis complete")
}

func TestRunOutputDirMissing(t *testing.T) {
	t.Cleanup(infrastructure.ResetLoggerForTesting)
	dir := t.TempDir()
	writeDataset(t, dir)
	t.Setenv("GUIDE_PATHS_CREATE_OUTPUT_DIRS", "false")

	var out bytes.Buffer
	code := run(context.Background(), []string{
		"-log-level", "error", "-dpi", "50",
		"-datasets", filepath.Join(dir, "datasets"),
		"-out", filepath.Join(dir, "nowhere"),
	}, &out)

	assert.Equal(t, 1, code)
	_, err := os.Stat(filepath.Join(dir, "nowhere"))
	assert.True(t, os.IsNotExist(err))
}

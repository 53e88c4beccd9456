package cli

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "dataguide/internal/errors"
	"dataguide/internal/infrastructure"
)

func parse(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return f
}

func parseWithAlpha(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	f.RegisterSignificance(fs)
	require.NoError(t, fs.Parse(args))
	return f
}

func TestSignificanceFlag(t *testing.T) {
	t.Cleanup(infrastructure.ResetLoggerForTesting)

	_, rt, err := Start(context.Background(), "studentreport", parseWithAlpha(t, "-alpha", "0.01"), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 0.01, rt.Config.Report.Significance)

	_, rt, err = Start(context.Background(), "studentreport", parseWithAlpha(t), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 0.05, rt.Config.Report.Significance)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	RegisterFlags(fs).RegisterSignificance(fs)
	assert.Error(t, fs.Parse([]string{"-alpha", "low"}))
}

func TestStartAppliesFlags(t *testing.T) {
	t.Cleanup(infrastructure.ResetLoggerForTesting)
	dir := t.TempDir()
	metricsFile := filepath.Join(dir, "metrics", "test.prom")

	f := parse(t,
		"-datasets", filepath.Join(dir, "data"),
		"-out", filepath.Join(dir, "out"),
		"-seed", "7",
		"-dpi", "80",
		"-no-color",
		"-log-level", "ERROR",
		"-metrics-file", metricsFile,
	)

	var out bytes.Buffer
	ctx, rt, err := Start(context.Background(), "arraybasics", f, &out)
	require.NoError(t, err)

	assert.NotEmpty(t, infrastructure.GetTraceID(ctx))
	assert.Equal(t, int64(7), rt.Config.Report.Seed)
	assert.Equal(t, 80, rt.Config.Report.ChartDPI)
	assert.False(t, rt.Config.Report.Color)
	assert.Equal(t, "error", rt.Config.Logging.Level)
	assert.Equal(t, filepath.Join(dir, "data", "sample_sales.csv"), rt.Paths.SalesCSV)
	assert.Equal(t, filepath.Join(dir, "out", "examples"), rt.Paths.ExamplesDir)

	require.NoError(t, rt.PrepareOutput())
	assert.DirExists(t, rt.Paths.ExportsDir)

	rt.Printer.Section("X")
	assert.Equal(t, "=== X ===\n", out.String())

	rt.Metrics.ChartRendered("basic_plots")
	rt.Close(ctx)
	assert.FileExists(t, metricsFile)
}

func TestStartRejectsBadFlags(t *testing.T) {
	t.Cleanup(infrastructure.ResetLoggerForTesting)

	_, _, err := Start(context.Background(), "charts", parse(t, "-dpi", "5"), &bytes.Buffer{})
	assert.True(t, errors.Is(err, apierrors.ErrInvalidConfig))

	for _, alpha := range []string{"0", "1", "1.5", "-0.05"} {
		_, _, err = Start(context.Background(), "studentreport", parseWithAlpha(t, "-alpha", alpha), &bytes.Buffer{})
		assert.True(t, errors.Is(err, apierrors.ErrInvalidConfig), "alpha %s", alpha)
	}

	_, _, err = Start(context.Background(), "charts", parse(t, "-config", filepath.Join(t.TempDir(), "none.yaml")), &bytes.Buffer{})
	assert.True(t, errors.Is(err, apierrors.ErrInvalidConfig))
}

func TestConfigFile(t *testing.T) {
	t.Cleanup(infrastructure.ResetLoggerForTesting)
	path := filepath.Join(t.TempDir(), "dataguide.yaml")
	require.NoError(t, os.WriteFile(path, []byte("report:\n  seed: 99\n  chart_dpi: 120\n"), 0644))

	_, rt, err := Start(context.Background(), "charts", parse(t, "-config", path, "-dpi", "150"), &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, int64(99), rt.Config.Report.Seed)
	assert.Equal(t, 150, rt.Config.Report.ChartDPI)
}

func TestPrintVersion(t *testing.T) {
	var out bytes.Buffer
	assert.False(t, parse(t).PrintVersion(&out, "charts"))
	assert.True(t, parse(t, "-version").PrintVersion(&out, "charts"))
	assert.Contains(t, out.String(), "dataguide charts v")
}

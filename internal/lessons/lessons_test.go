package lessons

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataguide/internal/config"
	apierrors "dataguide/internal/errors"
	"dataguide/internal/infrastructure"
	"dataguide/internal/report"
)

func newEnv(t *testing.T, out *bytes.Buffer) *Env {
	t.Helper()
	paths := config.ResolvePaths(t.TempDir(), config.Default().Paths)
	return &Env{
		Printer: report.NewPrinter(out, false),
		Paths:   paths,
		Seed:    config.DefaultSeed,
		DPI:     40,
		Metrics: infrastructure.NewMetrics("lessons_test"),
	}
}

func TestArrayLessons(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), newEnv(t, &out), ArrayLessons...))

	want := `=== Array Creation Examples ===
From list: [1 2 3 4 5]
Zeros: [0. 0. 0. 0. 0.]
Ones:
[[1. 1. 1.]
 [1. 1. 1.]
 [1. 1. 1.]]
Range: [0 2 4 6 8]
Linspace: [0.   0.25 0.5  0.75 1.  ]

=== Mathematical Operations ===
Addition: [11 22 33 44 55]
Multiplication: [ 10  40  90 160 250]
Square root: [1.         1.41421356 1.73205081 2.         2.23606798]
Mean: 3.0
Standard deviation: 1.4142135623730951

=== Real-World Example: Temperature Analysis ===
Average temperature: 25.3°C
Hottest day: Thu (30°C)
Coldest temperature: 21°C
Temperature range: 9°C
`
	assert.Equal(t, want, out.String())
}

func TestTableLessons(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), newEnv(t, &out), TableLessons...))
	text := out.String()

	for _, want := range []string{
		"=== DataFrame Creation Examples ===",
		"Charlie",
		"Shape: (60, 3)",
		"Columns: ['Product', 'Sales', 'Region']",
		"First 5 rows:",
		"Basic statistics:",
		"High sales records: ",
		"Sales by Product:",
		"Average Sales by Region and Product:",
		"Top 5 students:",
		"Grade distribution:",
		"Average scores by grade level:",
	} {
		assert.Contains(t, text, want)
	}

	// Sections appear in lesson order
	assert.Less(t, strings.Index(text, "Data Exploration"), strings.Index(text, "Data Filtering and Grouping"))
}

func TestTableLessonsReproducible(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, Run(context.Background(), newEnv(t, &a), TableLessons...))
	require.NoError(t, Run(context.Background(), newEnv(t, &b), TableLessons...))
	assert.Equal(t, a.String(), b.String())
}

func TestRenderAll(t *testing.T) {
	var out bytes.Buffer
	env := newEnv(t, &out)
	require.NoError(t, env.Paths.EnsureOutputDirectories())

	require.NoError(t, RenderAll(context.Background(), env, Dashboards...))

	for _, path := range []string{env.Paths.BasicPlotsPNG, env.Paths.PandasPlotsPNG, env.Paths.AdvancedPlotsPNG} {
		info, err := os.Stat(path)
		require.NoError(t, err, path)
		assert.Positive(t, info.Size())
	}

	text := out.String()
	assert.Less(t, strings.Index(text, "Creating Basic Plots"), strings.Index(text, "Pandas Visualization"))
	assert.Less(t, strings.Index(text, "Pandas Visualization"), strings.Index(text, "Advanced Visualization"))
}

func TestDashboardMissingDirectory(t *testing.T) {
	var out bytes.Buffer
	env := newEnv(t, &out)

	err := Run(context.Background(), env, Dashboards[0].Lesson())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apierrors.ErrOutputDirMissing))
	assert.NoDirExists(t, filepath.Dir(env.Paths.BasicPlotsPNG))
}

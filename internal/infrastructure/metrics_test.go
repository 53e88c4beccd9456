package infrastructure

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataguide/internal/config"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics("salesreport")

	m.RowsLoaded("sales", 30)
	m.RowsLoaded("sales", 5)
	m.ChartRendered("sales_analysis_report")
	m.Error("MISSING_COLUMN")
	m.ObserveSection("product_analysis", time.Now().Add(-10*time.Millisecond))

	assert.Equal(t, 35.0, testutil.ToFloat64(m.rowsLoaded.WithLabelValues("sales")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.chartsRendered.WithLabelValues("sales_analysis_report")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues("MISSING_COLUMN")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.sectionDuration))

	t.Run("textfile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "metrics", "salesreport.prom")
		require.NoError(t, m.WriteTextfile(path))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), `dataguide_rows_loaded_total{dataset="sales",program="salesreport"} 35`)
	})

	t.Run("handler", func(t *testing.T) {
		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
		assert.Equal(t, 200, rec.Code)
		assert.True(t, strings.Contains(rec.Body.String(), "dataguide_charts_rendered_total"))
	})
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RowsLoaded("x", 1)
		m.ObserveSection("x", time.Now())
		m.ChartRendered("x")
		m.Error("x")
	})
	assert.NoError(t, m.WriteTextfile("ignored.prom"))
	assert.NoError(t, NewMetrics("p").WriteTextfile(""))
}

func TestTracing(t *testing.T) {
	ctx := context.Background()

	t.Run("none keeps working spans", func(t *testing.T) {
		tr, err := InitializeTracing(ctx, config.TelemetryConfig{TraceExporter: "none"}, "test", nil)
		require.NoError(t, err)
		_, span := StartSpan(ctx, "noop")
		EndSpan(span, nil)
		assert.NoError(t, tr.Shutdown(ctx))
	})

	t.Run("file exporter writes spans", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "traces", "run.json")
		tr, err := InitializeTracing(ctx, config.TelemetryConfig{TraceExporter: "file", TraceFile: path}, "test", nil)
		require.NoError(t, err)

		_, span := StartSpan(ctx, "section")
		EndSpan(span, errors.New("boom"))
		require.NoError(t, tr.Shutdown(ctx))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), `"Name":"section"`)
		assert.Contains(t, string(content), "boom")
	})

	t.Run("unknown exporter", func(t *testing.T) {
		_, err := InitializeTracing(ctx, config.TelemetryConfig{TraceExporter: "otlp"}, "test", nil)
		assert.Error(t, err)
	})
}

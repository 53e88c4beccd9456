package app

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataguide/internal/infrastructure"
	"dataguide/internal/shared/testutil"
)

func newApp(t *testing.T) *Application {
	t.Helper()
	cfg, paths := testutil.NewPaths(t)
	cfg.Server.Port = 0
	require.NoError(t, paths.EnsureOutputDirectories())
	// sales only, so the student routes have a missing dataset
	testutil.WriteFile(t, paths.SalesCSV, testutil.SalesCSV)
	testutil.WriteFile(t, paths.SalesReportPNG, "png")

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return New(cfg, paths, logger, infrastructure.NewMetrics("reportserver"))
}

func get(a *Application, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRoutes(t *testing.T) {
	a := newApp(t)

	tests := []struct {
		target string
		status int
	}{
		{"/api/health", http.StatusOK},
		{"/api/health/ready", http.StatusServiceUnavailable}, // no students dataset
		{"/api/version", http.StatusOK},
		{"/api/reports", http.StatusOK},
		{"/api/reports/projects/sales_analysis_report.png", http.StatusOK},
		{"/api/reports/projects/nothing.png", http.StatusNotFound},
		{"/api/sales/summary", http.StatusOK},
		{"/api/students/summary", http.StatusNotFound},
		{"/api/unknown", http.StatusNotFound},
		{"/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(a, tt.target)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
		})
	}
}

func TestSalesSummaryJSON(t *testing.T) {
	a := newApp(t)

	rec := get(a, "/api/sales/summary")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string `json:"status"`
		Data   struct {
			Records int `json:"records"`
			Basic   struct {
				Total float64 `json:"total"`
			} `json:"basic"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, 6, body.Data.Records)
	assert.Equal(t, 5400.0, body.Data.Basic.Total)

	metrics := get(a, "/metrics").Body.String()
	assert.Contains(t, metrics, `dataguide_rows_loaded_total{dataset="sales",program="reportserver"} 6`)
	assert.Contains(t, metrics, `route="/api/sales/summary"`)
}

func TestMissingDatasetProblem(t *testing.T) {
	a := newApp(t)

	rec := get(a, "/api/students/summary")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var problem map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, "MISSING_FILE", problem["error_code"])
	assert.Equal(t, rec.Header().Get("X-Request-ID"), problem["trace_id"])
}

func TestRunStopsOnCancel(t *testing.T) {
	a := newApp(t)
	a.Server.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

package testutil

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogCapture(t *testing.T) {
	logger, logs := NewLogCapture()

	logger.With("component", "reportserver").Warn("rate limit exceeded", "path", "/api/reports")
	logger.Info("started")

	records := logs.Records()
	require.Len(t, records, 2)

	r := AssertLogged(t, logs, slog.LevelWarn, "rate limit")
	assert.Equal(t, "reportserver", r.Attrs["component"])
	assert.Equal(t, "/api/reports", r.Attrs["path"])

	_, ok := logs.Find(slog.LevelError, "started")
	assert.False(t, ok)
}

func TestWriteDatasets(t *testing.T) {
	_, paths := NewPaths(t)
	WriteDatasets(t, paths)

	b, err := os.ReadFile(paths.SalesCSV)
	require.NoError(t, err)
	assert.Equal(t, SalesCSV, string(b))
	assert.FileExists(t, paths.StudentsCSV)
}

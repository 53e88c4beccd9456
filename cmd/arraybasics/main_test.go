package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"dataguide/internal/infrastructure"
)

func TestRun(t *testing.T) {
	t.Cleanup(infrastructure.ResetLoggerForTesting)

	var out bytes.Buffer
	code := run(context.Background(), []string{"-no-color", "-log-level", "error", "-out", t.TempDir()}, &out)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "=== Array Creation Examples ===\nFrom list: [1 2 3 4 5]")
	assert.Contains(t, out.String(), "=== Mathematical Operations ===")
	assert.Contains(t, out.String(), "Average temperature: 25.3°C")
}

func TestRunFlags(t *testing.T) {
	t.Cleanup(infrastructure.ResetLoggerForTesting)

	var out bytes.Buffer
	assert.Equal(t, 0, run(context.Background(), []string{"-version"}, &out))
	assert.Contains(t, out.String(), "dataguide arraybasics")

	assert.Equal(t, 2, run(context.Background(), []string{"-bogus"}, &out))
}

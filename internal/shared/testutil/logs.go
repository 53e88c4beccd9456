package testutil

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// LogRecord is one captured log record with its attributes flattened
type LogRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

type logStore struct {
	mu      sync.Mutex
	records []LogRecord
}

// LogCapture is a slog.Handler that keeps every record for assertions
type LogCapture struct {
	store *logStore
	attrs []slog.Attr
}

// NewLogCapture returns a logger writing into a fresh capture
func NewLogCapture() (*slog.Logger, *LogCapture) {
	h := &LogCapture{store: &logStore{}}
	return slog.New(h), h
}

// Enabled implements slog.Handler; every level is captured
func (h *LogCapture) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle implements slog.Handler
func (h *LogCapture) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		attrs[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	h.store.records = append(h.store.records, LogRecord{Level: r.Level, Message: r.Message, Attrs: attrs})
	return nil
}

// WithAttrs implements slog.Handler. Derived handlers share the record store.
func (h *LogCapture) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &LogCapture{store: h.store, attrs: merged}
}

// WithGroup implements slog.Handler. Groups are flattened.
func (h *LogCapture) WithGroup(string) slog.Handler {
	return h
}

// Records returns a copy of the captured records
func (h *LogCapture) Records() []LogRecord {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	return append([]LogRecord(nil), h.store.records...)
}

// Find returns the first record at level whose message contains message
func (h *LogCapture) Find(level slog.Level, message string) (LogRecord, bool) {
	for _, r := range h.Records() {
		if r.Level == level && strings.Contains(r.Message, message) {
			return r, true
		}
	}
	return LogRecord{}, false
}

// AssertLogged fails t unless a record at level contains message
func AssertLogged(t *testing.T, h *LogCapture, level slog.Level, message string) LogRecord {
	t.Helper()
	r, ok := h.Find(level, message)
	if !ok {
		t.Errorf("no %s record containing %q", level, message)
		for _, got := range h.Records() {
			t.Logf("  %s %s %v", got.Level, got.Message, got.Attrs)
		}
	}
	return r
}

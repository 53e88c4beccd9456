package infrastructure

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.28.0"
	"go.opentelemetry.io/otel/trace"

	"dataguide/internal/config"
)

// TracerName is the instrumentation scope of every span dataguide creates
const TracerName = "dataguide"

// Tracing holds the tracer provider of a program run
type Tracing struct {
	provider *sdktrace.TracerProvider
	file     *os.File
	logger   *slog.Logger
}

// InitializeTracing sets up OpenTelemetry tracing for one program.
// With the "none" exporter the global no-op provider stays in place and
// StartSpan still works.
func InitializeTracing(ctx context.Context, cfg config.TelemetryConfig, program string, logger *slog.Logger) (*Tracing, error) {
	if logger == nil {
		logger = GetLogger()
	}
	t := &Tracing{logger: logger}

	var w io.Writer
	switch cfg.TraceExporter {
	case "", "none":
		return t, nil
	case "stdout":
		// stdout carries the report, spans go next to the logs
		w = consoleWriter
	case "file":
		if err := os.MkdirAll(filepath.Dir(cfg.TraceFile), 0755); err != nil {
			return nil, fmt.Errorf("failed to create trace directory: %w", err)
		}
		f, err := os.OpenFile(cfg.TraceFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open trace file: %w", err)
		}
		t.file = f
		w = f
	default:
		return nil, fmt.Errorf("unsupported trace exporter: %s", cfg.TraceExporter)
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(program),
		semconv.ServiceVersion(config.AppVersion),
	)

	t.provider = sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(t.provider)

	logger.InfoContext(ctx, "Tracing initialized",
		slog.String("exporter", cfg.TraceExporter),
		slog.String("program", program))

	return t, nil
}

// Shutdown flushes spans and closes the trace file
func (t *Tracing) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	var err error
	if t.provider != nil {
		err = t.provider.Shutdown(ctx)
	}
	if t.file != nil {
		if cerr := t.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// StartSpan starts a span on the global tracer
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(TracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// EndSpan records err on the span, if any, and ends it
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

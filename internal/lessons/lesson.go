package lessons

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"dataguide/internal/config"
	"dataguide/internal/infrastructure"
	"dataguide/internal/report"
	"dataguide/internal/sampledata"
)

// Env is what a lesson may use. Lessons never share data through it.
type Env struct {
	Printer *report.Printer
	Paths   *config.Paths
	Seed    int64
	DPI     int
	Metrics *infrastructure.Metrics
	Logger  *slog.Logger
}

// generator returns a fresh generator seeded from the environment
func (e *Env) generator() *sampledata.Generator {
	return sampledata.New(e.Seed)
}

func (e *Env) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// Lesson is one named example function
type Lesson struct {
	Name string
	Run  func(ctx context.Context, env *Env) error
}

// Run executes lessons in order and stops at the first failure
func Run(ctx context.Context, env *Env, lessons ...Lesson) error {
	for _, l := range lessons {
		if err := RunOne(ctx, env, l); err != nil {
			return err
		}
	}
	return nil
}

// RunOne executes one lesson inside a span, timing it as a report section
func RunOne(ctx context.Context, env *Env, l Lesson) (err error) {
	ctx, span := infrastructure.StartSpan(ctx, "lesson."+l.Name,
		attribute.String("lesson", l.Name))
	defer func() { infrastructure.EndSpan(span, err) }()

	start := time.Now()
	logger := env.logger()
	logger.DebugContext(ctx, "Lesson started", slog.String("lesson", l.Name))

	if err = l.Run(ctx, env); err != nil {
		logger.ErrorContext(ctx, "Lesson failed",
			slog.String("lesson", l.Name),
			slog.String("error", err.Error()))
		return fmt.Errorf("lesson %s: %w", l.Name, err)
	}

	env.Metrics.ObserveSection(l.Name, start)
	logger.DebugContext(ctx, "Lesson finished",
		slog.String("lesson", l.Name),
		slog.Duration("duration", time.Since(start)))
	return nil
}

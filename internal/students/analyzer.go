package students

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"dataguide/internal/config"
	apierrors "dataguide/internal/errors"
	"dataguide/internal/grading"
	"dataguide/internal/infrastructure"
	"dataguide/internal/report"
	"dataguide/internal/table"
	"dataguide/internal/validation"
	"dataguide/pkg/contracts/domain"
)

// Derived columns appended at load time
const (
	ColTotal   = "Total_Score"
	ColAverage = "Average_Score"
	ColGrade   = "Grade"
)

// AtRiskThreshold is the average (and subject score) below which a student needs support
const AtRiskThreshold = 70

// requiredColumns must be present in a student dataset
var requiredColumns = []string{"Name", "Math", "Science", "English", "Grade_Level", "Gender"}

// Analyzer holds one loaded student table with its derived columns
type Analyzer struct {
	path    string
	table   *table.Table
	records []domain.StudentRecord
	scale   grading.Scale
	alpha   float64

	printer *report.Printer
	logger  *slog.Logger
	metrics *infrastructure.Metrics
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithPrinter sets where report text goes. The default discards it.
func WithPrinter(p *report.Printer) Option {
	return func(a *Analyzer) { a.printer = p }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) { a.logger = l }
}

// WithMetrics records rows loaded and section timings
func WithMetrics(m *infrastructure.Metrics) Option {
	return func(a *Analyzer) { a.metrics = m }
}

// WithSignificance sets the p-value below which differences are significant
func WithSignificance(alpha float64) Option {
	return func(a *Analyzer) { a.alpha = alpha }
}

// NewAnalyzer loads the dataset at path and derives totals, averages and grades
func NewAnalyzer(ctx context.Context, path string, opts ...Option) (*Analyzer, error) {
	a := &Analyzer{path: path, scale: grading.FiveLetter, alpha: config.DefaultSignificance}
	for _, opt := range opts {
		opt(a)
	}
	if a.printer == nil {
		a.printer = report.NewPrinter(io.Discard, false)
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	a.logger = infrastructure.WithComponent(a.logger, "students")

	ctx, span := infrastructure.StartSpan(ctx, "students.load", attribute.String("path", path))
	var err error
	defer func() { infrastructure.EndSpan(span, err) }()

	var raw *table.Table
	if raw, err = table.Load(path); err != nil {
		return nil, err
	}
	if err = raw.Require(requiredColumns...); err != nil {
		return nil, err
	}
	if a.records, err = parseRecords(raw); err != nil {
		return nil, err
	}
	if err = validation.Records(a.records); err != nil {
		return nil, err
	}
	if a.table, err = a.derive(raw); err != nil {
		return nil, err
	}

	a.metrics.RowsLoaded("students", len(a.records))
	a.logger.InfoContext(ctx, "Student dataset loaded",
		slog.String("path", path),
		slog.Int("students", len(a.records)))
	a.printer.Line("Loaded data for %d students", len(a.records))
	return a, nil
}

// parseRecords converts table rows into typed records. Rows without a
// Student_ID are numbered from 1.
func parseRecords(t *table.Table) ([]domain.StudentRecord, error) {
	recs := t.Records(-1)
	pos := make(map[string]int, len(recs[0]))
	for i, h := range recs[0] {
		pos[h] = i
	}

	out := make([]domain.StudentRecord, 0, len(recs)-1)
	for i, row := range recs[1:] {
		r := domain.StudentRecord{
			StudentID:  i + 1,
			Name:       row[pos["Name"]],
			GradeLevel: row[pos["Grade_Level"]],
			Gender:     row[pos["Gender"]],
		}
		if j, ok := pos["Student_ID"]; ok {
			id, err := strconv.Atoi(row[j])
			if err != nil {
				return nil, apierrors.InvalidRecord(i+1, fmt.Errorf("student id %q is not a number", row[j]))
			}
			r.StudentID = id
		}
		for _, s := range []struct {
			col string
			dst *float64
		}{{"Math", &r.Math}, {"Science", &r.Science}, {"English", &r.English}} {
			v, err := parseScore(row[pos[s.col]])
			if err != nil {
				return nil, apierrors.InvalidRecord(i+1, fmt.Errorf("%s: %w", s.col, err))
			}
			*s.dst = v
		}
		out = append(out, r)
	}
	return out, nil
}

// parseScore accepts any finite number; the 0..100 range is checked by validation
func parseScore(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("score %q is not a number", s)
	}
	return f, nil
}

// derive appends Total_Score, Average_Score and Grade
func (a *Analyzer) derive(t *table.Table) (*table.Table, error) {
	total := make([]float64, len(a.records))
	average := make([]float64, len(a.records))
	for i, r := range a.records {
		total[i] = r.Total()
		average[i] = r.Average()
	}

	var err error
	if t, err = t.Mutate(ColTotal, total); err != nil {
		return nil, err
	}
	if t, err = t.Mutate(ColAverage, average); err != nil {
		return nil, err
	}
	return t.Mutate(ColGrade, a.scale.Apply(average))
}

// Table is the dataset with its derived columns
func (a *Analyzer) Table() *table.Table {
	return a.table
}

// Records are the validated rows
func (a *Analyzer) Records() []domain.StudentRecord {
	return a.records
}

// Path is the dataset location
func (a *Analyzer) Path() string {
	return a.path
}

// section runs one report section inside a span and times it
func (a *Analyzer) section(ctx context.Context, name, title string, fn func() error) (err error) {
	ctx, span := infrastructure.StartSpan(ctx, "students."+name)
	defer func() { infrastructure.EndSpan(span, err) }()

	start := time.Now()
	a.printer.Section(title)
	if err = fn(); err != nil {
		a.logger.ErrorContext(ctx, "Section failed",
			slog.String("section", name),
			slog.String("error", err.Error()))
		return err
	}
	a.metrics.ObserveSection("students_"+name, start)
	return nil
}

package sales

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"

	apierrors "dataguide/internal/errors"
	"dataguide/internal/infrastructure"
	"dataguide/internal/report"
	"dataguide/internal/table"
	"dataguide/internal/validation"
	"dataguide/pkg/contracts/domain"
)

// DateTimeLayout is how dates are printed in report text
const DateTimeLayout = "2006-01-02 15:04:05"

// Analyzer holds one loaded sales table
type Analyzer struct {
	path    string
	table   *table.Table
	records []domain.SaleRecord

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

// NewAnalyzer loads and validates the dataset at path
func NewAnalyzer(ctx context.Context, path string, opts ...Option) (*Analyzer, error) {
	a := &Analyzer{path: path}
	for _, opt := range opts {
		opt(a)
	}
	if a.printer == nil {
		a.printer = report.NewPrinter(io.Discard, false)
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	a.logger = infrastructure.WithComponent(a.logger, "sales")

	ctx, span := infrastructure.StartSpan(ctx, "sales.load", attribute.String("path", path))
	var err error
	defer func() { infrastructure.EndSpan(span, err) }()

	if a.table, err = table.Load(path); err != nil {
		return nil, err
	}
	if err = a.table.Require(domain.SaleColumns...); err != nil {
		return nil, err
	}
	if a.records, err = parseRecords(a.table); err != nil {
		return nil, err
	}
	if err = validation.Records(a.records); err != nil {
		return nil, err
	}

	a.metrics.RowsLoaded("sales", len(a.records))
	a.logger.InfoContext(ctx, "Sales dataset loaded",
		slog.String("path", path),
		slog.Int("records", len(a.records)))
	a.printer.Line("Loaded %d sales records", len(a.records))
	return a, nil
}

// parseRecords converts table rows into typed records
func parseRecords(t *table.Table) ([]domain.SaleRecord, error) {
	recs := t.Records(-1)
	header := recs[0]
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[h] = i
	}

	out := make([]domain.SaleRecord, 0, len(recs)-1)
	for i, row := range recs[1:] {
		date, err := table.ParseDate(row[pos["Date"]])
		if err != nil {
			return nil, apierrors.InvalidRecord(i+1, err)
		}
		sales, err := strconv.ParseFloat(row[pos["Sales"]], 64)
		if err != nil {
			return nil, apierrors.InvalidRecord(i+1, fmt.Errorf("sales %q is not a number", row[pos["Sales"]]))
		}
		out = append(out, domain.SaleRecord{
			Date:        date,
			Product:     row[pos["Product"]],
			Sales:       sales,
			Region:      row[pos["Region"]],
			Salesperson: row[pos["Salesperson"]],
		})
	}
	return out, nil
}

// Table is the loaded dataset
func (a *Analyzer) Table() *table.Table {
	return a.table
}

// Records are the validated rows
func (a *Analyzer) Records() []domain.SaleRecord {
	return a.records
}

// Path is the dataset location
func (a *Analyzer) Path() string {
	return a.path
}

// section runs one report section inside a span and times it
func (a *Analyzer) section(ctx context.Context, name, title string, fn func() error) (err error) {
	ctx, span := infrastructure.StartSpan(ctx, "sales."+name)
	defer func() { infrastructure.EndSpan(span, err) }()

	start := time.Now()
	a.printer.Section(title)
	if err = fn(); err != nil {
		a.logger.ErrorContext(ctx, "Section failed",
			slog.String("section", name),
			slog.String("error", err.Error()))
		return err
	}
	a.metrics.ObserveSection("sales_"+name, start)
	return nil
}

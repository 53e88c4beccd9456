package infrastructure

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the prometheus collectors of a program run.
// All methods are safe on a nil receiver so callers can leave metrics off.
type Metrics struct {
	registry        *prometheus.Registry
	rowsLoaded      *prometheus.CounterVec
	sectionDuration *prometheus.HistogramVec
	chartsRendered  *prometheus.CounterVec
	errors          *prometheus.CounterVec
	requests        *prometheus.HistogramVec
}

// NewMetrics creates a registry with the dataguide collectors, labelled by program
func NewMetrics(program string) *Metrics {
	constLabels := prometheus.Labels{"program": program}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rowsLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "dataguide_rows_loaded_total",
			Help:        "Rows loaded from datasets.",
			ConstLabels: constLabels,
		}, []string{"dataset"}),
		sectionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "dataguide_section_duration_seconds",
			Help:        "Duration of report sections.",
			ConstLabels: constLabels,
			Buckets:     prometheus.ExponentialBuckets(0.0005, 4, 10),
		}, []string{"section"}),
		chartsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "dataguide_charts_rendered_total",
			Help:        "Chart images written.",
			ConstLabels: constLabels,
		}, []string{"chart"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "dataguide_errors_total",
			Help:        "Errors by code.",
			ConstLabels: constLabels,
		}, []string{"code"}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "dataguide_http_request_duration_seconds",
			Help:        "Report server requests by route and status.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	m.registry.MustRegister(m.rowsLoaded, m.sectionDuration, m.chartsRendered, m.errors, m.requests)
	return m
}

// RowsLoaded counts rows read from a dataset
func (m *Metrics) RowsLoaded(dataset string, n int) {
	if m == nil {
		return
	}
	m.rowsLoaded.WithLabelValues(dataset).Add(float64(n))
}

// ObserveSection records the time since start against a report section
func (m *Metrics) ObserveSection(section string, start time.Time) {
	if m == nil {
		return
	}
	m.sectionDuration.WithLabelValues(section).Observe(time.Since(start).Seconds())
}

// ChartRendered counts a written chart image
func (m *Metrics) ChartRendered(chart string) {
	if m == nil {
		return
	}
	m.chartsRendered.WithLabelValues(chart).Inc()
}

// Error counts a failure by its code
func (m *Metrics) Error(code string) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(code).Inc()
}

// ObserveRequest records a served HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, start time.Time) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
}

// Gatherer exposes the registry, mainly for tests
func (m *Metrics) Gatherer() prometheus.Gatherer {
	if m == nil {
		return prometheus.NewRegistry()
	}
	return m.registry
}

// Handler serves the registry in the prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Gatherer(), promhttp.HandlerOpts{})
}

// WriteTextfile writes the registry for the node_exporter textfile collector.
// An empty path is a no-op.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

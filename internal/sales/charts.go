package sales

import (
	"context"
	"path/filepath"

	"dataguide/internal/charts"
	"dataguide/internal/table"
)

// Report figure size in inches
const (
	chartWidth  = 15
	chartHeight = 12
)

// CreateVisualizations renders the 2×2 report figure to path.
// The directory of path must already exist.
func (a *Analyzer) CreateVisualizations(ctx context.Context, path string, dpi int) error {
	return a.section(ctx, "visualizations", "CREATING VISUALIZATIONS", func() error {
		fig, err := a.Figure(dpi)
		if err != nil {
			return err
		}
		if err := fig.SavePNG(path); err != nil {
			return err
		}
		a.metrics.ChartRendered("sales_analysis_report")
		a.printer.Line("Visualizations saved as '%s'", filepath.Base(path))
		return nil
	})
}

// Figure builds the report panels: product totals, regional shares, the
// daily trend and salesperson totals
func (a *Analyzer) Figure(dpi int) (*charts.Figure, error) {
	fig := charts.NewFigure(2, 2, chartWidth, chartHeight, dpi)

	products, err := a.totals("Product")
	if err != nil {
		return nil, err
	}
	productBars, err := charts.HorizontalBar(charts.Options{Title: "Total Sales by Product", XLabel: "Sales ($)"},
		products.Rows, products.Col("Total"), charts.Blue)
	if err != nil {
		return nil, err
	}
	fig.Set(0, 0, productBars)

	regions, err := a.table.Aggregate("Region", table.AggSpec{Column: "Sales", Func: table.Sum, Name: "Total"})
	if err != nil {
		return nil, err
	}
	pie, err := charts.Pie(charts.Options{Title: "Sales Distribution by Region"}, regions.Rows, regions.Col("Total"))
	if err != nil {
		return nil, err
	}
	fig.Set(0, 1, pie)

	daily := a.dailySales()
	x := make([]float64, len(daily))
	y := make([]float64, len(daily))
	for i, d := range daily {
		x[i] = float64(d.Time.Unix())
		y[i] = d.Value
	}
	trend, err := charts.Line(charts.Options{Title: "Daily Sales Trend", XLabel: "Date", YLabel: "Sales ($)", TimeFormat: "2006-01-02"},
		charts.Series{Name: "Sales", X: x, Y: y, Color: charts.Blue, Points: true})
	if err != nil {
		return nil, err
	}
	fig.Set(1, 0, trend)

	people, err := a.totals("Salesperson")
	if err != nil {
		return nil, err
	}
	peopleBars, err := charts.HorizontalBar(charts.Options{Title: "Total Sales by Salesperson", XLabel: "Sales ($)"},
		people.Rows, people.Col("Total"), charts.Blue)
	if err != nil {
		return nil, err
	}
	fig.Set(1, 1, peopleBars)
	return fig, nil
}

// totals sums sales per key, smallest first
func (a *Analyzer) totals(key string) (*table.Grid, error) {
	grid, err := a.table.Aggregate(key, table.AggSpec{Column: "Sales", Func: table.Sum, Name: "Total"})
	if err != nil {
		return nil, err
	}
	return grid.SortBy("Total", false), nil
}

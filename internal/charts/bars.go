package charts

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const barWidth = vg.Length(20)

// Bar draws one vertical bar per label
func Bar(opts Options, labels []string, values []float64, fill color.Color) (*plot.Plot, error) {
	p := newPlot(opts)
	b, err := plotter.NewBarChart(plotter.Values(values), barWidth)
	if err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}
	b.Color = fill
	b.LineStyle.Width = 0
	p.Add(b)
	p.NominalX(labels...)
	return p, nil
}

// HorizontalBar draws one horizontal bar per label, first label at the bottom
func HorizontalBar(opts Options, labels []string, values []float64, fill color.Color) (*plot.Plot, error) {
	p := newPlot(opts)
	b, err := plotter.NewBarChart(plotter.Values(values), barWidth)
	if err != nil {
		return nil, fmt.Errorf("horizontal bar chart: %w", err)
	}
	b.Horizontal = true
	b.Color = fill
	b.LineStyle.Width = 0
	p.Add(b)
	p.NominalY(labels...)
	return p, nil
}

// BarGroup is one series of a grouped bar chart
type BarGroup struct {
	Name   string
	Values []float64
}

// GroupedBar draws the groups side by side at every label
func GroupedBar(opts Options, labels []string, groups ...BarGroup) (*plot.Plot, error) {
	p := newPlot(opts)
	n := len(groups)
	for i, g := range groups {
		b, err := plotter.NewBarChart(plotter.Values(g.Values), barWidth)
		if err != nil {
			return nil, fmt.Errorf("bar group %s: %w", g.Name, err)
		}
		b.Color = withAlpha(SeriesColor(i), 0.8)
		b.LineStyle.Width = 0
		b.Offset = barWidth * vg.Length(2*i-n+1) / 2
		p.Add(b)
		p.Legend.Add(g.Name, b)
	}
	p.NominalX(labels...)
	return p, nil
}

// BoxPlot draws one box per label
func BoxPlot(opts Options, labels []string, values [][]float64) (*plot.Plot, error) {
	p := newPlot(opts)
	for i, vals := range values {
		b, err := plotter.NewBoxPlot(vg.Points(30), float64(i), plotter.Values(vals))
		if err != nil {
			return nil, fmt.Errorf("box %s: %w", labels[i], err)
		}
		b.FillColor = withAlpha(SeriesColor(i), 0.4)
		p.Add(b)
	}
	p.NominalX(labels...)
	return p, nil
}

package charts

import (
	"fmt"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// Layer is one band of a stacked area chart
type Layer struct {
	Name   string
	Values []float64
}

// StackedArea draws layers on top of each other over time
func StackedArea(opts Options, times []time.Time, layers ...Layer) (*plot.Plot, error) {
	if opts.TimeFormat == "" {
		opts.TimeFormat = "Jan 02"
	}
	p := newPlot(opts)

	x := make([]float64, len(times))
	for i, t := range times {
		x[i] = float64(t.Unix())
	}
	lower := make([]float64, len(times))

	for li, layer := range layers {
		if len(layer.Values) != len(times) {
			return nil, fmt.Errorf("layer %s has %d values for %d times", layer.Name, len(layer.Values), len(times))
		}
		upper := make([]float64, len(times))
		for i := range upper {
			upper[i] = lower[i] + layer.Values[i]
		}

		band := make(plotter.XYs, 0, 2*len(times))
		for i := range x {
			band = append(band, plotter.XY{X: x[i], Y: upper[i]})
		}
		for i := len(x) - 1; i >= 0; i-- {
			band = append(band, plotter.XY{X: x[i], Y: lower[i]})
		}
		poly, err := plotter.NewPolygon(band)
		if err != nil {
			return nil, fmt.Errorf("layer %s: %w", layer.Name, err)
		}
		poly.Color = withAlpha(SeriesColor(li), 0.7)
		poly.LineStyle.Width = 0
		p.Add(poly)
		p.Legend.Add(layer.Name, poly)

		lower = upper
	}
	p.Legend.Left = true
	return p, nil
}

// UnixSeconds converts times for the X axis of time-based panels
func UnixSeconds(times []time.Time) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = float64(t.Unix())
	}
	return out
}

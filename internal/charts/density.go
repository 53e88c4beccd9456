package charts

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"dataguide/internal/stats"
)

// binGrid counts points on a regular 2D grid of cell centres
type binGrid struct {
	xs, ys []float64
	counts [][]float64 // [col][row]
}

func newBinGrid(x, y []float64, bins int) *binGrid {
	xmin, xmax := floats.Min(x), floats.Max(x)
	ymin, ymax := floats.Min(y), floats.Max(y)
	if xmax == xmin {
		xmax = xmin + 1
	}
	if ymax == ymin {
		ymax = ymin + 1
	}
	dx := (xmax - xmin) / float64(bins)
	dy := (ymax - ymin) / float64(bins)

	g := &binGrid{xs: make([]float64, bins), ys: make([]float64, bins), counts: make([][]float64, bins)}
	for i := 0; i < bins; i++ {
		g.xs[i] = xmin + (float64(i)+0.5)*dx
		g.ys[i] = ymin + (float64(i)+0.5)*dy
		g.counts[i] = make([]float64, bins)
	}
	for k := range x {
		c := int(math.Min(float64(bins-1), (x[k]-xmin)/dx))
		r := int(math.Min(float64(bins-1), (y[k]-ymin)/dy))
		g.counts[c][r]++
	}
	return g
}

func (g *binGrid) Dims() (c, r int)   { return len(g.xs), len(g.ys) }
func (g *binGrid) Z(c, r int) float64 { return g.counts[c][r] }
func (g *binGrid) X(c int) float64    { return g.xs[c] }
func (g *binGrid) Y(r int) float64    { return g.ys[r] }

// Density draws a 2D histogram of point counts shaded in blues
func Density(opts Options, x, y []float64, bins int) (*plot.Plot, error) {
	if len(x) == 0 || len(x) != len(y) {
		return nil, fmt.Errorf("density: need equal, non-empty x and y")
	}
	p := newPlot(opts)
	p.Add(plotter.NewHeatMap(newBinGrid(x, y, bins), blues(64)))
	return p, nil
}

// Violin draws a mirrored kernel density outline per label at x = 1, 2, ...
func Violin(opts Options, labels []string, values [][]float64) (*plot.Plot, error) {
	const (
		steps     = 60
		halfWidth = 0.4
	)
	p := newPlot(opts)

	ticks := make([]plot.Tick, len(labels))
	for i, vals := range values {
		pos := float64(i + 1)
		ticks[i] = plot.Tick{Value: pos, Label: labels[i]}
		if len(vals) == 0 {
			continue
		}

		ys := floats.Span(make([]float64, steps), floats.Min(vals), floats.Max(vals))
		dens := stats.GaussianKDE(vals, ys)
		peak := floats.Max(dens)
		if peak == 0 {
			peak = 1
		}

		outline := make(plotter.XYs, 0, 2*steps)
		for j := range ys {
			outline = append(outline, plotter.XY{X: pos + halfWidth*dens[j]/peak, Y: ys[j]})
		}
		for j := steps - 1; j >= 0; j-- {
			outline = append(outline, plotter.XY{X: pos - halfWidth*dens[j]/peak, Y: ys[j]})
		}

		poly, err := plotter.NewPolygon(outline)
		if err != nil {
			return nil, fmt.Errorf("violin %s: %w", labels[i], err)
		}
		poly.Color = withAlpha(SeriesColor(0), 0.5)
		poly.LineStyle.Color = SeriesColor(0)
		poly.LineStyle.Width = vg.Points(1)
		p.Add(poly)

		med, err := plotter.NewLine(plotter.XYs{
			{X: pos - halfWidth/2, Y: stats.Quantile(vals, 0.5)},
			{X: pos + halfWidth/2, Y: stats.Quantile(vals, 0.5)},
		})
		if err != nil {
			return nil, err
		}
		med.LineStyle.Color = SeriesColor(0)
		p.Add(med)
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Min, p.X.Max = 0.5, float64(len(labels))+0.5
	return p, nil
}

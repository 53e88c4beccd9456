package charts

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"dataguide/internal/stats"
)

// Series is one named set of points drawn as a line
type Series struct {
	Name   string
	X, Y   []float64
	Color  color.Color
	Dashed bool
	Points bool
}

// Line draws one line per series
func Line(opts Options, series ...Series) (*plot.Plot, error) {
	p := newPlot(opts)
	for i, s := range series {
		pts := xys(s.X, s.Y)
		col := s.Color
		if col == nil {
			col = SeriesColor(i)
		}

		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("line %s: %w", s.Name, err)
		}
		l.LineStyle.Color = col
		l.LineStyle.Width = vg.Points(1.5)
		if s.Dashed {
			l.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		}
		p.Add(l)

		if s.Points {
			sc, err := plotter.NewScatter(pts)
			if err != nil {
				return nil, fmt.Errorf("points %s: %w", s.Name, err)
			}
			sc.GlyphStyle.Color = col
			sc.GlyphStyle.Shape = draw.CircleGlyph{}
			sc.GlyphStyle.Radius = vg.Points(2.5)
			p.Add(sc)
		}

		if opts.Legend && s.Name != "" {
			p.Legend.Add(s.Name, l)
		}
	}
	return p, nil
}

// Scatter draws semi-transparent points
func Scatter(opts Options, x, y []float64) (*plot.Plot, error) {
	p := newPlot(opts)
	sc, err := plotter.NewScatter(xys(x, y))
	if err != nil {
		return nil, fmt.Errorf("scatter: %w", err)
	}
	sc.GlyphStyle.Color = withAlpha(Blue, 0.6)
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(3)
	p.Add(sc)
	return p, nil
}

// BubbleGroup is one category of a bubble chart. Size is the marker area in points².
type BubbleGroup struct {
	Name    string
	X, Y    []float64
	Size    []float64
	Opacity float64
}

// Bubble draws one scatter per group with per-point marker sizes
func Bubble(opts Options, groups ...BubbleGroup) (*plot.Plot, error) {
	p := newPlot(opts)
	for i, g := range groups {
		sc, err := plotter.NewScatter(xys(g.X, g.Y))
		if err != nil {
			return nil, fmt.Errorf("bubble %s: %w", g.Name, err)
		}
		alpha := g.Opacity
		if alpha == 0 {
			alpha = 0.6
		}
		col := withAlpha(SeriesColor(i), alpha)
		sizes := g.Size
		sc.GlyphStyleFunc = func(j int) draw.GlyphStyle {
			return draw.GlyphStyle{
				Color:  col,
				Shape:  draw.CircleGlyph{},
				Radius: vg.Points(math.Sqrt(sizes[j]) / 2),
			}
		}
		p.Add(sc)
		if opts.Legend {
			sc.GlyphStyle = draw.GlyphStyle{Color: col, Shape: draw.CircleGlyph{}, Radius: vg.Points(4)}
			p.Legend.Add(g.Name, sc)
		}
	}
	return p, nil
}

// Histogram bins values into equal-width bars. With markMean a dashed red
// line is drawn at the mean and labelled in the legend.
func Histogram(opts Options, values []float64, bins int, fill color.Color, markMean bool) (*plot.Plot, error) {
	p := newPlot(opts)
	hist := stats.NewHistogram(values, bins)

	hb := make([]plotter.HistogramBin, len(hist.Counts))
	for i, c := range hist.Counts {
		hb[i] = plotter.HistogramBin{Min: hist.Edges[i], Max: hist.Edges[i+1], Weight: c}
	}
	h := &plotter.Histogram{
		Bins:      hb,
		Width:     hist.Edges[1] - hist.Edges[0],
		FillColor: withAlpha(fill, 0.7),
		LineStyle: plotter.DefaultLineStyle,
	}
	p.Add(h)

	if markMean && len(values) > 0 {
		mean := stats.Mean(values)
		var top float64
		for _, c := range hist.Counts {
			top = math.Max(top, c)
		}
		l, err := plotter.NewLine(plotter.XYs{{X: mean, Y: 0}, {X: mean, Y: top}})
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = Red
		l.LineStyle.Width = vg.Points(1.5)
		l.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(l)
		p.Legend.Add(fmt.Sprintf("Mean: %.1f", mean), l)
	}
	return p, nil
}

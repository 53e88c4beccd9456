package charts

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"

	"dataguide/internal/stats"
)

// matrixGrid exposes a square matrix as a GridXYZ with row 0 drawn at the top
type matrixGrid struct {
	m stats.Matrix
}

func (g matrixGrid) Dims() (c, r int)   { n := len(g.m.Labels); return n, n }
func (g matrixGrid) Z(c, r int) float64 { return g.m.Values[len(g.m.Labels)-1-r][c] }
func (g matrixGrid) X(c int) float64    { return float64(c) }
func (g matrixGrid) Y(r int) float64    { return float64(r) }

// HeatMap draws a correlation matrix with the cool-warm diverging map.
// With unitRange the colour scale is fixed to [-1, 1]. With annotate each
// cell shows its value.
func HeatMap(opts Options, m stats.Matrix, unitRange, annotate bool) (*plot.Plot, error) {
	n := len(m.Labels)
	if n == 0 {
		return nil, fmt.Errorf("heatmap: empty matrix")
	}
	p := newPlot(opts)

	cmap := moreland.SmoothBlueRed()
	grid := matrixGrid{m: m}
	hm := plotter.NewHeatMap(grid, cmap.Palette(255))
	if unitRange {
		hm.Min, hm.Max = -1, 1
	}
	p.Add(hm)

	if annotate {
		pts := make(plotter.XYs, 0, n*n)
		labels := make([]string, 0, n*n)
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				pts = append(pts, plotter.XY{X: float64(c), Y: float64(r)})
				labels = append(labels, fmt.Sprintf("%.2f", grid.Z(c, r)))
			}
		}
		l, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: labels})
		if err != nil {
			return nil, fmt.Errorf("heatmap labels: %w", err)
		}
		for i := range l.TextStyle {
			l.TextStyle[i].Color = Black
			l.TextStyle[i].XAlign = text.XCenter
			l.TextStyle[i].YAlign = text.YCenter
		}
		p.Add(l)
	}

	rowLabels := make([]string, n)
	for i, lbl := range m.Labels {
		rowLabels[n-1-i] = lbl
	}
	p.NominalX(m.Labels...)
	p.NominalY(rowLabels...)
	return p, nil
}

// blues runs from near white to dark blue
type blues int

// Colors implements palette.Palette
func (b blues) Colors() []color.Color {
	n := int(b)
	out := make([]color.Color, n)
	from := [3]float64{247, 251, 255}
	to := [3]float64{8, 48, 107}
	for i := range out {
		t := float64(i) / float64(max(n-1, 1))
		out[i] = color.NRGBA{
			R: uint8(from[0] + t*(to[0]-from[0])),
			G: uint8(from[1] + t*(to[1]-from[1])),
			B: uint8(from[2] + t*(to[2]-from[2])),
			A: 255,
		}
	}
	return out
}

var _ palette.Palette = blues(0)

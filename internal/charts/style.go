package charts

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
)

// Named colours used by the reports
var (
	Blue       = color.NRGBA{R: 31, G: 119, B: 180, A: 255}
	Red        = color.NRGBA{R: 214, G: 39, B: 40, A: 255}
	Green      = color.NRGBA{R: 44, G: 160, B: 44, A: 255}
	Orange     = color.NRGBA{R: 255, G: 127, B: 14, A: 255}
	SkyBlue    = color.NRGBA{R: 135, G: 206, B: 235, A: 255}
	LightGreen = color.NRGBA{R: 144, G: 238, B: 144, A: 255}
	Black      = color.NRGBA{A: 255}
)

// Options are the texts and decorations shared by every panel
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Legend bool
	Grid   bool

	// TimeFormat marks the X axis as unix seconds, labelled with this layout
	TimeFormat string
}

func newPlot(opts Options) *plot.Plot {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	if opts.Grid {
		p.Add(plotter.NewGrid())
	}
	if opts.TimeFormat != "" {
		p.X.Tick.Marker = plot.TimeTicks{Format: opts.TimeFormat}
	}
	p.Legend.Top = true
	return p
}

// SeriesColor is the default colour of the i-th series
func SeriesColor(i int) color.Color {
	return plotutil.Color(i)
}

// withAlpha returns c with the given opacity in [0, 1]
func withAlpha(c color.Color, alpha float64) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(alpha * 255)}
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

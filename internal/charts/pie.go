package charts

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// pieChart draws wedges proportional to values, starting at twelve o'clock
// and going counter-clockwise. Each wedge is labelled with its name outside
// and its percentage inside.
type pieChart struct {
	labels []string
	values []float64
	colors []color.Color
	style  text.Style
}

// Pie draws a pie chart with percentage labels
func Pie(opts Options, labels []string, values []float64) (*plot.Plot, error) {
	if len(labels) != len(values) {
		return nil, fmt.Errorf("pie: %d labels for %d values", len(labels), len(values))
	}
	for _, v := range values {
		if v < 0 {
			return nil, fmt.Errorf("pie: negative value %v", v)
		}
	}

	p := newPlot(opts)
	p.HideAxes()

	colors := make([]color.Color, len(values))
	for i := range colors {
		colors[i] = SeriesColor(i)
	}
	p.Add(&pieChart{labels: labels, values: values, colors: colors, style: p.X.Tick.Label})
	return p, nil
}

// Plot implements plot.Plotter
func (pc *pieChart) Plot(c draw.Canvas, _ *plot.Plot) {
	var total float64
	for _, v := range pc.values {
		total += v
	}
	if total == 0 {
		return
	}

	center := vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: (c.Min.Y + c.Max.Y) / 2}
	radius := c.Size().X
	if h := c.Size().Y; h < radius {
		radius = h
	}
	radius *= 0.35

	inside := pc.style
	inside.XAlign = text.XCenter
	inside.YAlign = text.YCenter

	start := math.Pi / 2
	for i, v := range pc.values {
		sweep := 2 * math.Pi * v / total

		var path vg.Path
		path.Move(center)
		path.Line(vg.Point{
			X: center.X + radius*vg.Length(math.Cos(start)),
			Y: center.Y + radius*vg.Length(math.Sin(start)),
		})
		path.Arc(center, radius, start, sweep)
		path.Close()
		c.SetColor(pc.colors[i])
		c.Fill(path)

		mid := start + sweep/2
		at := func(f float64) vg.Point {
			return vg.Point{
				X: center.X + radius*vg.Length(f*math.Cos(mid)),
				Y: center.Y + radius*vg.Length(f*math.Sin(mid)),
			}
		}
		c.FillText(inside, at(0.6), fmt.Sprintf("%.1f%%", 100*v/total))
		c.FillText(inside, at(1.2), pc.labels[i])

		start += sweep
	}
}

package charts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	apierrors "dataguide/internal/errors"
)

// Figure is a rows×cols grid of panels rendered to one image
type Figure struct {
	Width  vg.Length
	Height vg.Length
	DPI    int

	panels [][]*plot.Plot
}

// NewFigure returns an empty grid. Width and height are in inches.
func NewFigure(rows, cols int, width, height float64, dpi int) *Figure {
	panels := make([][]*plot.Plot, rows)
	for i := range panels {
		panels[i] = make([]*plot.Plot, cols)
	}
	return &Figure{
		Width:  vg.Length(width) * vg.Inch,
		Height: vg.Length(height) * vg.Inch,
		DPI:    dpi,
		panels: panels,
	}
}

// Set places a panel at row r, column c
func (f *Figure) Set(r, c int, p *plot.Plot) {
	f.panels[r][c] = p
}

// Panel returns the panel at row r, column c
func (f *Figure) Panel(r, c int) *plot.Plot {
	return f.panels[r][c]
}

// Dims returns the grid size
func (f *Figure) Dims() (rows, cols int) {
	if len(f.panels) == 0 {
		return 0, 0
	}
	return len(f.panels), len(f.panels[0])
}

// WriteTo renders the figure as PNG
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	rows, cols := f.Dims()
	img := vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(f.DPI))
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}

	canvases := plot.Align(f.panels, tiles, dc)
	for r := range f.panels {
		for c, p := range f.panels[r] {
			if p != nil {
				p.Draw(canvases[r][c])
			}
		}
	}

	png := vgimg.PngCanvas{Canvas: img}
	return png.WriteTo(w)
}

// SavePNG renders the figure to path. The parent directory must exist.
func (f *Figure) SavePNG(path string) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return apierrors.OutputDirMissing(dir, err)
	}
	if !info.IsDir() {
		return apierrors.OutputDirMissing(dir, fmt.Errorf("%s is not a directory", dir))
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := f.WriteTo(out); err != nil {
		out.Close()
		return apierrors.New(apierrors.CodeRender, "failed to render "+path, err)
	}
	return out.Close()
}

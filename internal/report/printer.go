// Package report writes the human-readable side of every program: section
// headings, formatted lines and boxed tables.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"dataguide/internal/table"
)

// Printer writes report text to one writer
type Printer struct {
	w       io.Writer
	heading *color.Color
	title   *color.Color
	started bool
}

// NewPrinter returns a printer. With useColor false no escape codes are written;
// otherwise colour follows terminal detection.
func NewPrinter(w io.Writer, useColor bool) *Printer {
	heading := color.New(color.FgCyan, color.Bold)
	title := color.New(color.FgYellow, color.Bold)
	if !useColor {
		heading.DisableColor()
		title.DisableColor()
	}
	return &Printer{w: w, heading: heading, title: title}
}

// Writer is the underlying writer
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Banner prints a program title underlined with width '=' characters
func (p *Printer) Banner(text string, width int) {
	p.title.Fprintln(p.w, text)
	fmt.Fprintln(p.w, strings.Repeat("=", width))
	p.started = true
}

// Section prints "=== title ===", separated from earlier output by a blank line
func (p *Printer) Section(title string) {
	if p.started {
		fmt.Fprintln(p.w)
	}
	p.heading.Fprintf(p.w, "=== %s ===\n", title)
	p.started = true
}

// Line prints one formatted line
func (p *Printer) Line(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format+"\n", args...)
	p.started = true
}

// Blank prints an empty line
func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}

// Text prints a multi-line block as is
func (p *Printer) Text(s string) {
	fmt.Fprintln(p.w, strings.TrimRight(s, "\n"))
	p.started = true
}

// Table prints a boxed table
func (p *Printer) Table(header []string, rows [][]string) {
	tw := tablewriter.NewWriter(p.w)
	tw.SetHeader(header)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.AppendBulk(rows)
	tw.Render()
	p.started = true
}

// Grid prints an aggregate grid
func (p *Printer) Grid(g *table.Grid) {
	p.Table(g.Header(), g.Records())
}

// Frame prints a table, floats with precision decimals
func (p *Printer) Frame(t *table.Table, precision int) {
	recs := t.Records(precision)
	p.Table(recs[0], recs[1:])
}

// Money formats v as $1,234.56
func Money(v float64) string {
	return "$" + Thousands(v, 2)
}

// Thousands formats v with comma separators and the given decimals
func Thousands(v float64, decimals int) string {
	s := fmt.Sprintf("%.*f", decimals, v)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole, frac, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if hasFrac {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

// Float prints v the shortest way that round-trips, keeping at least one decimal
func Float(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

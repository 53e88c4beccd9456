package arrays

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// floatPrecision is the most fractional digits printed for a float element
const floatPrecision = 8

// Format prints a vector the way numeric notebooks do:
// integers right-aligned, floats with a shared decimal column.
func Format(v Vector) string {
	cells := formatCells(v.data, v.integer)
	return "[" + strings.Join(cells, " ") + "]"
}

// FormatMatrix prints a float matrix as nested brackets, one row per line
func FormatMatrix(m *mat.Dense) string {
	r, c := m.Dims()
	flat := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		flat = append(flat, mat.Row(nil, i, m)...)
	}
	cells := formatCells(flat, false)

	rows := make([]string, r)
	for i := 0; i < r; i++ {
		rows[i] = "[" + strings.Join(cells[i*c:(i+1)*c], " ") + "]"
	}
	return "[" + strings.Join(rows, "\n ") + "]"
}

// FormatScalar prints a float the shortest way that round-trips,
// always keeping a decimal point.
func FormatScalar(x float64) string {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

func formatCells(data []float64, integer bool) []string {
	cells := make([]string, len(data))
	if integer {
		for i, x := range data {
			cells[i] = strconv.FormatInt(int64(x), 10)
		}
		return padLeft(cells)
	}

	// Trim each value, then pad every fraction to the longest one
	ints := make([]string, len(data))
	fracs := make([]string, len(data))
	maxFrac := 0
	for i, x := range data {
		s := strconv.FormatFloat(x, 'f', floatPrecision, 64)
		whole, frac, _ := strings.Cut(s, ".")
		frac = strings.TrimRight(frac, "0")
		ints[i], fracs[i] = whole, frac
		if len(frac) > maxFrac {
			maxFrac = len(frac)
		}
	}
	for i := range data {
		cells[i] = ints[i] + "." + fracs[i] + strings.Repeat(" ", maxFrac-len(fracs[i]))
	}
	return padLeft(cells)
}

func padLeft(cells []string) []string {
	width := 0
	for _, c := range cells {
		if len(c) > width {
			width = len(c)
		}
	}
	for i, c := range cells {
		cells[i] = strings.Repeat(" ", width-len(c)) + c
	}
	return cells
}

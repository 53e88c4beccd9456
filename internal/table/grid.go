package table

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"

	"dataguide/internal/stats"
)

// Grid is a labelled matrix of floats: one row per key, one column per measure
type Grid struct {
	Index   string      `json:"index"`
	Rows    []string    `json:"rows"`
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`

	// Precision is the number of decimals used by Records for non-integral columns
	Precision int `json:"-"`
}

// NewGrid allocates a grid filled with NaN
func NewGrid(index string, rows, columns []string) *Grid {
	values := make([][]float64, len(rows))
	for i := range values {
		values[i] = make([]float64, len(columns))
		for j := range values[i] {
			values[i][j] = math.NaN()
		}
	}
	return &Grid{Index: index, Rows: rows, Columns: columns, Values: values, Precision: 2}
}

// ColumnIndex returns the position of a column, or -1
func (g *Grid) ColumnIndex(name string) int {
	for i, c := range g.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// RowIndex returns the position of a row key, or -1
func (g *Grid) RowIndex(key string) int {
	for i, r := range g.Rows {
		if r == key {
			return i
		}
	}
	return -1
}

// At returns the value for a row key and column name, NaN if either is absent
func (g *Grid) At(row, col string) float64 {
	i, j := g.RowIndex(row), g.ColumnIndex(col)
	if i < 0 || j < 0 {
		return math.NaN()
	}
	return g.Values[i][j]
}

// Col returns a copy of a column
func (g *Grid) Col(name string) []float64 {
	j := g.ColumnIndex(name)
	if j < 0 {
		return nil
	}
	out := make([]float64, len(g.Rows))
	for i := range g.Rows {
		out[i] = g.Values[i][j]
	}
	return out
}

// SortBy reorders rows by a column. Equal values keep their order.
func (g *Grid) SortBy(col string, descending bool) *Grid {
	j := g.ColumnIndex(col)
	if j < 0 {
		return g
	}
	order := make([]int, len(g.Rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		va, vb := g.Values[order[a]][j], g.Values[order[b]][j]
		if descending {
			return va > vb
		}
		return va < vb
	})

	rows := make([]string, len(order))
	values := make([][]float64, len(order))
	for i, o := range order {
		rows[i] = g.Rows[o]
		values[i] = g.Values[o]
	}
	g.Rows, g.Values = rows, values
	return g
}

// Round rounds every value to places decimals
func (g *Grid) Round(places int) *Grid {
	for i := range g.Values {
		for j := range g.Values[i] {
			g.Values[i][j] = stats.Round(g.Values[i][j], places)
		}
	}
	g.Precision = places
	return g
}

// Scale multiplies every value by f
func (g *Grid) Scale(f float64) *Grid {
	for i := range g.Values {
		for j := range g.Values[i] {
			g.Values[i][j] *= f
		}
	}
	return g
}

// AddColumn appends a column of values, one per row
func (g *Grid) AddColumn(name string, values []float64) *Grid {
	g.Columns = append(g.Columns, name)
	for i := range g.Values {
		g.Values[i] = append(g.Values[i], values[i])
	}
	return g
}

// Header is the index name followed by the column names
func (g *Grid) Header() []string {
	return append([]string{g.Index}, g.Columns...)
}

// Records renders every row as strings. Columns holding only whole numbers
// print without decimals, the rest use Precision.
func (g *Grid) Records() [][]string {
	integral := make([]bool, len(g.Columns))
	for j := range g.Columns {
		integral[j] = true
		for i := range g.Rows {
			v := g.Values[i][j]
			if math.IsNaN(v) || v != math.Trunc(v) {
				integral[j] = false
				break
			}
		}
	}

	out := make([][]string, len(g.Rows))
	for i, r := range g.Rows {
		row := make([]string, 0, len(g.Columns)+1)
		row = append(row, r)
		for j := range g.Columns {
			row = append(row, FormatFloat(g.Values[i][j], integral[j], g.Precision))
		}
		out[i] = row
	}
	return out
}

// FormatFloat prints v without decimals when whole, otherwise with precision
func FormatFloat(v float64, whole bool, precision int) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if whole {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// MarshalJSON writes NaN and infinite values as null
func (g *Grid) MarshalJSON() ([]byte, error) {
	values := make([][]*float64, len(g.Values))
	for i, row := range g.Values {
		values[i] = make([]*float64, len(row))
		for j := range row {
			if v := row[j]; !math.IsNaN(v) && !math.IsInf(v, 0) {
				values[i][j] = &v
			}
		}
	}
	return json.Marshal(struct {
		Index   string       `json:"index"`
		Rows    []string     `json:"rows"`
		Columns []string     `json:"columns"`
		Values  [][]*float64 `json:"values"`
	}{g.Index, g.Rows, g.Columns, values})
}

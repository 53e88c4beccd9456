package table

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"

	apierrors "dataguide/internal/errors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Table is an immutable data frame. Every operation returns a new Table.
type Table struct {
	df dataframe.DataFrame
}

// Column is a named slice used to build tables in code.
// Values must be []float64, []int, []string or []bool.
type Column struct {
	Name   string
	Values interface{}
}

// Load reads a CSV or XLSX file. XLSX files are read from their first sheet.
func Load(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, apierrors.MissingFile(path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return loadWorkbook(path)
	default:
		return loadCSV(path)
	}
}

func loadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apierrors.MissingFile(path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	if bom, err := r.Peek(3); err == nil && bytes.Equal(bom, utf8BOM) {
		r.Discard(len(utf8BOM))
	}

	df := dataframe.ReadCSV(r, dataframe.HasHeader(true), dataframe.DetectTypes(true))
	if df.Err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, df.Err)
	}
	return &Table{df: df}, nil
}

func loadWorkbook(path string) (*Table, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return FromRecords(rows)
}

// FromRecords builds a table from a header row followed by data rows.
// Short rows are padded with empty cells.
func FromRecords(records [][]string) (*Table, error) {
	if len(records) < 2 {
		return nil, fmt.Errorf("need a header and at least one row, got %d rows", len(records))
	}
	width := len(records[0])
	padded := make([][]string, len(records))
	for i, r := range records {
		if len(r) < width {
			r = append(append([]string(nil), r...), make([]string, width-len(r))...)
		}
		padded[i] = r[:width]
	}

	df := dataframe.LoadRecords(padded, dataframe.HasHeader(true), dataframe.DetectTypes(true))
	if df.Err != nil {
		return nil, fmt.Errorf("failed to load records: %w", df.Err)
	}
	return &Table{df: df}, nil
}

// FromColumns builds a table from in-memory columns of equal length
func FromColumns(cols ...Column) (*Table, error) {
	ss := make([]series.Series, 0, len(cols))
	for _, c := range cols {
		s, err := newSeries(c.Name, c.Values)
		if err != nil {
			return nil, err
		}
		ss = append(ss, s)
	}
	df := dataframe.New(ss...)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to build table: %w", df.Err)
	}
	return &Table{df: df}, nil
}

func newSeries(name string, values interface{}) (series.Series, error) {
	switch v := values.(type) {
	case []float64:
		return series.New(v, series.Float, name), nil
	case []int:
		return series.New(v, series.Int, name), nil
	case []string:
		return series.New(v, series.String, name), nil
	case []bool:
		return series.New(v, series.Bool, name), nil
	default:
		return series.Series{}, fmt.Errorf("column %s: unsupported type %T", name, values)
	}
}

// DataFrame exposes the underlying gota frame
func (t *Table) DataFrame() dataframe.DataFrame {
	return t.df
}

// Names returns the column names in order
func (t *Table) Names() []string {
	return t.df.Names()
}

// Nrow is the number of rows
func (t *Table) Nrow() int {
	return t.df.Nrow()
}

// Ncol is the number of columns
func (t *Table) Ncol() int {
	return t.df.Ncol()
}

// Has reports whether the table has a column
func (t *Table) Has(name string) bool {
	for _, n := range t.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Require checks that every named column exists
func (t *Table) Require(cols ...string) error {
	for _, c := range cols {
		if !t.Has(c) {
			return apierrors.MissingColumn(c, t.Names())
		}
	}
	return nil
}

// IsNumeric reports whether a column holds ints or floats
func (t *Table) IsNumeric(name string) bool {
	if !t.Has(name) {
		return false
	}
	typ := t.df.Col(name).Type()
	return typ == series.Int || typ == series.Float
}

// Col returns a column as floats
func (t *Table) Col(name string) ([]float64, error) {
	if err := t.Require(name); err != nil {
		return nil, err
	}
	return t.df.Col(name).Float(), nil
}

// Cols returns several columns as floats, in the order asked
func (t *Table) Cols(names ...string) ([][]float64, error) {
	out := make([][]float64, len(names))
	for i, n := range names {
		col, err := t.Col(n)
		if err != nil {
			return nil, err
		}
		out[i] = col
	}
	return out, nil
}

// Strings returns a column as strings
func (t *Table) Strings(name string) ([]string, error) {
	if err := t.Require(name); err != nil {
		return nil, err
	}
	return t.df.Col(name).Records(), nil
}

// Mutate returns a table with the column added, or replaced if it exists
func (t *Table) Mutate(name string, values interface{}) (*Table, error) {
	s, err := newSeries(name, values)
	if err != nil {
		return nil, err
	}
	if s.Len() != t.Nrow() {
		return nil, fmt.Errorf("column %s has %d values, table has %d rows", name, s.Len(), t.Nrow())
	}
	df := t.df.Mutate(s)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to add column %s: %w", name, df.Err)
	}
	return &Table{df: df}, nil
}

// Select keeps only the named columns, in the order given
func (t *Table) Select(cols ...string) (*Table, error) {
	if err := t.Require(cols...); err != nil {
		return nil, err
	}
	df := t.df.Select(cols)
	if df.Err != nil {
		return nil, df.Err
	}
	return &Table{df: df}, nil
}

// Head returns the first n rows
func (t *Table) Head(n int) *Table {
	if n > t.Nrow() {
		n = t.Nrow()
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return t.subset(idx)
}

// Rows returns a table of the given row positions, in that order
func (t *Table) Rows(idx []int) *Table {
	return t.subset(idx)
}

func (t *Table) subset(idx []int) *Table {
	if len(idx) == 0 {
		return t.empty()
	}
	return &Table{df: t.df.Subset(idx)}
}

// empty keeps the schema with zero rows
func (t *Table) empty() *Table {
	names := t.df.Names()
	types := t.df.Types()
	ss := make([]series.Series, len(names))
	for i, n := range names {
		ss[i] = series.New([]string{}, types[i], n)
	}
	return &Table{df: dataframe.New(ss...)}
}

// NLargest returns the n rows with the largest values in col.
// Ties keep their original order.
func (t *Table) NLargest(n int, col string) (*Table, error) {
	vals, err := t.Col(col)
	if err != nil {
		return nil, err
	}
	idx := make([]int, len(vals))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return vals[idx[a]] > vals[idx[b]]
	})
	if n < len(idx) {
		idx = idx[:n]
	}
	return t.subset(idx), nil
}

// Records renders the table as a header plus string rows.
// Float columns are printed with the given number of decimals.
func (t *Table) Records(precision int) [][]string {
	names := t.df.Names()
	out := make([][]string, t.Nrow()+1)
	out[0] = append([]string(nil), names...)
	cols := make([][]string, len(names))
	for j, n := range names {
		s := t.df.Col(n)
		if s.Type() == series.Float {
			fs := s.Float()
			cols[j] = make([]string, len(fs))
			for i, f := range fs {
				cols[j][i] = strconv.FormatFloat(f, 'f', precision, 64)
			}
		} else {
			cols[j] = s.Records()
		}
	}
	for i := 0; i < t.Nrow(); i++ {
		row := make([]string, len(names))
		for j := range names {
			row[j] = cols[j][i]
		}
		out[i+1] = row
	}
	return out
}

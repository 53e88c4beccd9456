package table

import (
	"fmt"
	"math"
	"sort"

	"dataguide/internal/stats"
)

// AggFunc names a reduction over a group
type AggFunc string

// Supported reductions
const (
	Sum   AggFunc = "sum"
	Mean  AggFunc = "mean"
	Count AggFunc = "count"
	Std   AggFunc = "std"
	Min   AggFunc = "min"
	Max   AggFunc = "max"
)

// Apply reduces values. Std is the sample standard deviation.
func (f AggFunc) Apply(values []float64) (float64, error) {
	switch f {
	case Sum:
		return stats.Sum(values), nil
	case Mean:
		return stats.Mean(values), nil
	case Count:
		return float64(len(values)), nil
	case Std:
		return stats.SampleStd(values), nil
	case Min:
		return stats.Min(values), nil
	case Max:
		return stats.Max(values), nil
	default:
		return 0, fmt.Errorf("unknown aggregate %q", string(f))
	}
}

// AggSpec asks for one aggregated column. Name defaults to Column_Func.
type AggSpec struct {
	Column string
	Func   AggFunc
	Name   string
}

func (s AggSpec) name() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Column + "_" + string(s.Func)
}

// Group is the set of row positions sharing one key value
type Group struct {
	Key  string
	Rows []int
}

// GroupBy partitions rows by the string value of key.
// Groups are returned sorted by key, numerically for numeric columns with
// missing values last.
func (t *Table) GroupBy(key string) ([]Group, error) {
	keys, err := t.Strings(key)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var groups []Group
	for i, k := range keys {
		pos, ok := index[k]
		if !ok {
			pos = len(groups)
			index[k] = pos
			groups = append(groups, Group{Key: k})
		}
		groups[pos].Rows = append(groups[pos].Rows, i)
	}

	less := func(a, b int) bool { return groups[a].Key < groups[b].Key }
	if t.IsNumeric(key) {
		vals := t.df.Col(key).Float()
		less = func(a, b int) bool {
			x, y := vals[groups[a].Rows[0]], vals[groups[b].Rows[0]]
			if math.IsNaN(x) || math.IsNaN(y) {
				return !math.IsNaN(x) && math.IsNaN(y)
			}
			return x < y
		}
	}
	sort.SliceStable(groups, less)
	return groups, nil
}

// GroupTable returns the rows of one group as a table
func (t *Table) GroupTable(g Group) *Table {
	return t.subset(g.Rows)
}

// GroupValues splits a numeric column by key, in GroupBy order
func (t *Table) GroupValues(key, col string) ([]Group, [][]float64, error) {
	vals, err := t.Col(col)
	if err != nil {
		return nil, nil, err
	}
	groups, err := t.GroupBy(key)
	if err != nil {
		return nil, nil, err
	}
	out := make([][]float64, len(groups))
	for i, g := range groups {
		out[i] = pick(vals, g.Rows)
	}
	return groups, out, nil
}

func pick(vals []float64, rows []int) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = vals[r]
	}
	return out
}

// Aggregate groups by key and reduces columns. Rows of the result are the
// group keys in ascending order.
func (t *Table) Aggregate(key string, specs ...AggSpec) (*Grid, error) {
	groups, err := t.GroupBy(key)
	if err != nil {
		return nil, err
	}

	cols := make(map[string][]float64)
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.name()
		if _, ok := cols[s.Column]; ok {
			continue
		}
		vals, err := t.Col(s.Column)
		if err != nil {
			return nil, err
		}
		cols[s.Column] = vals
	}

	rows := make([]string, len(groups))
	for i, g := range groups {
		rows[i] = g.Key
	}
	grid := NewGrid(key, rows, names)

	for i, g := range groups {
		for j, s := range specs {
			v, err := s.Func.Apply(pick(cols[s.Column], g.Rows))
			if err != nil {
				return nil, err
			}
			grid.Values[i][j] = v
		}
	}
	return grid, nil
}

// NUnique counts the distinct values of a column
func (t *Table) NUnique(col string) (int, error) {
	vals, err := t.Strings(col)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		seen[v] = struct{}{}
	}
	return len(seen), nil
}

// Unique returns the distinct values of a column, sorted
func (t *Table) Unique(col string) ([]string, error) {
	groups, err := t.GroupBy(col)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Key
	}
	return out, nil
}

// ValueCount is one distinct value and how often it occurs
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ValueCounts counts each distinct value, most frequent first.
// Equal counts are ordered by value.
func (t *Table) ValueCounts(col string) ([]ValueCount, error) {
	groups, err := t.GroupBy(col)
	if err != nil {
		return nil, err
	}
	out := make([]ValueCount, len(groups))
	for i, g := range groups {
		out[i] = ValueCount{Value: g.Key, Count: len(g.Rows)}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Count > out[b].Count
	})
	return out, nil
}

// Crosstab counts rows for every (row, col) pair of values. With
// normalizeColumns each column is divided by its total.
func (t *Table) Crosstab(rowKey, colKey string, normalizeColumns bool) (*Grid, error) {
	rowVals, err := t.Strings(rowKey)
	if err != nil {
		return nil, err
	}
	colVals, err := t.Strings(colKey)
	if err != nil {
		return nil, err
	}
	rows, err := t.Unique(rowKey)
	if err != nil {
		return nil, err
	}
	cols, err := t.Unique(colKey)
	if err != nil {
		return nil, err
	}

	grid := NewGrid(rowKey, rows, cols)
	for i := range grid.Values {
		for j := range grid.Values[i] {
			grid.Values[i][j] = 0
		}
	}
	for k := range rowVals {
		grid.Values[grid.RowIndex(rowVals[k])][grid.ColumnIndex(colVals[k])]++
	}

	if normalizeColumns {
		for j := range cols {
			var total float64
			for i := range rows {
				total += grid.Values[i][j]
			}
			for i := range rows {
				grid.Values[i][j] /= total
			}
		}
	}
	return grid, nil
}

// Pivot averages valueCol for every (rowKey, colKey) pair.
// Missing pairs are NaN.
func (t *Table) Pivot(rowKey, colKey, valueCol string) (*Grid, error) {
	rowVals, err := t.Strings(rowKey)
	if err != nil {
		return nil, err
	}
	colVals, err := t.Strings(colKey)
	if err != nil {
		return nil, err
	}
	vals, err := t.Col(valueCol)
	if err != nil {
		return nil, err
	}
	rows, _ := t.Unique(rowKey)
	cols, _ := t.Unique(colKey)

	grid := NewGrid(rowKey, rows, cols)
	sums := make([][]float64, len(rows))
	counts := make([][]int, len(rows))
	for i := range rows {
		sums[i] = make([]float64, len(cols))
		counts[i] = make([]int, len(cols))
	}
	for k, v := range vals {
		i, j := grid.RowIndex(rowVals[k]), grid.ColumnIndex(colVals[k])
		sums[i][j] += v
		counts[i][j]++
	}
	for i := range rows {
		for j := range cols {
			if counts[i][j] > 0 {
				grid.Values[i][j] = sums[i][j] / float64(counts[i][j])
			}
		}
	}
	return grid, nil
}

// Describe builds the count/mean/std/min/quartiles/max block for columns
func (t *Table) Describe(cols ...string) (*Grid, error) {
	if len(cols) == 0 {
		for _, n := range t.Names() {
			if t.IsNumeric(n) {
				cols = append(cols, n)
			}
		}
	}
	grid := NewGrid("", append([]string(nil), stats.SummaryRowNames...), cols)
	for j, c := range cols {
		vals, err := t.Col(c)
		if err != nil {
			return nil, err
		}
		for i, v := range stats.Describe(vals).Values() {
			grid.Values[i][j] = v
		}
	}
	return grid, nil
}

// Means returns the mean of each column
func (t *Table) Means(cols ...string) ([]float64, error) {
	out := make([]float64, len(cols))
	for i, c := range cols {
		vals, err := t.Col(c)
		if err != nil {
			return nil, err
		}
		out[i] = stats.Mean(vals)
	}
	return out, nil
}

// Corr is the Pearson correlation matrix of the columns
func (t *Table) Corr(cols ...string) (stats.Matrix, error) {
	data, err := t.Cols(cols...)
	if err != nil {
		return stats.Matrix{}, err
	}
	return stats.CorrMatrix(cols, data), nil
}

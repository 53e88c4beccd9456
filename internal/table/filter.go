package table

import (
	"fmt"

	"github.com/go-gota/gota/series"
)

// Op is a comparison used by Filter
type Op = series.Comparator

// Comparison operators accepted by Filter
const (
	Eq        Op = series.Eq
	Neq       Op = series.Neq
	Greater   Op = series.Greater
	GreaterEq Op = series.GreaterEq
	Less      Op = series.Less
	LessEq    Op = series.LessEq
	In        Op = series.In
)

// Filter keeps the rows where col op value holds
func (t *Table) Filter(col string, op Op, value interface{}) (*Table, error) {
	if err := t.Require(col); err != nil {
		return nil, err
	}
	mask := t.df.Col(col).Compare(op, value)
	if mask.Err != nil {
		return nil, fmt.Errorf("failed to compare %s %s %v: %w", col, op, value, mask.Err)
	}
	keep, err := mask.Bool()
	if err != nil {
		return nil, err
	}
	var idx []int
	for i, k := range keep {
		if k {
			idx = append(idx, i)
		}
	}
	return t.subset(idx), nil
}

// Where keeps the rows whose numeric col satisfies pred
func (t *Table) Where(col string, pred func(float64) bool) (*Table, error) {
	vals, err := t.Col(col)
	if err != nil {
		return nil, err
	}
	var idx []int
	for i, v := range vals {
		if pred(v) {
			idx = append(idx, i)
		}
	}
	return t.subset(idx), nil
}

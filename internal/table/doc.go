// Package table wraps gota data frames with the handful of operations the
// lessons and analyzers use: loading CSV or XLSX files, column access,
// filtering, grouping with aggregates, value counts, crosstabs, pivots,
// describe blocks and time resampling.
//
// Column lookups are checked. Asking for a column the table does not have
// returns a MISSING_COLUMN analysis error listing the available columns.
//
// Grouped results come back as a Grid: a small labelled matrix of floats
// whose row labels are the group keys, sorted ascending. Grids know how to
// sort, round and render themselves as string records for printing and
// export.
//
// Example usage:
//
//	t, err := table.Load("datasets/sample_sales.csv")
//	if err != nil {
//		return err
//	}
//	byProduct, err := t.Aggregate("Product",
//		table.AggSpec{Column: "Sales", Func: table.Sum, Name: "Total_Sales"},
//		table.AggSpec{Column: "Sales", Func: table.Mean, Name: "Avg_Sales"},
//	)
package table

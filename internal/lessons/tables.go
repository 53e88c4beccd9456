package lessons

import (
	"context"
	"fmt"
	"strings"

	"dataguide/internal/grading"
	"dataguide/internal/sampledata"
	"dataguide/internal/table"
	"dataguide/pkg/contracts/domain"
)

// TableLessons are run by the tablebasics program, in this order
var TableLessons = []Lesson{
	{Name: "dataframe_creation", Run: DataFrameCreation},
	{Name: "data_exploration", Run: DataExploration},
	{Name: "filtering_grouping", Run: FilteringGrouping},
	{Name: "student_grades", Run: StudentGrades},
}

// highSalesThreshold splits the filtering lesson's sales
const highSalesThreshold = 3000

// DataFrameCreation builds and prints a small fixed table
func DataFrameCreation(_ context.Context, env *Env) error {
	p := env.Printer
	p.Section("DataFrame Creation Examples")

	people, err := sampledata.PeopleTable()
	if err != nil {
		return err
	}
	p.Line("DataFrame from dictionary:")
	p.Frame(people, 2)
	p.Blank()
	return nil
}

// DataExploration prints shape, columns, the first rows and a describe block
func DataExploration(_ context.Context, env *Env) error {
	p := env.Printer
	p.Section("Data Exploration")

	df, err := env.generator().ExplorationTable()
	if err != nil {
		return err
	}

	p.Line("Dataset info:")
	p.Line("Shape: (%d, %d)", df.Nrow(), df.Ncol())
	p.Line("Columns: %s", quoteList(df.Names()))
	p.Blank()
	p.Line("First 5 rows:")
	p.Frame(df.Head(5), 2)
	p.Blank()

	desc, err := df.Describe()
	if err != nil {
		return err
	}
	p.Line("Basic statistics:")
	p.Grid(desc)
	return nil
}

// FilteringGrouping filters high sales and aggregates by product and region
func FilteringGrouping(_ context.Context, env *Env) error {
	p := env.Printer
	p.Section("Data Filtering and Grouping")

	df, err := env.generator().FilterTable()
	if err != nil {
		return err
	}

	high, err := df.Filter("Sales", table.Greater, highSalesThreshold)
	if err != nil {
		return err
	}
	p.Line("High sales records: %d", high.Nrow())

	byProduct, err := df.Aggregate("Product",
		table.AggSpec{Column: "Sales", Func: table.Mean, Name: "mean"},
		table.AggSpec{Column: "Sales", Func: table.Sum, Name: "sum"},
		table.AggSpec{Column: "Sales", Func: table.Count, Name: "count"},
	)
	if err != nil {
		return err
	}
	p.Blank()
	p.Line("Sales by Product:")
	p.Grid(byProduct)

	pivot, err := df.Pivot("Region", "Product", "Sales")
	if err != nil {
		return err
	}
	p.Blank()
	p.Line("Average Sales by Region and Product:")
	p.Grid(pivot)
	return nil
}

// StudentGrades derives totals and four-letter grades for 100 students
func StudentGrades(_ context.Context, env *Env) error {
	p := env.Printer
	p.Section("Real-World Example: Student Grades")

	students, err := env.generator().StudentTable(100)
	if err != nil {
		return err
	}

	scores, err := students.Cols(domain.Subjects...)
	if err != nil {
		return err
	}
	total := make([]float64, students.Nrow())
	average := make([]float64, students.Nrow())
	for i := range total {
		for _, s := range scores {
			total[i] += s[i]
		}
		average[i] = total[i] / float64(len(scores))
	}

	if students, err = students.Mutate("Total", total); err != nil {
		return err
	}
	if students, err = students.Mutate("Average", average); err != nil {
		return err
	}
	if students, err = students.Mutate("Letter_Grade", grading.FourLetter.Apply(average)); err != nil {
		return err
	}

	top, err := students.NLargest(5, "Average")
	if err != nil {
		return err
	}
	if top, err = top.Select("Name", "Average", "Letter_Grade"); err != nil {
		return err
	}
	p.Line("Top 5 students:")
	p.Frame(top, 6)

	counts, err := students.ValueCounts("Letter_Grade")
	if err != nil {
		return err
	}
	rows := make([][]string, len(counts))
	for i, c := range counts {
		rows[i] = []string{c.Value, fmt.Sprint(c.Count)}
	}
	p.Blank()
	p.Line("Grade distribution:")
	p.Table([]string{"Letter_Grade", "count"}, rows)

	byLevel, err := students.Aggregate("Grade_Level",
		table.AggSpec{Column: "Average", Func: table.Mean, Name: "Average"})
	if err != nil {
		return err
	}
	byLevel.SortBy("Average", true).Precision = 6
	p.Blank()
	p.Line("Average scores by grade level:")
	p.Grid(byLevel)
	return nil
}

// quoteList prints names as ['a', 'b']
func quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

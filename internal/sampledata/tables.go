package sampledata

import (
	"fmt"
	"math"

	"dataguide/internal/table"
)

// Category values used across the lessons
var (
	LetterProducts = []string{"A", "B", "C"}
	DeviceProducts = []string{"Laptop", "Phone", "Tablet"}
	FourRegions    = []string{"North", "South", "East", "West"}
	TwoRegions     = []string{"North", "South"}
	GradeLevels    = []string{"9th", "10th", "11th", "12th"}
)

// PeopleTable is the fixed four-person table of the first table lesson
func PeopleTable() (*table.Table, error) {
	return table.FromColumns(
		table.Column{Name: "Name", Values: []string{"Alice", "Bob", "Charlie", "Diana"}},
		table.Column{Name: "Age", Values: []int{25, 30, 35, 28}},
		table.Column{Name: "City", Values: []string{"New York", "London", "Tokyo", "Paris"}},
		table.Column{Name: "Salary", Values: []int{50000, 60000, 70000, 55000}},
	)
}

// ExplorationTable is 60 rows of products A/B/C repeated, random sales and regions
func (g *Generator) ExplorationTable() (*table.Table, error) {
	const n = 60
	products := make([]string, n)
	for i := range products {
		products[i] = LetterProducts[i%len(LetterProducts)]
	}
	return table.FromColumns(
		table.Column{Name: "Product", Values: products},
		table.Column{Name: "Sales", Values: g.RandInt(100, 1000, n)},
		table.Column{Name: "Region", Values: g.Choice(FourRegions, n)},
	)
}

// FilterTable is 100 days of device sales split over two regions
func (g *Generator) FilterTable() (*table.Table, error) {
	const n = 100
	return table.FromColumns(
		table.Column{Name: "Date", Values: FormatDates(DateRange(Jan1, n))},
		table.Column{Name: "Product", Values: g.Choice(DeviceProducts, n)},
		table.Column{Name: "Sales", Values: g.RandInt(1000, 5000, n)},
		table.Column{Name: "Region", Values: g.Choice(TwoRegions, n)},
	)
}

// StudentTable is n students with scores in the lesson ranges
func (g *Generator) StudentTable(n int) (*table.Table, error) {
	ids := make([]int, n)
	names := make([]string, n)
	for i := range ids {
		ids[i] = i + 1
		names[i] = fmt.Sprintf("Student_%d", i+1)
	}
	return table.FromColumns(
		table.Column{Name: "Student_ID", Values: ids},
		table.Column{Name: "Name", Values: names},
		table.Column{Name: "Math", Values: g.RandInt(60, 100, n)},
		table.Column{Name: "Science", Values: g.RandInt(55, 95, n)},
		table.Column{Name: "English", Values: g.RandInt(65, 100, n)},
		table.Column{Name: "Grade_Level", Values: g.Choice(GradeLevels, n)},
	)
}

// DailySales is one year of daily sales with a yearly seasonal swing of ±500
func (g *Generator) DailySales(days int) (*table.Table, error) {
	base := g.RandInt(1000, 5000, days)
	sales := make([]float64, days)
	for d := range sales {
		sales[d] = float64(base[d]) + math.Sin(float64(d)*2*math.Pi/365)*500
	}
	return table.FromColumns(
		table.Column{Name: "Date", Values: FormatDates(DateRange(Jan1, days))},
		table.Column{Name: "Sales", Values: sales},
		table.Column{Name: "Product", Values: g.Choice(DeviceProducts, days)},
		table.Column{Name: "Region", Values: g.Choice(FourRegions, days)},
	)
}

// AdvancedSet is n points with a category, a bubble size and an exponential value
func (g *Generator) AdvancedSet(n int) (*table.Table, error) {
	return table.FromColumns(
		table.Column{Name: "x", Values: g.StandardNormal(n)},
		table.Column{Name: "y", Values: g.StandardNormal(n)},
		table.Column{Name: "category", Values: g.Choice(LetterProducts, n)},
		table.Column{Name: "size", Values: g.RandInt(20, 200, n)},
		table.Column{Name: "value", Values: g.Exponential(2, n)},
	)
}

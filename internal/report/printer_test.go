package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"dataguide/internal/table"
)

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.Section("Array Creation Examples")
	p.Line("From list: %s", "[1 2 3]")
	p.Section("Mathematical Operations")

	want := "=== Array Creation Examples ===\nFrom list: [1 2 3]\n\n=== Mathematical Operations ===\n"
	assert.Equal(t, want, buf.String())
}

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	p.Banner("SALES DATA ANALYSIS PROJECT", 10)
	p.Section("BASIC STATISTICS")
	assert.Equal(t, "SALES DATA ANALYSIS PROJECT\n==========\n\n=== BASIC STATISTICS ===\n", buf.String())
}

func TestGrid(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	g := table.NewGrid("Product", []string{"Laptop", "Phone"}, []string{"Total_Sales", "Count"})
	g.Values = [][]float64{{1500.5, 2}, {900, 1}}
	p.Grid(g)

	out := buf.String()
	assert.Contains(t, out, "Product")
	assert.Contains(t, out, "Total_Sales")
	assert.Contains(t, out, "1500.50")
	assert.Contains(t, out, "900.00")
	assert.Equal(t, 1, strings.Count(out, "Laptop"))
	assert.NotContains(t, out, "\x1b[")
}

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{999.999, "$1,000.00"},
		{1234567.891, "$1,234,567.89"},
		{-4200, "$-4,200.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Money(tt.in))
	}
	assert.Equal(t, "12,345", Thousands(12345, 0))
}

func TestFloat(t *testing.T) {
	assert.Equal(t, "50.0", Float(50))
	assert.Equal(t, "25.93", Float(25.93))
	assert.Equal(t, "NaN", Float(math.NaN()))
}

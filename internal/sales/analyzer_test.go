package sales

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataguide/internal/config"
	apierrors "dataguide/internal/errors"
	"dataguide/internal/exporter"
	"dataguide/internal/report"
	"dataguide/internal/stats"
	"dataguide/internal/table"
	"dataguide/pkg/contracts/domain"
)

const salesCSV = `Date,Product,Sales,Region,Salesperson
2024-01-01,Laptop,1200,North,Alice
2024-01-01,Phone,800,South,Bob
2024-01-02,Laptop,1500,North,Bob
2024-01-02,Tablet,400,East,Alice
2024-01-03,Phone,600,South,Carol
2024-01-03,Laptop,900,East,Carol
`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample_sales.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newAnalyzer(t *testing.T) (*Analyzer, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	a, err := NewAnalyzer(context.Background(), writeDataset(t, salesCSV),
		WithPrinter(report.NewPrinter(&out, false)))
	require.NoError(t, err)
	return a, &out
}

func TestNewAnalyzer(t *testing.T) {
	a, out := newAnalyzer(t)
	assert.Len(t, a.Records(), 6)
	assert.Equal(t, "Loaded 6 sales records\n", out.String())
	assert.Equal(t, 2024, a.Records()[0].Date.Year())
}

func TestNewAnalyzerErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "none.csv") },
			wantErr: apierrors.ErrMissingFile,
		},
		{
			name: "missing column",
			path: func(t *testing.T) string {
				return writeDataset(t, "Date,Product,Sales,Region\n2024-01-01,Laptop,1,North\n")
			},
			wantErr: apierrors.ErrMissingColumn,
		},
		{
			name: "negative sales",
			path: func(t *testing.T) string {
				return writeDataset(t, "Date,Product,Sales,Region,Salesperson\n2024-01-01,Laptop,-5,North,Alice\n")
			},
			wantErr: apierrors.ErrInvalidRecord,
		},
		{
			name: "bad date",
			path: func(t *testing.T) string {
				return writeDataset(t, "Date,Product,Sales,Region,Salesperson\nyesterday,Laptop,5,North,Alice\n")
			},
			wantErr: apierrors.ErrInvalidRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAnalyzer(context.Background(), tt.path(t))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestBasicStatistics(t *testing.T) {
	a, out := newAnalyzer(t)
	res, err := a.BasicStatistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5400.0, res.Total)
	assert.Equal(t, 900.0, res.Average)
	assert.Equal(t, 3, res.Products)
	assert.Equal(t, 3, res.Regions)
	assert.Equal(t, 3, res.Salespeople)

	text := out.String()
	assert.Contains(t, text, "\n=== BASIC STATISTICS ===\n")
	assert.Contains(t, text, "Date range: 2024-01-01 00:00:00 to 2024-01-03 00:00:00")
	assert.Contains(t, text, "Total sales: $5,400.00")
	assert.Contains(t, text, "Average daily sales: $900.00")
}

func TestProductAnalysis(t *testing.T) {
	a, out := newAnalyzer(t)
	res, err := a.ProductAnalysis(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Laptop", "Phone", "Tablet"}, res.Stats.Rows)
	assert.Equal(t, "Laptop", res.Best)
	assert.Equal(t, "Tablet", res.Worst)
	assert.Equal(t, 300.0, res.Stats.At("Laptop", "Std_Dev"))
	assert.Equal(t, 141.42, res.Stats.At("Phone", "Std_Dev"))
	assert.Equal(t, 2.0, res.Stats.At("Phone", "Count"))

	// Grouped totals add up to the ungrouped total
	assert.Equal(t, 5400.0, stats.Sum(res.Stats.Col("Total_Sales")))

	assert.Contains(t, out.String(), "Best performing product: Laptop")
	assert.Contains(t, out.String(), "Worst performing product: Tablet")
}

func TestRegionalAnalysis(t *testing.T) {
	a, out := newAnalyzer(t)
	res, err := a.RegionalAnalysis(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"North", "South", "East"}, res.Stats.Rows)
	assert.Equal(t, 50.0, res.Share("North"))
	assert.Equal(t, 25.93, res.Share("South"))
	assert.Equal(t, 24.07, res.Share("East"))

	text := out.String()
	assert.Contains(t, text, "North: 50.0%\nSouth: 25.93%\nEast: 24.07%\n")
}

func TestSalespersonPerformance(t *testing.T) {
	a, out := newAnalyzer(t)
	res, err := a.SalespersonPerformance(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Top, 3)
	assert.Equal(t, Ranked{Rank: 1, Name: "Bob", Total: 2300}, res.Top[0])
	assert.Equal(t, "Alice", res.Top[1].Name)
	assert.Equal(t, "Carol", res.Top[2].Name)
	assert.Contains(t, out.String(), "1. Bob: $2,300.00 total sales")
}

func TestTimeSeriesAnalysis(t *testing.T) {
	a, out := newAnalyzer(t)
	res, err := a.TimeSeriesAnalysis(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Daily, 3)
	assert.Equal(t, 2000.0, res.Highest.Value)
	assert.Equal(t, 1, res.Highest.Time.Day())
	assert.Equal(t, 1500.0, res.Lowest.Value)
	require.NotNil(t, res.GrowthRate)
	assert.Equal(t, domain.Number(-25), *res.GrowthRate)

	text := out.String()
	assert.Contains(t, text, "Highest sales day: 2024-01-01 00:00:00 ($2,000.00)")
	assert.Contains(t, text, "Lowest sales day: 2024-01-03 00:00:00 ($1,500.00)")
	assert.Contains(t, text, "Overall growth rate: -25.00%")
}

func TestTimeSeriesSingleDay(t *testing.T) {
	path := writeDataset(t, "Date,Product,Sales,Region,Salesperson\n2024-01-01,Laptop,5,North,Alice\n")
	a, err := NewAnalyzer(context.Background(), path)
	require.NoError(t, err)

	res, err := a.TimeSeriesAnalysis(context.Background())
	require.NoError(t, err)
	assert.Nil(t, res.GrowthRate)
}

func TestRunJSONWithZeroFirstDay(t *testing.T) {
	path := writeDataset(t, `Date,Product,Sales,Region,Salesperson
2024-01-01,Laptop,0,North,Alice
2024-01-02,Phone,250,South,Bob
2024-01-02,Laptop,150,North,Alice
`)
	a, err := NewAnalyzer(context.Background(), path)
	require.NoError(t, err)

	rep, err := a.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, rep.TimeSeries.GrowthRate)
	assert.True(t, math.IsInf(float64(*rep.TimeSeries.GrowthRate), 1))

	data, err := json.Marshal(rep)
	require.NoError(t, err)

	var decoded struct {
		TimeSeries struct {
			GrowthRate *float64 `json:"growth_rate"`
		} `json:"time_series"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Nil(t, decoded.TimeSeries.GrowthRate)
	assert.Contains(t, string(data), `"growth_rate":null`)
}

func TestGenerateInsights(t *testing.T) {
	a, _ := newAnalyzer(t)
	res, err := a.GenerateInsights(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"1. Laptop is the best-selling product with $3,600.00 in sales",
		"2. North region generates the highest revenue: $2,700.00",
		"3. Bob is the top performer with $2,300.00 in sales",
		"4. Average transaction value: $900.00",
		"5. East has the most product diversity (2 products)",
	}, res.Lines)
}

func TestRunAndExport(t *testing.T) {
	a, _ := newAnalyzer(t)
	rep, err := a.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, rep.Records)

	// NaN standard deviations encode as null
	data, err := json.Marshal(rep)
	require.NoError(t, err)
	assert.Contains(t, string(data), "null")

	paths := config.ResolvePaths(t.TempDir(), config.Default().Paths)
	written, err := rep.Export(exporter.NewReportExporter(paths), true, true)
	require.NoError(t, err)
	assert.Len(t, written, 5)

	wb, err := table.Load(paths.ExportPath(ReportName, ReportName+".xlsx"))
	require.NoError(t, err)
	assert.Equal(t, 3, wb.Nrow())
	assert.Equal(t, []string{"Product", "Total_Sales", "Avg_Sales", "Count", "Std_Dev"}, wb.Names())
}

func TestCreateVisualizations(t *testing.T) {
	a, out := newAnalyzer(t)
	dir := t.TempDir()
	path := filepath.Join(dir, config.SalesReportChartFile)

	require.NoError(t, a.CreateVisualizations(context.Background(), path, 40))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
	assert.Contains(t, out.String(), "Visualizations saved as 'sales_analysis_report.png'")

	err = a.CreateVisualizations(context.Background(), filepath.Join(dir, "missing", "x.png"), 40)
	assert.True(t, errors.Is(err, apierrors.ErrOutputDirMissing))
}

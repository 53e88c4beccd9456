package exporter

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"dataguide/internal/table"
	"dataguide/pkg/contracts/domain"
)

func sampleSheets() []Sheet {
	return []Sheet{
		{Name: "product_stats", Headers: []string{"Product", "Total_Sales"}, Rows: [][]string{{"Laptop", "1500.5"}, {"Phone", "900"}}},
		{Name: "regional_stats", Headers: []string{"Region", "Count"}, Rows: [][]string{{"North", "3"}}},
	}
}

func TestReportExporter_ExportCSV(t *testing.T) {
	_, paths := setupTestEnv(t)
	exp := NewReportExporter(paths)

	files, err := exp.ExportCSV("sales", sampleSheets())
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(paths.ExportsDir, "sales", "product_stats.csv"), files[0])
	assert.Equal(t, []string{"Product,Total_Sales", "Laptop,1500.5", "Phone,900"}, readLines(t, files[0]))
}

func TestReportExporter_ExportWorkbook(t *testing.T) {
	_, paths := setupTestEnv(t)
	exp := NewReportExporter(paths)

	path, err := exp.ExportWorkbook("sales", sampleSheets())
	require.NoError(t, err)

	wb, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"product_stats", "regional_stats"}, wb.GetSheetList())
	rows, err := wb.GetRows("product_stats")
	require.NoError(t, err)
	assert.Equal(t, []string{"Product", "Total_Sales"}, rows[0])
	assert.Equal(t, "Laptop", rows[1][0])

	// the first sheet reads back as a table
	tbl, err := table.Load(path)
	require.NoError(t, err)
	sales, err := tbl.Col("Total_Sales")
	require.NoError(t, err)
	assert.Equal(t, []float64{1500.5, 900}, sales)
}

func TestWriteWorkbookRejectsEmpty(t *testing.T) {
	assert.Error(t, WriteWorkbook(filepath.Join(t.TempDir(), "x.xlsx"), nil))
	assert.Len(t, sheetName("a_very_long_sheet_name_that_goes_on_and_on"), 31)
}

func TestDatasetExporter(t *testing.T) {
	_, paths := setupTestEnv(t)
	exp := NewDatasetExporter(paths)
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }

	salesPath := filepath.Join(t.TempDir(), "sample_sales.csv")
	sales := []domain.SaleRecord{
		{Date: day(2), Product: "Phone", Sales: 800, Region: "South", Salesperson: "Bob"},
		{Date: day(1), Product: "Laptop", Sales: 1200.5, Region: "North", Salesperson: "Alice"},
	}
	require.NoError(t, exp.ExportSales(sales, salesPath))
	assert.Equal(t, []string{
		"Date,Product,Sales,Region,Salesperson",
		"2024-01-01,Laptop,1200.50,North,Alice",
		"2024-01-02,Phone,800.00,South,Bob",
	}, readLines(t, salesPath))

	studentsPath := filepath.Join(t.TempDir(), "student_grades.csv")
	students := []domain.StudentRecord{
		{StudentID: 2, Name: "Ben", Math: 70, Science: 71, English: 72, GradeLevel: "10th", Gender: "Male"},
		{StudentID: 1, Name: "Ann", Math: 90, Science: 91, English: 92, GradeLevel: "9th", Gender: "Female"},
	}
	require.NoError(t, exp.ExportStudents(students, studentsPath))
	lines := readLines(t, studentsPath)
	assert.Equal(t, "Student_ID,Name,Math,Science,English,Grade_Level,Gender", lines[0])
	assert.Equal(t, "1,Ann,90,91,92,9th,Female", lines[1])

	tbl, err := table.Load(studentsPath)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Nrow())
}

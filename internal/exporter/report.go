package exporter

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"dataguide/internal/config"
)

// Sheet is one named table of an exported report
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// ReportExporter writes the tables of an analysis report
type ReportExporter struct {
	csvWriter *CSVWriter
	paths     *config.Paths
}

// NewReportExporter creates a new report exporter
func NewReportExporter(paths *config.Paths) *ReportExporter {
	return &ReportExporter{
		csvWriter: NewCSVWriter(paths),
		paths:     paths,
	}
}

// ExportCSV writes every sheet to exports/<report>/<sheet>.csv and returns the paths
func (e *ReportExporter) ExportCSV(report string, sheets []Sheet) ([]string, error) {
	written := make([]string, 0, len(sheets))
	for _, s := range sheets {
		rel := filepath.Join(report, s.Name+".csv")
		if err := e.csvWriter.WriteSimpleCSV(rel, s.Headers, s.Rows); err != nil {
			return written, fmt.Errorf("failed to export %s: %w", s.Name, err)
		}
		written = append(written, e.paths.ExportPath(report, s.Name+".csv"))
	}
	return written, nil
}

// ExportWorkbook writes all sheets into exports/<report>/<report>.xlsx
func (e *ReportExporter) ExportWorkbook(report string, sheets []Sheet) (string, error) {
	path := e.paths.ExportPath(report, report+".xlsx")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	if err := WriteWorkbook(path, sheets); err != nil {
		return "", err
	}
	slog.Debug("Workbook written", slog.String("path", path), slog.Int("sheets", len(sheets)))
	return path, nil
}

// WriteWorkbook writes one worksheet per sheet. Cells that parse as finite
// numbers are stored as numbers.
func WriteWorkbook(path string, sheets []Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("workbook %s: no sheets", path)
	}

	wb := excelize.NewFile()
	defer wb.Close()

	for i, s := range sheets {
		name := sheetName(s.Name)
		if i == 0 {
			if err := wb.SetSheetName("Sheet1", name); err != nil {
				return fmt.Errorf("failed to name sheet %s: %w", name, err)
			}
		} else if _, err := wb.NewSheet(name); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", name, err)
		}

		if err := setRow(wb, name, 1, s.Headers); err != nil {
			return err
		}
		for r, row := range s.Rows {
			if err := setRow(wb, name, r+2, row); err != nil {
				return err
			}
		}
	}

	if err := wb.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func setRow(wb *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		if f, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			cells[i] = f
		} else {
			cells[i] = v
		}
	}
	if err := wb.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

// sheetName trims names to the 31 characters worksheets allow
func sheetName(name string) string {
	if len(name) > 31 {
		return name[:31]
	}
	return name
}

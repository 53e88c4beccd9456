// Package exporter writes CSV and XLSX files.
//
// This package contains three main components:
//
// CSVWriter: Core CSV writing with headers, appends, streaming and an
// optional UTF-8 BOM for spreadsheet programs. Relative paths land under
// the configured exports directory.
//
// DatasetExporter: Writes the generated sales and student datasets that
// the project programs read.
//
// ReportExporter: Writes the aggregate tables of an analysis report, one
// CSV per table or one workbook with a sheet per table.
//
// Example usage:
//
//	exp := exporter.NewReportExporter(paths)
//	files, err := exp.ExportCSV("sales", sheets)
//
//	xlsx, err := exp.ExportWorkbook("sales", sheets)
package exporter

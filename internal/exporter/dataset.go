package exporter

import (
	"fmt"
	"sort"

	"dataguide/internal/config"
	"dataguide/pkg/contracts/domain"
)

// DatasetExporter writes the generated input datasets
type DatasetExporter struct {
	csvWriter *CSVWriter
}

// NewDatasetExporter creates a new dataset exporter
func NewDatasetExporter(paths *config.Paths) *DatasetExporter {
	return &DatasetExporter{
		csvWriter: NewCSVWriter(paths),
	}
}

// ExportSales writes sales records sorted by date, streaming row by row.
// Datasets carry no BOM so every CSV reader sees the plain header.
func (d *DatasetExporter) ExportSales(records []domain.SaleRecord, outputPath string) error {
	sorted := append([]domain.SaleRecord(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	stream, err := d.csvWriter.CreateStreamWriter(outputPath, domain.SaleColumns)
	if err != nil {
		return fmt.Errorf("failed to create sales dataset: %w", err)
	}
	for _, r := range sorted {
		if err := stream.WriteRecord(r.Row()); err != nil {
			stream.Close()
			return fmt.Errorf("failed to write sales record: %w", err)
		}
	}
	return stream.Close()
}

// ExportStudents writes student records in id order
func (d *DatasetExporter) ExportStudents(records []domain.StudentRecord, outputPath string) error {
	sorted := append([]domain.StudentRecord(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StudentID < sorted[j].StudentID
	})

	rows := make([][]string, len(sorted))
	for i, r := range sorted {
		rows[i] = r.Row()
	}
	return d.csvWriter.WriteCSV(outputPath, WriteOptions{
		Headers: domain.StudentColumns,
		Records: rows,
	})
}

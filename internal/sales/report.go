package sales

import (
	"context"
	"fmt"

	"dataguide/internal/exporter"
	"dataguide/internal/table"
)

// ReportName names the export directory and workbook of this report
const ReportName = "sales_analysis"

// Report is every section of the sales analysis
type Report struct {
	Dataset     string             `json:"dataset"`
	Records     int                `json:"records"`
	Basic       *BasicStats        `json:"basic"`
	Products    *ProductReport     `json:"products"`
	Regions     *RegionalReport    `json:"regions"`
	Salespeople *SalespersonReport `json:"salespeople"`
	TimeSeries  *TimeSeriesReport  `json:"time_series"`
	Insights    *Insights          `json:"insights"`
}

// Run executes every text section in report order
func (a *Analyzer) Run(ctx context.Context) (*Report, error) {
	rep := &Report{Dataset: a.path, Records: len(a.records)}
	var err error

	if rep.Basic, err = a.BasicStatistics(ctx); err != nil {
		return nil, err
	}
	if rep.Products, err = a.ProductAnalysis(ctx); err != nil {
		return nil, err
	}
	if rep.Regions, err = a.RegionalAnalysis(ctx); err != nil {
		return nil, err
	}
	if rep.Salespeople, err = a.SalespersonPerformance(ctx); err != nil {
		return nil, err
	}
	if rep.TimeSeries, err = a.TimeSeriesAnalysis(ctx); err != nil {
		return nil, err
	}
	if rep.Insights, err = a.GenerateInsights(ctx); err != nil {
		return nil, err
	}
	return rep, nil
}

// Sheets lays the report's tables out for export
func (r *Report) Sheets() []exporter.Sheet {
	daily := make([][]string, len(r.TimeSeries.Daily))
	for i, d := range r.TimeSeries.Daily {
		daily[i] = []string{d.Time.Format("2006-01-02"), table.FormatFloat(d.Value, false, 2)}
	}
	return []exporter.Sheet{
		gridSheet("products", r.Products.Stats),
		gridSheet("regions", r.Regions.Stats),
		gridSheet("salespeople", r.Salespeople.Stats),
		{Name: "daily_sales", Headers: []string{"Date", "Sales"}, Rows: daily},
	}
}

func gridSheet(name string, g *table.Grid) exporter.Sheet {
	return exporter.Sheet{Name: name, Headers: g.Header(), Rows: g.Records()}
}

// Export writes the report tables as CSV files and/or one workbook and
// returns the written paths
func (r *Report) Export(exp *exporter.ReportExporter, csv, xlsx bool) ([]string, error) {
	var written []string
	sheets := r.Sheets()
	if csv {
		paths, err := exp.ExportCSV(ReportName, sheets)
		if err != nil {
			return written, fmt.Errorf("failed to export sales tables: %w", err)
		}
		written = append(written, paths...)
	}
	if xlsx {
		path, err := exp.ExportWorkbook(ReportName, sheets)
		if err != nil {
			return written, fmt.Errorf("failed to export sales workbook: %w", err)
		}
		written = append(written, path)
	}
	return written, nil
}

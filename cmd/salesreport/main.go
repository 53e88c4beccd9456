// Command salesreport analyzes the sales dataset: totals by product, region
// and salesperson, the daily trend, key insights and a four-panel chart.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"

	"dataguide/internal/cli"
	"dataguide/internal/exporter"
	"dataguide/internal/sales"
)

const program = "salesreport"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout))
}

func run(ctx context.Context, args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	flags := cli.RegisterFlags(fs)
	data := fs.String("data", "", "sales dataset (csv or xlsx), overrides the configured file")
	exportCSV := fs.Bool("export-csv", false, "write the aggregate tables as CSV")
	exportXLSX := fs.Bool("export-xlsx", false, "write the aggregate tables into one workbook")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if flags.PrintVersion(stdout, program) {
		return 0
	}

	ctx, rt, err := cli.Start(ctx, program, flags, stdout)
	if err != nil {
		return rt.Fail(ctx, err)
	}
	defer rt.Close(ctx)

	dataset := rt.Paths.SalesCSV
	if *data != "" {
		dataset = *data
	}
	csvOut := *exportCSV || rt.Config.Report.ExportCSV
	xlsxOut := *exportXLSX || rt.Config.Report.ExportXLSX

	p := rt.Printer
	p.Banner("🚀 SALES DATA ANALYSIS PROJECT", 50)

	if err := rt.PrepareOutput(); err != nil {
		return rt.Fail(ctx, err)
	}

	analyzer, err := sales.NewAnalyzer(ctx, dataset,
		sales.WithPrinter(p),
		sales.WithLogger(rt.Logger),
		sales.WithMetrics(rt.Metrics))
	if err != nil {
		return rt.Fail(ctx, err)
	}

	rep, err := analyzer.Run(ctx)
	if err != nil {
		return rt.Fail(ctx, err)
	}
	if err := analyzer.CreateVisualizations(ctx, rt.Paths.SalesReportPNG, rt.Config.Report.ChartDPI); err != nil {
		return rt.Fail(ctx, err)
	}

	if csvOut || xlsxOut {
		files, err := rep.Export(exporter.NewReportExporter(rt.Paths), csvOut, xlsxOut)
		if err != nil {
			return rt.Fail(ctx, err)
		}
		p.Line("Exported %d files to %s", len(files), filepath.Dir(files[0]))
	}

	p.Blank()
	p.Line("✅ Analysis complete! Check the generated visualizations.")
	return 0
}

// Command datagen writes the seeded sample datasets the two analysis
// programs read: sample_sales.csv and student_grades.csv.
package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"

	"dataguide/internal/cli"
	"dataguide/internal/exporter"
	"dataguide/internal/sampledata"
	"dataguide/internal/validation"
)

const program = "datagen"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout))
}

func run(ctx context.Context, args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	flags := cli.RegisterFlags(fs)
	salesRows := fs.Int("sales", 1000, "number of sales transactions")
	days := fs.Int("days", 90, "days the sales transactions span")
	studentRows := fs.Int("students", 200, "number of students")
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

	if err := rt.Paths.EnsureDatasetsDir(); err != nil {
		return rt.Fail(ctx, err)
	}

	// one generator per dataset so either can be regenerated alone
	sales := sampledata.New(rt.Config.Report.Seed).SalesRecords(*salesRows, *days)
	students := sampledata.New(rt.Config.Report.Seed).StudentRecords(*studentRows)

	if err := validation.Records(sales); err != nil {
		return rt.Fail(ctx, err)
	}
	if err := validation.Records(students); err != nil {
		return rt.Fail(ctx, err)
	}

	exp := exporter.NewDatasetExporter(rt.Paths)
	if err := exp.ExportSales(sales, rt.Paths.SalesCSV); err != nil {
		return rt.Fail(ctx, err)
	}
	if err := exp.ExportStudents(students, rt.Paths.StudentsCSV); err != nil {
		return rt.Fail(ctx, err)
	}

	rt.Logger.InfoContext(ctx, "Datasets written",
		slog.Int("sales", len(sales)),
		slog.Int("students", len(students)),
		slog.Int64("seed", rt.Config.Report.Seed))

	p := rt.Printer
	p.Line("Wrote %d sales records to %s", len(sales), rt.Paths.SalesCSV)
	p.Line("Wrote %d students to %s", len(students), rt.Paths.StudentsCSV)
	return 0
}

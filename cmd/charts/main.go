// Command charts renders the three example dashboards into the examples
// output directory. Dashboards render concurrently; output order is fixed.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"dataguide/internal/cli"
	"dataguide/internal/lessons"
)

const program = "charts"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout))
}

func run(ctx context.Context, args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	flags := cli.RegisterFlags(fs)
	only := fs.String("only", "", "render a single dashboard: basic_plots, pandas_plots or advanced_plots")
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

	dashboards, err := selectDashboards(*only)
	if err != nil {
		return rt.Fail(ctx, err)
	}
	if err := rt.PrepareOutput(); err != nil {
		return rt.Fail(ctx, err)
	}

	env := &lessons.Env{
		Printer: rt.Printer,
		Paths:   rt.Paths,
		Seed:    rt.Config.Report.Seed,
		DPI:     rt.Config.Report.ChartDPI,
		Metrics: rt.Metrics,
		Logger:  rt.Logger,
	}

	rt.Printer.Line("Creating visualization examples...")
	if err := lessons.RenderAll(ctx, env, dashboards...); err != nil {
		return rt.Fail(ctx, err)
	}
	rt.Printer.Blank()
	rt.Printer.Line("All plots saved to examples/ folder!")
	return 0
}

func selectDashboards(name string) ([]lessons.Dashboard, error) {
	if name == "" {
		return lessons.Dashboards, nil
	}
	for _, d := range lessons.Dashboards {
		if d.Name == name {
			return []lessons.Dashboard{d}, nil
		}
	}
	return nil, fmt.Errorf("unknown dashboard %q", name)
}

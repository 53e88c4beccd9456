// Command arraybasics prints the array lessons: creating arrays, element-wise
// maths and a week of temperatures.
package main

import (
	"context"
	"flag"
	"io"
	"os"

	"dataguide/internal/cli"
	"dataguide/internal/lessons"
)

const program = "arraybasics"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout))
}

func run(ctx context.Context, args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	flags := cli.RegisterFlags(fs)
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

	env := &lessons.Env{
		Printer: rt.Printer,
		Paths:   rt.Paths,
		Seed:    rt.Config.Report.Seed,
		DPI:     rt.Config.Report.ChartDPI,
		Metrics: rt.Metrics,
		Logger:  rt.Logger,
	}
	if err := lessons.Run(ctx, env, lessons.ArrayLessons...); err != nil {
		return rt.Fail(ctx, err)
	}
	return 0
}

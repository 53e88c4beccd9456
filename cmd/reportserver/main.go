// Command reportserver serves generated charts and exports over HTTP and
// runs the analyzers on demand, returning their results as JSON.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"dataguide/internal/app"
	"dataguide/internal/cli"
)

const program = "reportserver"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	flags := cli.RegisterFlags(fs)
	port := fs.Int("port", 0, "listen port (default from config, 8080)")
	rps := fs.Float64("rps", 0, "requests per second allowed across all clients")
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

	if *port > 0 {
		rt.Config.Server.Port = *port
	}
	if *rps > 0 {
		rt.Config.Server.RPS = *rps
	}

	application := app.New(rt.Config, rt.Paths, rt.Logger, rt.Metrics)
	if err := application.Run(ctx); err != nil {
		return rt.Fail(ctx, err)
	}
	return 0
}

// Package cli holds the start-up and shutdown steps every dataguide program
// shares: flags, configuration, logging, tracing and metrics.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"dataguide/internal/config"
	apierrors "dataguide/internal/errors"
	"dataguide/internal/infrastructure"
	"dataguide/internal/report"
	"dataguide/pkg/contracts"
)

// Flags are the command-line overrides every program accepts.
// Zero values leave the configuration untouched.
type Flags struct {
	ConfigFile    string
	DatasetsDir   string
	OutputDir     string
	LogLevel      string
	TraceExporter string
	MetricsFile   string
	Seed          int64
	DPI           int
	NoColor       bool
	Version       bool

	// Significance is set only by programs that call RegisterSignificance
	Significance *float64
}

// RegisterFlags adds the shared flags to fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigFile, "config", "", "YAML config file (defaults to $GUIDE_CONFIG_FILE or dataguide.yaml)")
	fs.StringVar(&f.DatasetsDir, "datasets", "", "directory holding the input datasets")
	fs.StringVar(&f.OutputDir, "out", "", "root directory for charts and exports")
	fs.StringVar(&f.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.TraceExporter, "trace", "", "trace exporter: none, stdout, file")
	fs.StringVar(&f.MetricsFile, "metrics-file", "", "write prometheus metrics to this textfile on exit")
	fs.Int64Var(&f.Seed, "seed", 0, "random seed (default from config, 42)")
	fs.IntVar(&f.DPI, "dpi", 0, "chart resolution")
	fs.BoolVar(&f.NoColor, "no-color", false, "disable coloured headings")
	fs.BoolVar(&f.Version, "version", false, "print version and exit")
	return f
}

// RegisterSignificance adds -alpha, the p-value below which test results
// are significant. Out-of-range values fail configuration validation.
func (f *Flags) RegisterSignificance(fs *flag.FlagSet) {
	fs.Func("alpha", "significance level (default from config, 0.05)", func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		f.Significance = &v
		return nil
	})
}

func (f *Flags) apply(cfg *config.Config) {
	if f.DatasetsDir != "" {
		cfg.Paths.DatasetsDir = f.DatasetsDir
	}
	if f.OutputDir != "" {
		cfg.Paths.OutputDir = f.OutputDir
	}
	if f.LogLevel != "" {
		cfg.Logging.Level = strings.ToLower(f.LogLevel)
	}
	if f.TraceExporter != "" {
		cfg.Telemetry.TraceExporter = strings.ToLower(f.TraceExporter)
	}
	if f.MetricsFile != "" {
		cfg.Telemetry.MetricsFile = f.MetricsFile
	}
	if f.Seed != 0 {
		cfg.Report.Seed = f.Seed
	}
	if f.DPI != 0 {
		cfg.Report.ChartDPI = f.DPI
	}
	if f.NoColor {
		cfg.Report.Color = false
	}
	if f.Significance != nil {
		cfg.Report.Significance = *f.Significance
	}
}

// Runtime is a started program
type Runtime struct {
	Name    string
	Config  *config.Config
	Paths   *config.Paths
	Logger  *slog.Logger
	Metrics *infrastructure.Metrics
	Printer *report.Printer

	tracing *infrastructure.Tracing
}

// Start loads configuration, applies the flags and brings up logging,
// tracing and metrics. The returned context carries a fresh trace id.
func Start(ctx context.Context, name string, flags *Flags, stdout io.Writer) (context.Context, *Runtime, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.ConfigFile != "" {
		if _, err := os.Stat(flags.ConfigFile); err != nil {
			return ctx, nil, apierrors.New(apierrors.CodeInvalidConfig, "config file "+flags.ConfigFile+" not readable", err)
		}
		cfg, err = config.LoadFile(flags.ConfigFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return ctx, nil, apierrors.New(apierrors.CodeInvalidConfig, "failed to load configuration", err)
	}

	flags.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return ctx, nil, apierrors.New(apierrors.CodeInvalidConfig, "invalid flags", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return ctx, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = infrastructure.WithComponent(logger, name)

	ctx = infrastructure.ContextWithTraceID(ctx)

	paths, err := config.GetPaths(cfg.Paths)
	if err != nil {
		return ctx, nil, err
	}
	paths.LogPathResolution()

	tracing, err := infrastructure.InitializeTracing(ctx, cfg.Telemetry, name, logger)
	if err != nil {
		return ctx, nil, err
	}

	rt := &Runtime{
		Name:    name,
		Config:  cfg,
		Paths:   paths,
		Logger:  logger,
		Metrics: infrastructure.NewMetrics(name),
		Printer: report.NewPrinter(stdout, cfg.Report.Color),
		tracing: tracing,
	}

	logger.InfoContext(ctx, "Program starting",
		slog.String("version", contracts.Version),
		slog.Int64("seed", cfg.Report.Seed),
		slog.String("output_dir", paths.OutputDir))

	return ctx, rt, nil
}

// PrepareOutput creates the chart and export directories when configured to.
// Otherwise renderers report OUTPUT_DIR_MISSING for a missing directory.
func (rt *Runtime) PrepareOutput() error {
	if !rt.Config.Paths.CreateOutputDirs {
		return nil
	}
	return rt.Paths.EnsureOutputDirectories()
}

// Close flushes spans, writes the metrics textfile and closes the log file
func (rt *Runtime) Close(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	if err := rt.tracing.Shutdown(ctx); err != nil {
		rt.Logger.WarnContext(ctx, "Failed to shut down tracing", slog.String("error", err.Error()))
	}
	if err := rt.Metrics.WriteTextfile(rt.Config.Telemetry.MetricsFile); err != nil {
		rt.Logger.WarnContext(ctx, "Failed to write metrics", slog.String("error", err.Error()))
	}
	infrastructure.CloseLogFile()
}

// Fail logs err, counts it and prints it to stderr. It returns the exit code.
func (rt *Runtime) Fail(ctx context.Context, err error) int {
	code := apierrors.CodeOf(err)
	if rt != nil {
		rt.Logger.ErrorContext(ctx, "Program failed",
			slog.String("error", err.Error()),
			slog.String("code", string(code)))
		if code != "" {
			rt.Metrics.Error(string(code))
		}
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}

// PrintVersion writes the version banner of a program when -version was given
// and reports whether it did
func (f *Flags) PrintVersion(w io.Writer, name string) bool {
	if !f.Version {
		return false
	}
	fmt.Fprintln(w, contracts.GetFullVersionString(name))
	return true
}

package config

// Application constants
const (
	AppName    = "dataguide"
	AppVersion = "1.0.0"

	// Every generator is seeded with this unless configured otherwise
	DefaultSeed int64 = 42

	// p-values below this are reported as significant
	DefaultSignificance = 0.05

	DefaultChartDPI = 100

	// Report server rate limiting
	DefaultRateLimit = 20 // requests per second
	DefaultBurstSize = 40

	// Output subdirectories, relative to the output root
	ExamplesDirName = "examples"
	ProjectsDirName = "projects"
	ExportsDirName  = "exports"

	// Well-known chart files
	BasicPlotsFile         = "basic_plots.png"
	PandasPlotsFile        = "pandas_plots.png"
	AdvancedPlotsFile      = "advanced_plots.png"
	SalesReportChartFile   = "sales_analysis_report.png"
	StudentReportChartFile = "student_performance_report.png"
)

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete configuration shared by every dataguide program
type Config struct {
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Paths     PathsConfig     `yaml:"paths" envconfig:"PATHS"`
	Report    ReportConfig    `yaml:"report" envconfig:"REPORT"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
	Server    ServerConfig    `yaml:"server" envconfig:"SERVER"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig contains the dataset and output locations.
// Relative paths are resolved against the working directory.
type PathsConfig struct {
	DatasetsDir      string `yaml:"datasets_dir" envconfig:"DATASETS_DIR" validate:"required"`
	OutputDir        string `yaml:"output_dir" envconfig:"OUTPUT_DIR" validate:"required"`
	SalesFile        string `yaml:"sales_file" envconfig:"SALES_FILE" validate:"required"`
	StudentsFile     string `yaml:"students_file" envconfig:"STUDENTS_FILE" validate:"required"`
	CreateOutputDirs bool   `yaml:"create_output_dirs" envconfig:"CREATE_OUTPUT_DIRS"`
}

// ReportConfig controls report generation
type ReportConfig struct {
	Seed         int64   `yaml:"seed" envconfig:"SEED"`
	Significance float64 `yaml:"significance" envconfig:"SIGNIFICANCE" validate:"gt=0,lt=1"`
	ChartDPI     int     `yaml:"chart_dpi" envconfig:"CHART_DPI" validate:"min=50,max=600"`
	ExportCSV    bool    `yaml:"export_csv" envconfig:"EXPORT_CSV"`
	ExportXLSX   bool    `yaml:"export_xlsx" envconfig:"EXPORT_XLSX"`
	Color        bool    `yaml:"color" envconfig:"COLOR"`
}

// TelemetryConfig controls tracing and metrics output
type TelemetryConfig struct {
	TraceExporter string `yaml:"trace_exporter" envconfig:"TRACE_EXPORTER" validate:"oneof=none stdout file"`
	TraceFile     string `yaml:"trace_file" envconfig:"TRACE_FILE" validate:"required_if=TraceExporter file"`
	MetricsFile   string `yaml:"metrics_file" envconfig:"METRICS_FILE"`
}

// ServerConfig contains report server configuration
type ServerConfig struct {
	Port  int     `yaml:"port" envconfig:"PORT" validate:"min=1,max=65535"`
	RPS   float64 `yaml:"rps" envconfig:"RPS" validate:"gt=0"`
	Burst int     `yaml:"burst" envconfig:"BURST" validate:"min=1"`
}

// EnvPrefix is the namespace of every environment variable, e.g. GUIDE_REPORT_SEED
const EnvPrefix = "GUIDE"

// Load loads configuration from defaults, an optional YAML file and the environment.
// Environment variables take precedence over the file, the file over defaults.
func Load() (*Config, error) {
	return LoadFile(getConfigFilePath())
}

// LoadFile is Load with an explicit config file path. An empty path skips the file.
func LoadFile(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := loadFromFile(configFile, cfg); err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
		} else if os.Getenv(EnvPrefix+"_CONFIG_FILE") != "" {
			return nil, fmt.Errorf("config file %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays YAML values onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func (c *Config) normalize() {
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	c.Logging.Output = strings.ToLower(c.Logging.Output)
	c.Telemetry.TraceExporter = strings.ToLower(c.Telemetry.TraceExporter)

	// Always JSON
	c.Logging.Format = "json"

	if c.Logging.Output != "console" && c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/dataguide.log"
	}
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("invalid %s: failed %q (value %v)", first.Namespace(), first.Tag(), first.Value())
		}
		return err
	}
	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	if p := os.Getenv(EnvPrefix + "_CONFIG_FILE"); p != "" {
		return p
	}

	locations := []string{
		"dataguide.yaml",
		"configs/dataguide.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/dataguide.log",
		},
		Paths: PathsConfig{
			DatasetsDir:      "datasets",
			OutputDir:        ".",
			SalesFile:        "sample_sales.csv",
			StudentsFile:     "student_grades.csv",
			CreateOutputDirs: true,
		},
		Report: ReportConfig{
			Seed:         DefaultSeed,
			Significance: DefaultSignificance,
			ChartDPI:     DefaultChartDPI,
			Color:        true,
		},
		Telemetry: TelemetryConfig{
			TraceExporter: "none",
		},
		Server: ServerConfig{
			Port:  8080,
			RPS:   DefaultRateLimit,
			Burst: DefaultBurstSize,
		},
	}
}

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains all the resolved file locations.
// This is the single source of truth for file paths in every program.
type Paths struct {
	BaseDir     string
	DatasetsDir string
	OutputDir   string
	ExamplesDir string
	ProjectsDir string
	ExportsDir  string

	// Well-known input files
	SalesCSV    string
	StudentsCSV string

	// Well-known chart files
	BasicPlotsPNG    string
	PandasPlotsPNG   string
	AdvancedPlotsPNG string
	SalesReportPNG   string
	StudentReportPNG string
}

// GetPaths resolves the configured paths against the current working directory
func GetPaths(cfg PathsConfig) (*Paths, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return ResolvePaths(wd, cfg), nil
}

// ResolvePaths resolves the configured paths against baseDir
func ResolvePaths(baseDir string, cfg PathsConfig) *Paths {
	datasets := resolve(baseDir, cfg.DatasetsDir)
	output := resolve(baseDir, cfg.OutputDir)

	// Directory structure:
	// <output>/
	//   ├── examples/   (lesson charts)
	//   ├── projects/   (analyzer charts)
	//   └── exports/    (CSV / XLSX tables)
	examplesDir := filepath.Join(output, ExamplesDirName)
	projectsDir := filepath.Join(output, ProjectsDirName)

	return &Paths{
		BaseDir:     baseDir,
		DatasetsDir: datasets,
		OutputDir:   output,
		ExamplesDir: examplesDir,
		ProjectsDir: projectsDir,
		ExportsDir:  filepath.Join(output, ExportsDirName),

		SalesCSV:    resolve(datasets, cfg.SalesFile),
		StudentsCSV: resolve(datasets, cfg.StudentsFile),

		BasicPlotsPNG:    filepath.Join(examplesDir, BasicPlotsFile),
		PandasPlotsPNG:   filepath.Join(examplesDir, PandasPlotsFile),
		AdvancedPlotsPNG: filepath.Join(examplesDir, AdvancedPlotsFile),
		SalesReportPNG:   filepath.Join(projectsDir, SalesReportChartFile),
		StudentReportPNG: filepath.Join(projectsDir, StudentReportChartFile),
	}
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}

// EnsureOutputDirectories creates the chart and export directories.
// Renderers never create directories themselves; programs call this when
// Paths.CreateOutputDirs is enabled.
func (p *Paths) EnsureOutputDirectories() error {
	directories := []string{
		p.OutputDir,
		p.ExamplesDir,
		p.ProjectsDir,
		p.ExportsDir,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
		slog.Debug("Ensured directory exists", slog.String("directory", dir))
	}

	return nil
}

// EnsureDatasetsDir creates the datasets directory
func (p *Paths) EnsureDatasetsDir() error {
	if err := os.MkdirAll(p.DatasetsDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p.DatasetsDir, err)
	}
	return nil
}

// ExportPath returns the location of an exported table for a report
func (p *Paths) ExportPath(report, filename string) string {
	return filepath.Join(p.ExportsDir, report, filename)
}

// LogPathResolution logs every resolved path at debug level
func (p *Paths) LogPathResolution() {
	slog.Debug("Path resolution",
		slog.String("base_dir", p.BaseDir),
		slog.String("datasets_dir", p.DatasetsDir),
		slog.String("output_dir", p.OutputDir),
		slog.String("sales_csv", p.SalesCSV),
		slog.String("students_csv", p.StudentsCSV))
}

// Package config provides centralized configuration for the dataguide programs.
// It handles loading configuration from multiple sources, validation, and the
// resolution of dataset and output paths.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//  1. Environment variables (highest priority)
//  2. YAML configuration file (dataguide.yaml, or GUIDE_CONFIG_FILE)
//  3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern GUIDE_<SECTION>_<FIELD>:
//
//	GUIDE_LOGGING_LEVEL=debug
//	GUIDE_PATHS_DATASETS_DIR=../datasets
//	GUIDE_REPORT_SEED=7
//	GUIDE_REPORT_EXPORT_XLSX=true
//	GUIDE_TELEMETRY_TRACE_EXPORTER=file
//
// # Paths
//
// Paths resolves every configured location against the working directory:
//
//	paths, err := config.GetPaths(cfg.Paths)
//	if err != nil {
//	    return err
//	}
//	analyzer, err := sales.NewAnalyzer(ctx, paths.SalesCSV, opts)
//
// Command-line flags of each program override the loaded values.
package config

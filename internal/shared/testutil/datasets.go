// Package testutil provides fixtures and log capture for tests
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"dataguide/internal/config"
)

// SalesCSV is a six-transaction sales dataset over three days.
// Totals: Laptop 3600, Phone 1400, Tablet 400; Bob sold the most (2300).
const SalesCSV = `Date,Product,Sales,Region,Salesperson
2024-01-01,Laptop,1200,North,Alice
2024-01-01,Phone,800,South,Bob
2024-01-02,Laptop,1500,North,Bob
2024-01-02,Tablet,400,East,Alice
2024-01-03,Phone,600,South,Carol
2024-01-03,Laptop,900,East,Carol
`

// StudentsCSV is an eight-student dataset, four per grade level and gender.
// Dan and Eve average below 70.
const StudentsCSV = `Student_ID,Name,Math,Science,English,Grade_Level,Gender
1,Ann,95,92,91,10th,Female
2,Ben,85,80,84,10th,Male
3,Cat,72,75,70,9th,Female
4,Dan,60,65,58,9th,Male
5,Eve,50,55,52,9th,Female
6,Fay,88,90,86,10th,Female
7,Gus,78,70,75,9th,Male
8,Hal,91,89,94,10th,Male
`

// NewPaths resolves the default configuration under a fresh temp directory
func NewPaths(t *testing.T) (*config.Config, *config.Paths) {
	t.Helper()
	cfg := config.Default()
	return cfg, config.ResolvePaths(t.TempDir(), cfg.Paths)
}

// WriteDatasets writes both fixtures to the configured dataset locations
func WriteDatasets(t *testing.T, paths *config.Paths) {
	t.Helper()
	WriteFile(t, paths.SalesCSV, SalesCSV)
	WriteFile(t, paths.StudentsCSV, StudentsCSV)
}

// WriteFile writes content to path, creating parent directories
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

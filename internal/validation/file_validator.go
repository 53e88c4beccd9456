package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apierrors "dataguide/internal/errors"
)

// FileValidator checks dataset and output locations before a program runs
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger: logger,
	}
}

// ValidateFile checks that a file exists and is readable
func (v *FileValidator) ValidateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		v.logger.Error("File is not accessible",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return apierrors.MissingFile(path, err)
	}
	if info.IsDir() {
		v.logger.Error("Path is a directory, not a file",
			slog.String("path", path))
		return apierrors.MissingFile(path, fmt.Errorf("%s is a directory", path))
	}

	file, err := os.Open(path)
	if err != nil {
		v.logger.Error("File is not readable",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return apierrors.MissingFile(path, err)
	}
	file.Close()

	v.logger.Debug("File validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateDataset checks that path is a readable CSV or XLSX file
func (v *FileValidator) ValidateDataset(path string) error {
	if err := v.ValidateFile(path); err != nil {
		return err
	}

	base := filepath.Base(path)
	if strings.HasPrefix(base, "~$") {
		v.logger.Warn("Refusing temporary Excel file",
			slog.String("file", path))
		return fmt.Errorf("file %s is a temporary Excel file", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".xlsx", ".xlsm":
		return nil
	default:
		v.logger.Error("Unsupported dataset format",
			slog.String("file", path),
			slog.String("extension", ext))
		return fmt.Errorf("file %s is not a CSV or Excel file (extension: %s)", path, ext)
	}
}

// ValidateOutputDirectory checks that dir exists and is writable.
// With create set, a missing directory is created first.
func (v *FileValidator) ValidateOutputDirectory(dir string, create bool) error {
	if create {
		if err := os.MkdirAll(dir, 0755); err != nil {
			v.logger.Error("Failed to create output directory",
				slog.String("directory", dir),
				slog.String("error", err.Error()))
			return apierrors.OutputDirMissing(dir, err)
		}
	}

	info, err := os.Stat(dir)
	if err != nil {
		return apierrors.OutputDirMissing(dir, err)
	}
	if !info.IsDir() {
		return apierrors.OutputDirMissing(dir, fmt.Errorf("%s is not a directory", dir))
	}

	testFile := filepath.Join(dir, ".write_test")
	file, err := os.Create(testFile)
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("output directory %s is not writable: %w", dir, err)
	}
	file.Close()
	os.Remove(testFile)

	v.logger.Debug("Output directory validated",
		slog.String("directory", dir))
	return nil
}

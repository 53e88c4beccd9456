package services

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"

	"dataguide/internal/config"
	"dataguide/pkg/contracts"
)

// HealthService provides health check functionality
type HealthService struct {
	paths     *config.Paths
	startTime time.Time
	logger    *slog.Logger
}

// HealthStatus represents the health status response
type HealthStatus struct {
	Status    string                   `json:"status"`
	Timestamp time.Time                `json:"timestamp"`
	Version   string                   `json:"version"`
	Runtime   map[string]interface{}   `json:"runtime,omitempty"`
	Checks    map[string]ServiceHealth `json:"checks,omitempty"`
}

// ServiceHealth represents the health of one dependency
type ServiceHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// NewHealthService creates a new health service
func NewHealthService(paths *config.Paths, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		paths:     paths,
		startTime: time.Now(),
		logger:    logger,
	}
}

// HealthCheck returns overall health status
func (hs *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   contracts.Version,
		Runtime: map[string]interface{}{
			"uptime":     time.Since(hs.startTime).Seconds(),
			"go_version": runtime.Version(),
			"goroutines": runtime.NumGoroutine(),
		},
	}
}

// ReadinessCheck reports whether both datasets and the output root exist
func (hs *HealthService) ReadinessCheck(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    "ready",
		Timestamp: time.Now(),
		Version:   contracts.Version,
		Checks: map[string]ServiceHealth{
			"sales_dataset":    checkFile(hs.paths.SalesCSV, false),
			"students_dataset": checkFile(hs.paths.StudentsCSV, false),
			"output_dir":       checkFile(hs.paths.OutputDir, true),
		},
	}

	for name, check := range status.Checks {
		if check.Status != "ready" {
			status.Status = "not_ready"
			hs.logger.WarnContext(ctx, "ReadinessCheck: dependency not ready",
				slog.String("check", name),
				slog.String("message", check.Message))
		}
	}

	return status
}

// Version returns version information
func (hs *HealthService) Version() contracts.VersionInfo {
	return contracts.GetVersionInfo()
}

func checkFile(path string, dir bool) ServiceHealth {
	info, err := os.Stat(path)
	switch {
	case err != nil:
		return ServiceHealth{Status: "not_ready", Message: err.Error()}
	case info.IsDir() != dir:
		return ServiceHealth{Status: "not_ready", Message: path + " has the wrong type"}
	default:
		return ServiceHealth{Status: "ready"}
	}
}

package http

import (
	"context"

	"dataguide/internal/sales"
	"dataguide/internal/services"
	"dataguide/internal/students"
	"dataguide/pkg/contracts"
	"dataguide/pkg/contracts/domain"
)

// ReportServiceInterface defines the report operations the handlers need
type ReportServiceInterface interface {
	ListReports(ctx context.Context) ([]domain.ReportFile, error)
	ReportPath(ctx context.Context, name string) (string, error)
	SalesSummary(ctx context.Context) (*sales.Report, error)
	StudentSummary(ctx context.Context) (*students.Report, error)
}

// HealthServiceInterface defines the health operations the handlers need
type HealthServiceInterface interface {
	HealthCheck(ctx context.Context) services.HealthStatus
	ReadinessCheck(ctx context.Context) services.HealthStatus
	Version() contracts.VersionInfo
}

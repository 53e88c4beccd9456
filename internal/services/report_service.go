package services

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/singleflight"

	"dataguide/internal/config"
	apierrors "dataguide/internal/errors"
	"dataguide/internal/infrastructure"
	"dataguide/internal/sales"
	"dataguide/internal/students"
	"dataguide/pkg/contracts/domain"
)

// reportExtensions are the generated files the server exposes, by kind
var reportExtensions = map[string]string{
	".png":  domain.ReportKindChart,
	".csv":  domain.ReportKindExport,
	".xlsx": domain.ReportKindExport,
}

// ReportService lists generated reports and produces analysis summaries
type ReportService struct {
	cfg     *config.Config
	paths   *config.Paths
	metrics *infrastructure.Metrics
	logger  *slog.Logger

	// concurrent summary requests share one analyzer run
	runs singleflight.Group
}

// NewReportService creates a report service. metrics may be nil.
func NewReportService(cfg *config.Config, paths *config.Paths, metrics *infrastructure.Metrics, logger *slog.Logger) *ReportService {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("ReportService initialized",
		slog.String("output_dir", paths.OutputDir),
		slog.String("sales_csv", paths.SalesCSV),
		slog.String("students_csv", paths.StudentsCSV))

	return &ReportService{
		cfg:     cfg,
		paths:   paths,
		metrics: metrics,
		logger:  logger,
	}
}

// ListReports returns the charts and exports under the output directories,
// named by their slash-separated path relative to the output root.
// Missing directories are skipped.
func (s *ReportService) ListReports(ctx context.Context) ([]domain.ReportFile, error) {
	var reports []domain.ReportFile

	for _, dir := range []string{s.paths.ExamplesDir, s.paths.ProjectsDir, s.paths.ExportsDir} {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if os.IsNotExist(err) && path == dir {
					return fs.SkipDir
				}
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}

			kind, ok := reportExtensions[strings.ToLower(filepath.Ext(path))]
			if !ok {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return err
			}
			rel, err := filepath.Rel(s.paths.OutputDir, path)
			if err != nil {
				return err
			}

			reports = append(reports, domain.ReportFile{
				Name:     filepath.ToSlash(rel),
				Kind:     kind,
				Size:     info.Size(),
				Modified: info.ModTime(),
			})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].Name < reports[j].Name })

	s.logger.DebugContext(ctx, "ListReports: completed", slog.Int("count", len(reports)))
	return reports, nil
}

// ReportPath resolves a name returned by ListReports to a file on disk.
// Names that escape the output root or are not report files are NOT_FOUND.
func (s *ReportService) ReportPath(ctx context.Context, name string) (string, error) {
	local := filepath.FromSlash(name)
	if !filepath.IsLocal(local) {
		return "", apierrors.New(apierrors.CodeNotFound, "report "+name+" not found", nil)
	}
	if _, ok := reportExtensions[strings.ToLower(filepath.Ext(local))]; !ok {
		return "", apierrors.New(apierrors.CodeNotFound, "report "+name+" not found", nil)
	}

	path := filepath.Join(s.paths.OutputDir, local)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		s.logger.DebugContext(ctx, "ReportPath: not found", slog.String("name", name))
		return "", apierrors.New(apierrors.CodeNotFound, "report "+name+" not found", err)
	}
	return path, nil
}

// SalesSummary runs every section of the sales analysis over the configured dataset
func (s *ReportService) SalesSummary(ctx context.Context) (*sales.Report, error) {
	v, err, shared := s.runs.Do("sales", func() (interface{}, error) {
		analyzer, err := sales.NewAnalyzer(ctx, s.paths.SalesCSV,
			sales.WithLogger(s.logger),
			sales.WithMetrics(s.metrics))
		if err != nil {
			return nil, err
		}
		return analyzer.Run(ctx)
	})
	if err != nil {
		s.recordError(err)
		return nil, err
	}
	s.logger.DebugContext(ctx, "SalesSummary: completed", slog.Bool("shared", shared))
	return v.(*sales.Report), nil
}

// StudentSummary runs every section of the student analysis over the configured dataset
func (s *ReportService) StudentSummary(ctx context.Context) (*students.Report, error) {
	v, err, shared := s.runs.Do("students", func() (interface{}, error) {
		analyzer, err := students.NewAnalyzer(ctx, s.paths.StudentsCSV,
			students.WithLogger(s.logger),
			students.WithMetrics(s.metrics),
			students.WithSignificance(s.cfg.Report.Significance))
		if err != nil {
			return nil, err
		}
		return analyzer.Run(ctx)
	})
	if err != nil {
		s.recordError(err)
		return nil, err
	}
	s.logger.DebugContext(ctx, "StudentSummary: completed", slog.Bool("shared", shared))
	return v.(*students.Report), nil
}

func (s *ReportService) recordError(err error) {
	code := apierrors.CodeOf(err)
	if code == "" {
		code = "INTERNAL"
	}
	s.metrics.Error(string(code))
}

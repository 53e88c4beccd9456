package http

import (
	"log/slog"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "dataguide/internal/errors"
	"dataguide/internal/middleware"
)

var contentTypes = map[string]string{
	".png":  "image/png",
	".csv":  "text/csv; charset=utf-8",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// ReportHandler serves generated reports and analysis summaries
type ReportHandler struct {
	service      ReportServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewReportHandler creates a new report handler
func NewReportHandler(service ReportServiceInterface, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		service:      service,
		logger:       logger.With(slog.String("handler", "report")),
		errorHandler: apierrors.NewErrorHandler(logger),
	}
}

// Routes returns a router with all report routes, for mounting under /api
func (h *ReportHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/reports", h.ListReports)
	r.Get("/reports/*", h.GetReport)
	r.Get("/sales/summary", h.SalesSummary)
	r.Get("/students/summary", h.StudentSummary)

	return r
}

// ListReports handles GET /api/reports
func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.service.ListReports(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   reports,
		"count":  len(reports),
	})
}

// GetReport handles GET /api/reports/*, streaming the named file
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")

	filePath, err := h.service.ReportPath(r.Context(), name)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	f, err := os.Open(filePath)
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.New(apierrors.CodeNotFound, "report "+name+" not found", err))
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	h.logger.DebugContext(r.Context(), "serving report",
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("name", name),
		slog.Int64("size", info.Size()))

	if ct, ok := contentTypes[strings.ToLower(path.Ext(name))]; ok {
		w.Header().Set("Content-Type", ct)
	}
	http.ServeContent(w, r, path.Base(name), info.ModTime(), f)
}

// SalesSummary handles GET /api/sales/summary
func (h *ReportHandler) SalesSummary(w http.ResponseWriter, r *http.Request) {
	rep, err := h.service.SalesSummary(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   rep,
	})
}

// StudentSummary handles GET /api/students/summary
func (h *ReportHandler) StudentSummary(w http.ResponseWriter, r *http.Request) {
	rep, err := h.service.StudentSummary(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   rep,
	})
}

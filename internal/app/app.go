package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"dataguide/internal/config"
	apierrors "dataguide/internal/errors"
	"dataguide/internal/infrastructure"
	"dataguide/internal/middleware"
	"dataguide/internal/services"
	handlers "dataguide/internal/transport/http"
)

// Server timeouts. Summaries run the analyzers inline, so writes get more room.
const (
	ReadTimeout     = 15 * time.Second
	WriteTimeout    = 60 * time.Second
	IdleTimeout     = 120 * time.Second
	ShutdownTimeout = 10 * time.Second
)

// Application is the report server
type Application struct {
	Config        *config.Config
	Paths         *config.Paths
	Router        *chi.Mux
	Server        *http.Server
	ReportService *services.ReportService
	HealthService *services.HealthService
	Metrics       *infrastructure.Metrics
	Logger        *slog.Logger
}

// New creates the application with its services and router. metrics may be nil.
func New(cfg *config.Config, paths *config.Paths, logger *slog.Logger, metrics *infrastructure.Metrics) *Application {
	a := &Application{
		Config:        cfg,
		Paths:         paths,
		ReportService: services.NewReportService(cfg, paths, metrics, logger),
		HealthService: services.NewHealthService(paths, logger),
		Metrics:       metrics,
		Logger:        logger,
	}

	a.setupRouter()
	a.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      a.Router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
		IdleTimeout:  IdleTimeout,
	}
	return a
}

func (a *Application) setupRouter() {
	r := chi.NewRouter()
	errorHandler := apierrors.NewErrorHandler(a.Logger)

	// RequestID first so every later layer sees the trace id
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.NewTelemetry(a.Metrics).Handler)
	r.Use(middleware.StructuredLogger(a.Logger))
	r.Use(middleware.Recoverer(a.Logger))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.NewRateLimiter(a.Config.Server.RPS, a.Config.Server.Burst, a.Logger).Handler)

	r.NotFound(errorHandler.NotFound)
	r.MethodNotAllowed(errorHandler.MethodNotAllowed)

	healthHandler := handlers.NewHealthHandler(a.HealthService, a.Logger)
	reportHandler := handlers.NewReportHandler(a.ReportService, a.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Get("/health", healthHandler.HealthCheck)
		r.Get("/health/ready", healthHandler.ReadinessCheck)
		r.Get("/version", healthHandler.Version)

		r.Mount("/", reportHandler.Routes())
	})

	r.Method(http.MethodGet, "/metrics", a.Metrics.Handler())

	a.Router = r
}

// Run serves until ctx is cancelled or the listener fails, then shuts down gracefully
func (a *Application) Run(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "Starting report server",
		slog.String("address", a.Server.Addr),
		slog.String("output_dir", a.Paths.OutputDir),
		slog.Float64("rps", a.Config.Server.RPS),
		slog.Int("burst", a.Config.Server.Burst))

	errCh := make(chan error, 1)
	go func() {
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	return a.Stop(context.WithoutCancel(ctx))
}

// Stop gracefully stops the server
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "Shutting down report server")

	shutdownCtx, cancel := context.WithTimeout(ctx, ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	a.Logger.InfoContext(ctx, "Report server shutdown complete")
	return nil
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"face-gallery/internal/catalog"
	"face-gallery/internal/config"
	"face-gallery/internal/drive"
	"face-gallery/internal/logger"
	"face-gallery/internal/metrics"
	"face-gallery/internal/middleware"
	"face-gallery/internal/web"
	"face-gallery/pkg/models"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the gallery web server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(prometheus.NewRegistry())
	}

	// A failed load is fatal to display, not to the process: the gallery answers 503
	// with a visible error until restarted.
	cat, loadErr := loadCatalog(ctx, cfg)
	if loadErr != nil {
		slog.Error("gallery data unavailable", "error", loadErr)
	}
	if m != nil {
		var summary *models.CatalogSummary
		if cat != nil {
			s := cat.Summary()
			summary = &s
		}
		m.ObserveCatalog(summary, loadErr)
	}

	e := echo.New()
	e.HideBanner = true
	initialize(e, cfg, cat, loadErr, m)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		slog.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	slog.Info("gallery listening", "addr", server.Addr, "directory", cfg.Data.Directory, "index", cfg.Data.Index)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	slog.Info("gallery stopped")
	return nil
}

func initialize(e *echo.Echo, cfg *config.Config, cat *catalog.Catalog, loadErr error, m *metrics.Metrics) {
	urls := drive.NewURLs(cfg.Drive.Host)
	e.Renderer = web.NewRenderer()

	// Middleware
	e.Use(echoMiddleware.Recover())
	if m != nil {
		// wraps the request logger so the recorded status is final
		e.Use(middleware.Metrics(m))
		e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}
	e.Use(requestLogger())
	e.Use(middleware.SecurityHeaders(cfg.Server.Domain, urls.Host))
	e.Use(middleware.CORSConfig(cfg.Server.Domain))

	galleryHandler := web.NewHandler(cat, loadErr, web.Options{
		URLs:        urls,
		LookupImage: cfg.Data.LookupImage,
		Metrics:     m,
	})
	galleryHandler.RegisterRoutes(e)
}

// requestLogger routes Echo request logs through slog
func requestLogger() echo.MiddlewareFunc {
	log := logger.WithComponent("http")
	return echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				log.Error("request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			log.Info("request", attrs...)
			return nil
		},
	})
}

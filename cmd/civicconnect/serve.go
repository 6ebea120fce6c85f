package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/civicconnect/portal/internal/api"
	"github.com/civicconnect/portal/internal/api/view"
	"github.com/civicconnect/portal/internal/core/service"
	"github.com/civicconnect/portal/internal/pkg/config"
	"github.com/civicconnect/portal/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the portal on PORT and serves until SIGINT or SIGTERM, then drains
in-flight requests for at most HTTP_SHUTDOWN_TIMEOUT.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "civicconnect",
	})

	var reg prometheus.Registerer
	var gatherer prometheus.Gatherer
	if cfg.Metrics.Enabled {
		reg, gatherer = prometheus.DefaultRegisterer, prometheus.DefaultGatherer
	}
	e, err := buildRouter(log, reg, gatherer)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      e,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", cfg.HTTP.ShutdownTimeout).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

// buildRouter wires the services and views into the Echo router.
func buildRouter(log zerolog.Logger, reg prometheus.Registerer, gatherer prometheus.Gatherer) (*echo.Echo, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}

	return api.NewRouter(api.Deps{
		Catalog:     service.NewCatalog(),
		Submissions: service.NewSubmissionService(logger.Component(log, "submissions")),
		Renderer:    renderer,
		Logger:      logger.Component(log, "http"),
		Registerer:  reg,
		Gatherer:    gatherer,
	})
}

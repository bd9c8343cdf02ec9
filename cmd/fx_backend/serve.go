package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/fx_rates_service/internal/adapters/ratefile"
	"github.com/SscSPs/fx_rates_service/internal/core/services"
	"github.com/SscSPs/fx_rates_service/internal/handlers"
	"github.com/SscSPs/fx_rates_service/internal/platform/config"
	"github.com/SscSPs/fx_rates_service/internal/platform/metrics"
	"github.com/SscSPs/fx_rates_service/internal/repositories/memory"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Load the rate file and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), v)
		},
	}
}

func runServe(ctx context.Context, v *viper.Viper) error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig(v)
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		return err
	}

	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	srv, err := newServer(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// newServer loads the rate table and builds the HTTP server around it.
// Nothing is bound until the caller starts the server, so a failed load never
// opens the listening port.
func newServer(cfg *config.Config, logger *slog.Logger) (*http.Server, error) {
	table, err := ratefile.Load(cfg.RatesFile)
	if err != nil {
		logger.Error("Failed to load rates", slog.String("rates_file", cfg.RatesFile), slog.String("error", err.Error()))
		return nil, err
	}
	logger.Info("Rates loaded",
		slog.String("rates_file", cfg.RatesFile),
		slog.Int("base_currencies", table.Len()),
		slog.Int("pairs", table.Pairs()),
	)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	var m *metrics.Metrics
	if cfg.EnableMetrics {
		m = metrics.New()
		m.SetRateTableSize(table.Len(), table.Pairs())
	}

	container := services.NewServiceContainer(memory.NewRepositoryProvider(table))
	router, err := handlers.NewRouter(cfg, container, logger, m)
	if err != nil {
		logger.Error("Failed to build router", slog.String("error", err.Error()))
		return nil, fmt.Errorf("build router: %w", err)
	}

	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

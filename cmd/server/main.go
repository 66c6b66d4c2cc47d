package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"accounts-service/internal/config"
	"accounts-service/internal/database"
	"accounts-service/internal/logging"
	"accounts-service/internal/middleware"
	"accounts-service/internal/repositories"
	"accounts-service/internal/server"
	"accounts-service/internal/services"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.Init("accounts-service", cfg.LogLevel, cfg.Server.Environment)

	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	manager := services.NewAccountManager(
		repositories.NewCustomerRepository(db.DB),
		repositories.NewAccountRepository(db.DB),
		services.NewPrometheusMetrics(prometheus.DefaultRegisterer),
		logger,
	)

	rateLimiter := middleware.NewRateLimiter(cfg.Security)
	rateLimiter.StartCleanup()
	defer rateLimiter.Stop()

	deps := server.Dependencies{
		Config:      cfg,
		Logger:      logger,
		Manager:     manager,
		Health:      db,
		RateLimiter: rateLimiter,
		Registerer:  prometheus.DefaultRegisterer,
		Gatherer:    prometheus.DefaultGatherer,
	}
	if cfg.Auth.Enabled {
		deps.TokenService = services.NewTokenService(&cfg.Auth)
	}
	e := server.New(deps)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server started",
			"addr", srv.Addr,
			"env", cfg.Server.Environment,
			"db_driver", cfg.Database.Driver,
			"auth_enabled", cfg.Auth.Enabled,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-quit:
		logger.Info("shutting down server", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

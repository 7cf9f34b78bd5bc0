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

	httpadapter "tribe-pulse-ads/internal/adapter/http"
	"tribe-pulse-ads/internal/adapter/postgres"
	redisadapter "tribe-pulse-ads/internal/adapter/redis"
	"tribe-pulse-ads/internal/adapter/usecase"
	"tribe-pulse-ads/internal/config"
	"tribe-pulse-ads/internal/config/configs"
	"tribe-pulse-ads/internal/core/port"
	"tribe-pulse-ads/internal/db"
	"tribe-pulse-ads/internal/metrics"
)

// store is the backend behind the catalog and the counters.
type store interface {
	port.AdRepository
	db.CatalogWriter
}

// main is the entry point of the reel ad service. It loads configuration,
// optionally runs database migrations, connects the configured store, then
// starts the HTTP server. On receiving a termination signal it stops the
// server first and then drains pending tracking writes.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repo, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("store connection error", slog.String("backend", cfg.Store.Kind()), slog.Any("error", err))
		return
	}
	defer closeStore()

	if cfg.Store.Seed {
		if err = db.Seed(ctx, repo); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo catalog seeded")
		}
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics.Namespace)
	}

	svc := usecase.NewAdUseCase(repo, usecase.Options{
		Logger:     logger,
		Metrics:    m,
		SessionTTL: cfg.Reel.SessionTTL,
	})
	go svc.Run(ctx, cfg.Reel.SweepInterval)

	opts := httpadapter.Options{
		JWTSecret:     cfg.Auth.JWTSecret,
		PreferPremium: cfg.Reel.PreferPremium,
	}
	if m != nil {
		opts.Metrics = m.Handler()
		opts.MetricsPath = cfg.Metrics.Path
	}
	handler := httpadapter.NewHandler(svc, logger, opts)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	stopCtx, stopCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stopCancel()
	if err = srv.Shutdown(stopCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	// Sessions are closed only after the server stopped accepting taps.
	drainCtx, drainCancel := context.WithTimeout(context.Background(), cfg.Reel.ShutdownTimeout)
	defer drainCancel()
	if err = svc.Shutdown(drainCtx); err != nil {
		logger.Error("tracking drain incomplete", slog.Any("error", err))
		exitCode = 1
	}
}

// openStore connects the configured backend. Migrations only apply to
// postgres.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (store, func(), error) {
	switch cfg.Store.Kind() {
	case configs.BackendRedis:
		client, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("connected to redis", slog.String("addr", cfg.Redis.Addr), slog.Int("db", cfg.Redis.DB))
		return redisadapter.NewAdStore(client, logger), func() { _ = client.Close() }, nil
	default:
		// Optionally run migrations if configured. We use the Psql sub-config.
		if cfg.Psql.RunMigrations {
			version, err := db.Migrate(cfg.Psql.Addr.String())
			if err != nil {
				return nil, nil, err
			}
			logger.Info("migrations applied successfully", slog.Uint64("version", uint64(version)))
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewAdRepository(pool, logger), pool.Close, nil
	}
}

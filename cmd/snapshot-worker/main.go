package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aurelioguzman/tendermarket-backend/internal/analytics"
	"github.com/aurelioguzman/tendermarket-backend/internal/cron"
	"github.com/aurelioguzman/tendermarket-backend/internal/marketstore"
	"github.com/aurelioguzman/tendermarket-backend/internal/snapshot"
	"github.com/aurelioguzman/tendermarket-backend/pkg/config"
	"github.com/aurelioguzman/tendermarket-backend/pkg/db"
	"github.com/aurelioguzman/tendermarket-backend/pkg/logger"
	"github.com/aurelioguzman/tendermarket-backend/pkg/metrics"
	"github.com/aurelioguzman/tendermarket-backend/pkg/migrate"
	"github.com/aurelioguzman/tendermarket-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "snapshot-worker"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	cfg.Service.Kind = "snapshot-worker"

	logg = logger.New(logger.Options{
		ServiceName: "snapshot-worker",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	analyticsService, err := analytics.NewService(analytics.ServiceParams{
		Store:           marketstore.NewRepository(dbClient.DB()),
		Logger:          logg,
		CacheTTL:        cfg.Analytics.CacheTTL,
		CacheMaxEntries: cfg.Analytics.CacheMaxEntries,
		LookbackDays:    cfg.Analytics.LookbackDays,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create analytics service", err)
		os.Exit(1)
	}
	defer analyticsService.Close()

	snapshotJob, err := snapshot.NewJob(snapshot.JobParams{
		Analytics: analyticsService,
		Store:     redisClient,
		Logger:    logg,
		TTL:       cfg.Snapshot.TTL,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create snapshot job", err)
		os.Exit(1)
	}

	lock, err := cron.NewRedisLock(redisClient, redisClient.LockKey("snapshot-worker"), cfg.Snapshot.LockTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create worker lock", err)
		os.Exit(1)
	}

	registry := cron.NewRegistry(snapshotJob)
	service, err := cron.NewService(cron.ServiceParams{
		Logger:   logg,
		Registry: registry,
		Lock:     lock,
		Metrics:  metrics.NewJobMetrics(prometheus.DefaultRegisterer),
		Interval: cfg.Snapshot.Interval,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cron service", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":         cfg.App.Env,
		"serviceKind": cfg.Service.Kind,
	})
	logg.Info(ctx, "starting snapshot worker")

	if err := service.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logg.Error(ctx, "snapshot worker stopped unexpectedly", err)
		os.Exit(1)
	}

	logg.Info(ctx, "snapshot worker shutting down gracefully")
}

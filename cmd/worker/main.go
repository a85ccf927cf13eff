package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/kenemosam/saluni/internal/config"
	"github.com/kenemosam/saluni/internal/repository/postgres"
	"github.com/kenemosam/saluni/pkg/logger"
	"github.com/kenemosam/saluni/pkg/messaging/redis"
	"github.com/kenemosam/saluni/pkg/metrics"
	"github.com/kenemosam/saluni/pkg/worker"
)

func main() {
	cfg, err := config.LoadWorkerConfig()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to load worker configuration")
	}

	appLogger := logger.NewLogger(nil)

	db, err := postgres.NewDBFromURL(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	brokerLogger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	broker, err := redis.NewRedisBroker(redis.Config{
		URL:          cfg.RedisURL,
		MaxRetries:   3,
		RetryBackoff: 100 * time.Millisecond,
		PoolSize:     10,
		MinIdleConns: 2,
	}, &brokerLogger)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer broker.Close()

	outboxRepo := postgres.NewOutboxRepository(db)
	workerMetrics := metrics.NewMetrics("saluni", "worker")

	processor := worker.NewOutboxProcessor(outboxRepo, broker, worker.OutboxProcessorConfig{
		BatchSize:    cfg.BatchSize,
		PollInterval: time.Duration(cfg.PollSeconds) * time.Second,
		RetryLimit:   cfg.RetryLimit,
	}, appLogger, workerMetrics)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go processor.Start(ctx)

	metricsSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.MetricsPort),
		Handler: promhttp.Handler(),
	}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("failed to start metrics server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info().Msg("shutting down worker...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		zlog.Fatal().Err(err).Msg("metrics server forced to shutdown")
	}

	zlog.Info().Msg("worker exited properly")
}

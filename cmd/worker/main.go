package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fhuszti/captions-ms-go/internal/config"
	workerHandler "github.com/fhuszti/captions-ms-go/internal/handler/worker"
	"github.com/fhuszti/captions-ms-go/internal/logger"
	"github.com/fhuszti/captions-ms-go/internal/optimiser"
	"github.com/fhuszti/captions-ms-go/internal/storage"
	"github.com/fhuszti/captions-ms-go/internal/task"
	mediaSvc "github.com/fhuszti/captions-ms-go/internal/usecase/media"
	"github.com/hibiken/asynq"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	if cfg.RedisAddr == "" {
		logger.Error(ctx, "⚠️  REDIS_ADDR must be set to run the worker")
		os.Exit(1)
	}
	if cfg.MinioEndpoint == "" {
		logger.Error(ctx, "⚠️  MINIO_ENDPOINT must be set to run the worker")
		os.Exit(1)
	}

	strg := initStorage(ctx, cfg)

	fo := optimiser.NewOptimiser(optimiser.NewWebPEncoder())
	optimiseSvc := mediaSvc.NewMediaOptimiser(fo, strg)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeOptimiseMedia, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseOptimiseMediaPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.OptimiseMediaHandler(ctx, p, optimiseSvc)
	})

	runWorker(ctx, mux, cfg)
}

func initStorage(ctx context.Context, cfg *config.Settings) *storage.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
		cfg.MinioPublicURL,
		storage.Buckets{Images: cfg.BucketImages, Videos: cfg.BucketVideos},
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	for _, b := range cfg.Buckets() {
		if err := strg.InitBucket(b); err != nil {
			logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", b, err)
			os.Exit(1)
		}
	}

	return strg
}

func runWorker(ctx context.Context, mux *asynq.ServeMux, cfg *config.Settings) {
	srv := asynq.NewServer(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, asynq.Config{Concurrency: 10})

	// Run server in background
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "❌  Worker failed: %v", err)
			os.Exit(1)
		}
	}()
	logger.Info(ctx, "🚀 Worker started")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// Give Asynq up to 30 sec to finish tasks
	done := make(chan struct{})
	go func() {
		srv.Shutdown() // stop accepting new tasks, finish in-flight
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(30 * time.Second):
		logger.Warn(ctx, "⚠️  Worker shutdown timed out")
	}
	logger.Info(ctx, "✅  Worker gracefully stopped")
}

package main

import (
	"context"
	"os"

	"github.com/fhuszti/captions-ms-go/internal/config"
	"github.com/fhuszti/captions-ms-go/internal/db"
	"github.com/fhuszti/captions-ms-go/internal/logger"
	"github.com/fhuszti/captions-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/captions-ms-go/internal/storage"
	"github.com/fhuszti/captions-ms-go/internal/task"
	mediaSvc "github.com/fhuszti/captions-ms-go/internal/usecase/media"
	msuuid "github.com/fhuszti/captions-ms-go/internal/uuid"
)

// optimise-backlog enqueues a WebP optimisation task for every stored image
// record that points at the object store.
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	for key, val := range map[string]string{
		"MARIADB_DSN":    cfg.MariaDBDSN,
		"REDIS_ADDR":     cfg.RedisAddr,
		"MINIO_ENDPOINT": cfg.MinioEndpoint,
	} {
		if val == "" {
			logger.Errorf(ctx, "❌  %s must be set to run the backlog optimisation", key)
			os.Exit(1)
		}
	}

	logger.Info(ctx, "initialising database...")
	database, err := db.New(ctx, cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Warnf(ctx, "DB close error: %v", err)
		}
	}()

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

	dispatcher := task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
	defer func() { _ = dispatcher.Close() }()

	repo := mariadb.NewRecordRepository(database.DB, msuuid.NewUUID)
	backlog := mediaSvc.NewBacklogOptimiser(repo, strg, dispatcher)

	n, err := backlog.OptimiseBacklog(ctx)
	if err != nil {
		logger.Errorf(ctx, "❌  Backlog optimisation failed after %d tasks: %v", n, err)
		os.Exit(1)
	}
	logger.Infof(ctx, "✅  Backlog optimisation completed, %d tasks enqueued", n)
}

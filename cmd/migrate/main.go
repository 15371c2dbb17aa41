package main

import (
	"context"
	"os"
	"strings"

	"github.com/fhuszti/captions-ms-go/internal/config"
	"github.com/fhuszti/captions-ms-go/internal/db"
	"github.com/fhuszti/captions-ms-go/internal/logger"
	"github.com/fhuszti/captions-ms-go/internal/migration"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	if cfg.MariaDBDSN == "" {
		logger.Error(ctx, "❌  MARIADB_DSN must be set to run migrations")
		os.Exit(1)
	}

	database, err := initDb(ctx, cfg)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Warnf(ctx, "DB close error: %v", err)
		}
	}()

	if err := migration.MigrateUp(ctx, database.DB); err != nil {
		logger.Errorf(ctx, "❌  Migration up failed: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "✅  Migrations applied successfully")
}

func initDb(ctx context.Context, cfg *config.Settings) (*db.Database, error) {
	sep := "?"
	if strings.Contains(cfg.MariaDBDSN, "?") {
		sep = "&"
	}
	return db.New(ctx, cfg.MariaDBDSN+sep+"multiStatements=true", cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
}

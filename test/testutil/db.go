package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/fhuszti/captions-ms-go/internal/migration"
	"github.com/go-sql-driver/mysql"
)

type TestDB struct {
	DB      *sql.DB
	Cleanup func() error
}

// SetupTestDB creates a throwaway database next to the one named in
// TEST_DB_DSN. When migrate is true the records schema is applied.
func SetupTestDB(migrate bool) (*TestDB, error) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("TEST_DB_DSN env-var not set")
	}

	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN %q: %w", dsn, err)
	}

	origName := cfg.DBName
	cfg.DBName = ""
	rootDB, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open root DB: %w", err)
	}

	dbName := fmt.Sprintf("%s_%d", origName, time.Now().UnixNano())
	if _, err := rootDB.Exec("CREATE DATABASE " + dbName); err != nil {
		_ = rootDB.Close()
		return nil, err
	}

	dropAll := func() error {
		_, dropErr := rootDB.Exec("DROP DATABASE " + dbName)
		closeErr := rootDB.Close()
		if dropErr != nil {
			return fmt.Errorf("drop database %q: %w", dbName, dropErr)
		}
		return closeErr
	}

	cfg.DBName = dbName
	cfg.ParseTime = true
	cfg.MultiStatements = true
	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		_ = dropAll()
		return nil, fmt.Errorf("open test DB %q: %w", dbName, err)
	}

	if migrate {
		if err := migration.MigrateUp(context.Background(), db); err != nil {
			_ = db.Close()
			_ = dropAll()
			return nil, fmt.Errorf("migrate test DB: %w", err)
		}
	}

	cleanup := func() error {
		if err := db.Close(); err != nil {
			return err
		}
		return dropAll()
	}

	return &TestDB{DB: db, Cleanup: cleanup}, nil
}

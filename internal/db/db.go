package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

const pingTimeout = 5 * time.Second

// Database holds the SQL connection pool.
type Database struct {
	*sql.DB
}

// New creates, configures, and verifies a MySQL connection pool.
// It returns an error if opening or pinging the database fails.
func New(ctx context.Context, dsn string, maxOpen, maxIdle int, connMaxLifetime time.Duration) (*Database, error) {
	dsn, err := normaliseDSN(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// configure pooling
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(connMaxLifetime)

	// verify connectivity
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		// close the connection pool before returning the ping error
		if cErr := db.Close(); cErr != nil {
			return nil, cErr
		}
		return nil, err
	}
	return &Database{db}, nil
}

// normaliseDSN forces parseTime so DATETIME columns scan into time.Time.
func normaliseDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid dsn: %w", err)
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

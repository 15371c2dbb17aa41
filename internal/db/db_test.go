package db

import (
	"context"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
)

// TestNew_PingError ensures that ping failures are propagated
// even when closing the connection succeeds.
func TestNew_PingError(t *testing.T) {
	// Use an unreachable DSN to trigger ping error quickly
	dsn := "invalid:invalid@tcp(127.0.0.1:0)/dbname"
	db, err := New(context.Background(), dsn, 1, 1, time.Second)
	if err == nil {
		if db != nil {
			_ = db.Close()
		}
		t.Fatalf("expected error, got nil")
	}
}

func TestNew_InvalidDSN(t *testing.T) {
	if _, err := New(context.Background(), "::not a dsn::", 1, 1, time.Second); err == nil {
		t.Fatal("expected error for malformed DSN")
	}
}

func TestNormaliseDSN(t *testing.T) {
	tests := map[string]string{
		"plain":            "user:pass@tcp(localhost:3306)/captions",
		"parseTime off":    "user:pass@tcp(localhost:3306)/captions?parseTime=false",
		"multi statements": "user:pass@tcp(localhost:3306)/captions?multiStatements=true",
	}

	for name, dsn := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := normaliseDSN(dsn)
			if err != nil {
				t.Fatalf("normaliseDSN returned error: %v", err)
			}
			cfg, err := mysql.ParseDSN(got)
			if err != nil {
				t.Fatalf("normalised dsn %q does not parse: %v", got, err)
			}
			if !cfg.ParseTime {
				t.Errorf("normalised dsn %q lacks parseTime", got)
			}
			if cfg.User != "user" || cfg.Passwd != "pass" || cfg.Addr != "localhost:3306" || cfg.DBName != "captions" {
				t.Errorf("normalised dsn lost settings: %+v", cfg)
			}
		})
	}

	got, _ := normaliseDSN("user:pass@tcp(localhost:3306)/captions?multiStatements=true")
	if cfg, _ := mysql.ParseDSN(got); !cfg.MultiStatements {
		t.Errorf("multiStatements dropped from %q", got)
	}

	if _, err := normaliseDSN("::not a dsn::"); err == nil {
		t.Error("expected error for malformed DSN")
	}
}

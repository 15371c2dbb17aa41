package integration

import (
	"context"
	"testing"

	"github.com/fhuszti/captions-ms-go/internal/migration"
	"github.com/fhuszti/captions-ms-go/test/testutil"
)

func TestMigrateUpIntegration(t *testing.T) {
	testDB, err := testutil.SetupTestDB(false)
	if err != nil {
		t.Fatalf("setup DB: %v", err)
	}
	defer func() { _ = testDB.Cleanup() }()

	db := testDB.DB
	if err := migration.MigrateUp(context.Background(), db); err != nil {
		t.Fatalf("MigrateUp failed: %v", err)
	}
	// running it twice must be a no-op
	if err := migration.MigrateUp(context.Background(), db); err != nil {
		t.Fatalf("second MigrateUp failed: %v", err)
	}

	recs := 0
	if err := db.QueryRow("SELECT COUNT(*) FROM records").Scan(&recs); err != nil {
		t.Fatalf("failed to query migrated table: %v", err)
	}
	if recs != 0 {
		t.Errorf("expected 0 rows in records after migration, got %d", recs)
	}
}

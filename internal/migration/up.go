package migration

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"github.com/fhuszti/captions-ms-go/internal/logger"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func MigrateUp(ctx context.Context, db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("could not create source driver: %v", err)
	}

	driver, err := mysql.WithInstance(db, &mysql.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %v", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "mysql", driver)
	if err != nil {
		return fmt.Errorf("failed to initialize migration: %v", err)
	}

	err = m.Up()
	if err == nil || errors.Is(err, migrate.ErrNoChange) {
		return nil
	}

	// if it's a dirty error, roll back to the previous version and retry
	var dirtyErr migrate.ErrDirty
	if !errors.As(err, &dirtyErr) {
		return fmt.Errorf("migration up failed: %w", err)
	}

	versions, err := availableVersions(migrationsFS)
	if err != nil {
		return fmt.Errorf("dirty at %d but failed to read migrations directory: %w", dirtyErr.Version, err)
	}
	prev, err := previousVersion(versions, dirtyErr.Version)
	if err != nil {
		return err
	}

	logger.Warnf(ctx, "⚠️  database dirty at version %d, forcing back to %d", dirtyErr.Version, prev)
	if ferr := m.Force(prev); ferr != nil {
		return fmt.Errorf("failed to force to version %d: %w", prev, ferr)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed after force: %w", err)
	}
	return nil
}

// availableVersions lists the versions of the up migrations in fsys, sorted.
func availableVersions(fsys fs.ReadDirFS) ([]int, error) {
	entries, err := fsys.ReadDir("migrations")
	if err != nil {
		return nil, err
	}

	var versions []int
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".up.sql") {
			continue
		}
		// filename format: <version>_<description>.up.sql
		verStr, _, _ := strings.Cut(name, "_")
		v, err := strconv.Atoi(verStr)
		if err != nil {
			continue
		}
		versions = append(versions, v)
	}
	sort.Ints(versions)
	return versions, nil
}

// previousVersion returns the version preceding dirty. Version 1 being dirty
// forces back to -1, which golang-migrate treats as "no migration applied".
func previousVersion(versions []int, dirty int) (int, error) {
	for i, v := range versions {
		if v != dirty {
			continue
		}
		if i == 0 {
			return -1, nil
		}
		return versions[i-1], nil
	}
	return 0, fmt.Errorf("could not determine previous version before %d", dirty)
}

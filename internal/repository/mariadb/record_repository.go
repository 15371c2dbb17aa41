package mariadb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fhuszti/captions-ms-go/internal/logger"
	"github.com/fhuszti/captions-ms-go/internal/model"
	"github.com/fhuszti/captions-ms-go/internal/port"
	"github.com/fhuszti/captions-ms-go/internal/usecase/media"
	"github.com/fhuszti/captions-ms-go/internal/uuid"
)

type RecordRepository struct {
	db    *sql.DB
	newID uuid.Gen
	now   func() time.Time
}

// compile-time check: *RecordRepository must satisfy port.RecordStore
var _ port.RecordStore = (*RecordRepository)(nil)

func NewRecordRepository(db *sql.DB, newID uuid.Gen) *RecordRepository {
	return &RecordRepository{db: db, newID: newID, now: time.Now}
}

func (r *RecordRepository) Insert(ctx context.Context, rec model.NewRecord) (uuid.UUID, error) {
	id := r.newID()
	logger.Infof(ctx, "creating database record #%s for %s %q...", id, rec.MediaType, rec.OriginalFilename)

	const query = `
      INSERT INTO records
        (id, media_url, caption, original_filename, media_type, summary, created_at)
      VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	var summary sql.NullString
	if rec.Summary != nil {
		summary = sql.NullString{String: *rec.Summary, Valid: true}
	}
	_, err := r.db.ExecContext(ctx, query,
		id, rec.MediaURL, rec.Caption,
		rec.OriginalFilename, rec.MediaType,
		summary, r.now().UTC(),
	)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("%w: %w", media.ErrPersistence, err)
	}

	return id, nil
}

// ListAll returns every record, newest first. Insertion order is kept by
// the auto-increment seq column, as created_at may collide.
func (r *RecordRepository) ListAll(ctx context.Context) ([]model.StoredRecord, error) {
	logger.Info(ctx, "fetching all records from the database...")

	const query = `
      SELECT id, media_url, caption, original_filename, media_type, summary, created_at
      FROM records
      ORDER BY seq DESC
    `
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", media.ErrPersistence, err)
	}
	defer func() { _ = rows.Close() }()

	recs := []model.StoredRecord{}
	for rows.Next() {
		var rec model.StoredRecord
		var summary sql.NullString
		if err := rows.Scan(
			&rec.ID, &rec.MediaURL, &rec.Caption,
			&rec.OriginalFilename, &rec.MediaType,
			&summary, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", media.ErrPersistence, err)
		}
		if summary.Valid {
			s := summary.String
			rec.Summary = &s
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", media.ErrPersistence, err)
	}

	return recs, nil
}

// Package memory keeps records in process memory. It is the persistence
// tier used when no database is configured; records die with the process.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/fhuszti/captions-ms-go/internal/model"
	"github.com/fhuszti/captions-ms-go/internal/port"
	"github.com/fhuszti/captions-ms-go/internal/uuid"
)

type RecordRepository struct {
	mu      sync.RWMutex
	records []model.StoredRecord
	newID   uuid.Gen
	now     func() time.Time
}

var _ port.RecordStore = (*RecordRepository)(nil)

func NewRecordRepository(newID uuid.Gen) *RecordRepository {
	return &RecordRepository{newID: newID, now: time.Now}
}

func (r *RecordRepository) Insert(ctx context.Context, rec model.NewRecord) (uuid.UUID, error) {
	stored := model.StoredRecord{
		ID:               r.newID(),
		MediaURL:         rec.MediaURL,
		Caption:          rec.Caption,
		OriginalFilename: rec.OriginalFilename,
		MediaType:        rec.MediaType,
		CreatedAt:        r.now().UTC(),
	}
	if rec.Summary != nil {
		s := *rec.Summary
		stored.Summary = &s
	}

	r.mu.Lock()
	r.records = append(r.records, stored)
	r.mu.Unlock()

	return stored.ID, nil
}

// ListAll returns a snapshot of every record, newest first.
func (r *RecordRepository) ListAll(ctx context.Context) ([]model.StoredRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.StoredRecord, len(r.records))
	for i, rec := range r.records {
		out[len(r.records)-1-i] = rec
	}
	return out, nil
}

package port

import (
	"context"

	"github.com/fhuszti/captions-ms-go/internal/model"
	"github.com/fhuszti/captions-ms-go/internal/uuid"
)

// RecordStore persists pipeline outcomes. ListAll returns records newest-first.
type RecordStore interface {
	Insert(ctx context.Context, rec model.NewRecord) (uuid.UUID, error)
	ListAll(ctx context.Context) ([]model.StoredRecord, error)
}

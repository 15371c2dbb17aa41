package mock

import (
	"context"

	"github.com/fhuszti/captions-ms-go/internal/model"
	"github.com/fhuszti/captions-ms-go/internal/uuid"
)

// RecordStore implements port.RecordStore for tests.
type RecordStore struct {
	// stored values
	IDOut   uuid.UUID
	ListOut []model.StoredRecord

	// captured inputs
	Inserted []model.NewRecord

	// errors
	InsertErr error
	ListErr   error

	// call flags
	ListCalled bool
}

func (m *RecordStore) Insert(ctx context.Context, rec model.NewRecord) (uuid.UUID, error) {
	m.Inserted = append(m.Inserted, rec)
	if m.InsertErr != nil {
		return uuid.UUID{}, m.InsertErr
	}
	if m.IDOut.IsZero() {
		return uuid.NewUUID(), nil
	}
	return m.IDOut, nil
}

func (m *RecordStore) ListAll(ctx context.Context) ([]model.StoredRecord, error) {
	m.ListCalled = true
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}

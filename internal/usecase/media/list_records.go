package media

import (
	"context"
	"fmt"

	"github.com/fhuszti/captions-ms-go/internal/model"
)

// ListRecords returns every stored record, newest first.
func (p *Pipeline) ListRecords(ctx context.Context) ([]model.StoredRecord, error) {
	if !p.persistenceActive() {
		return nil, fmt.Errorf("%w: persistence tier disabled", ErrPersistence)
	}
	recs, err := p.records.ListAll(ctx)
	if err != nil {
		return nil, wrapAs(ErrPersistence, err)
	}
	if recs == nil {
		recs = []model.StoredRecord{}
	}
	return recs, nil
}

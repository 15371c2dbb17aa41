package mock

import (
	"context"

	"github.com/fhuszti/captions-ms-go/internal/port"
)

// HTTPRenderer implements port.HTTPRenderer for tests.
type HTTPRenderer struct {
	// stored values
	ListOut []byte

	// etag values
	EtagList string

	// captured inputs
	Lister port.RecordLister

	// errors
	ListErr error

	// call flags
	ListCalled bool
}

func (m *HTTPRenderer) RenderListRecords(ctx context.Context, lister port.RecordLister) ([]byte, string, error) {
	m.ListCalled = true
	m.Lister = lister
	return m.ListOut, m.EtagList, m.ListErr
}

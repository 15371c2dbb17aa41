package mock

import (
	"context"
	"fmt"

	"github.com/fhuszti/captions-ms-go/internal/model"
	"github.com/fhuszti/captions-ms-go/internal/port"
)

// MediaStore implements port.MediaStore for tests.
type MediaStore struct {
	// captured inputs
	GotData []byte
	GotKind model.MediaType
	GotHint string

	// errors
	UploadErr error

	// call counters
	UploadCalls int
}

func (m *MediaStore) Upload(ctx context.Context, data []byte, kind model.MediaType, hint string) (port.StoredObject, error) {
	m.UploadCalls++
	m.GotData = data
	m.GotKind = kind
	m.GotHint = hint
	if m.UploadErr != nil {
		return port.StoredObject{}, m.UploadErr
	}
	bucket := string(kind) + "s"
	key := fmt.Sprintf("%s_%d", hint, m.UploadCalls)
	return port.StoredObject{
		Bucket: bucket,
		Key:    key,
		URL:    "https://cdn.example.com/" + bucket + "/" + key,
	}, nil
}

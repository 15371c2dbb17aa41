package port

import (
	"context"
	"io"

	"github.com/fhuszti/captions-ms-go/internal/model"
)

// StoredObject locates an uploaded object.
type StoredObject struct {
	Bucket string
	Key    string
	URL    string
}

// MediaStore uploads media to a remote object store. Uploads are not
// idempotent: every call creates a new object.
type MediaStore interface {
	Upload(ctx context.Context, data []byte, kind model.MediaType, hint string) (StoredObject, error)
}

// FileStorage gives the worker raw access to stored objects.
type FileStorage interface {
	GetFile(ctx context.Context, bucket, fileKey string) (io.ReadSeekCloser, error)
	SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error
}

// LocalEncoder turns bytes into a self-contained URI.
type LocalEncoder interface {
	Encode(data []byte, mimeType string) string
}

// SampleAssets serves the pre-stored images used by the mock tier.
type SampleAssets interface {
	Open(name string) ([]byte, error)
}

// ObjectLocator maps a public media URL back to the object it serves.
type ObjectLocator interface {
	LocateObject(url string) (StoredObject, bool)
}

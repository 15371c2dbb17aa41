package port

import (
	"context"
	"time"
)

// Cache keeps the rendered records listing and its ETag.
type Cache interface {
	GetRecordList(ctx context.Context) ([]byte, error)
	GetEtagRecordList(ctx context.Context) (string, error)
	// RecordListGeneration returns the listing generation. Every
	// DeleteRecordList moves it forward.
	RecordListGeneration(ctx context.Context) (int64, error)
	// SetRecordList stores the listing and its ETag, unless the generation
	// moved past gen since the listing was read.
	SetRecordList(ctx context.Context, gen int64, data []byte, etag string, ttl time.Duration)
	DeleteRecordList(ctx context.Context) error
}

package cache

import (
	"context"
	"time"

	"github.com/fhuszti/captions-ms-go/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetRecordList(ctx context.Context) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) GetEtagRecordList(ctx context.Context) (string, error) {
	return "", nil
}

func (n *NoopCache) RecordListGeneration(ctx context.Context) (int64, error) { return 0, nil }

func (n *NoopCache) SetRecordList(ctx context.Context, gen int64, data []byte, etag string, ttl time.Duration) {
}

func (n *NoopCache) DeleteRecordList(ctx context.Context) error { return nil }

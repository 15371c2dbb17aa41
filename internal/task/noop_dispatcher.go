package task

import (
	"context"

	"github.com/fhuszti/captions-ms-go/internal/port"
)

type NoopDispatcher struct{}

var _ port.TaskDispatcher = (*NoopDispatcher)(nil)

func NewNoopDispatcher() *NoopDispatcher { return &NoopDispatcher{} }

func (d *NoopDispatcher) EnqueueOptimiseMedia(ctx context.Context, bucket, objectKey string) error {
	return nil
}

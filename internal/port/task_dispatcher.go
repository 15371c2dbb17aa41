package port

import "context"

// TaskDispatcher enqueues asynchronous work on uploaded media.
type TaskDispatcher interface {
	EnqueueOptimiseMedia(ctx context.Context, bucket, objectKey string) error
}

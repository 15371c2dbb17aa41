package port

import "context"

// InferenceProvider wraps a captioning model and an image-synthesis model.
// Availability is fixed when the provider is loaded; a failed call does not
// change it.
type InferenceProvider interface {
	Available() bool
	Caption(ctx context.Context, image []byte) (string, error)
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

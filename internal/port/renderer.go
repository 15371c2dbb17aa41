package port

import "context"

// HTTPRenderer mediates between HTTP handlers and the record lister.
// It returns the JSON listing together with an ETag derived from it.
type HTTPRenderer interface {
	// RenderListRecords returns the cached listing and its ETag if available or
	// runs the lister and caches the output otherwise.
	RenderListRecords(ctx context.Context, lister RecordLister) ([]byte, string, error)
}

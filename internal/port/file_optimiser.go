package port

import "io"

// FileOptimiser compresses stored images.
type FileOptimiser interface {
	Compress(mimeType string, r io.Reader) (io.ReadCloser, string, error)
}

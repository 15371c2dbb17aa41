package optimiser

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/fhuszti/captions-ms-go/internal/logger"
	"github.com/fhuszti/captions-ms-go/internal/port"
)

const webpQuality = 80

type Optimiser struct {
	webpEnc WebPEncoder
}

// compile-time check: *Optimiser must satisfy port.FileOptimiser
var _ port.FileOptimiser = (*Optimiser)(nil)

func NewOptimiser(webpEnc WebPEncoder) *Optimiser {
	logger.Info(context.Background(), "initialising optimiser...")
	return &Optimiser{webpEnc: webpEnc}
}

// Compress re-encodes images as lossy WebP and returns the new stream with
// its mime type. Other content is passed through unchanged.
func (o *Optimiser) Compress(mimeType string, r io.Reader) (io.ReadCloser, string, error) {
	switch mimeType {
	case "image/jpeg", "image/png", "image/webp", "image/gif", "image/bmp", "image/tiff":
		img, _, err := o.webpEnc.Decode(r)
		if err != nil {
			return nil, "", fmt.Errorf("optimiser: failed to decode image: %w", err)
		}

		buf := &bytes.Buffer{}
		if err := o.webpEnc.Encode(img, webpQuality, buf); err != nil {
			return nil, "", fmt.Errorf("optimiser: failed to encode WebP: %w", err)
		}
		return io.NopCloser(buf), "image/webp", nil

	default:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, "", fmt.Errorf("optimiser: failed to read data: %w", err)
		}
		return io.NopCloser(bytes.NewReader(data)), mimeType, nil
	}
}

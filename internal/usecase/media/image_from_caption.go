package media

import (
	"context"
	"fmt"
	"strings"

	"github.com/fhuszti/captions-ms-go/internal/logger"
	"github.com/fhuszti/captions-ms-go/internal/model"
	"github.com/fhuszti/captions-ms-go/internal/port"
)

const generatedImageHint = "generated.png"

// ImageFromCaption synthesizes an image for the caption, or picks a sample
// image by keyword when synthesis is not possible.
func (p *Pipeline) ImageFromCaption(ctx context.Context, in port.CaptionRequest) (port.MediaResult, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return port.MediaResult{}, ErrNoCaption
	}

	data, hint, err := p.generateImage(ctx, text)
	if err != nil {
		return port.MediaResult{}, err
	}
	mimeType := detectMimeType(data, hint)

	mediaURL, err := p.storeMedia(ctx, data, model.MediaTypeImage, hint, mimeType, true)
	if err != nil {
		return port.MediaResult{}, fmt.Errorf("%w: %w", ErrGenerationUnavailable, err)
	}

	id := p.persist(ctx, model.NewRecord{
		MediaURL:         mediaURL,
		Caption:          text,
		OriginalFilename: hint,
		MediaType:        model.MediaTypeImage,
	})

	return port.MediaResult{
		Caption:  text,
		MediaURL: mediaURL,
		RecordID: id,
	}, nil
}

// generateImage returns the image bytes and a file name hint for them.
func (p *Pipeline) generateImage(ctx context.Context, text string) ([]byte, string, error) {
	if p.inferenceActive() {
		data, err := p.inference.Synthesize(ctx, text)
		if err == nil && len(data) > 0 {
			return data, generatedImageHint, nil
		}
		if err == nil {
			err = wrapAs(ErrInference, errEmptyOutput)
		}
		logger.Warnf(ctx, "⚠️  image synthesis fell back to sample assets: %v", err)
	}

	if p.samples == nil {
		return nil, "", fmt.Errorf("%w: no sample assets configured", ErrGenerationUnavailable)
	}
	_, name := p.catalog.SampleImage(text)
	data, err := p.samples.Open(name)
	if err != nil {
		return nil, "", fmt.Errorf("%w: sample %q: %w", ErrGenerationUnavailable, name, err)
	}
	return data, name, nil
}

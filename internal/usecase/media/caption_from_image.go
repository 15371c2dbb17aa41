package media

import (
	"context"
	"strings"

	"github.com/fhuszti/captions-ms-go/internal/logger"
	"github.com/fhuszti/captions-ms-go/internal/model"
	"github.com/fhuszti/captions-ms-go/internal/port"
)

// CaptionFromImage captions an uploaded image, stores it and records the
// outcome. Only input errors are returned while inline fallback is on.
func (p *Pipeline) CaptionFromImage(ctx context.Context, in port.MediaRequest) (port.MediaResult, error) {
	if len(in.Data) == 0 || strings.TrimSpace(in.OriginalName) == "" {
		return port.MediaResult{}, ErrNoImage
	}
	if !isDecodableImage(in.Data) {
		return port.MediaResult{}, ErrInvalidImage
	}
	mimeType := detectMimeType(in.Data, in.OriginalName)

	caption := p.captionImage(ctx, in)

	mediaURL, err := p.storeMedia(ctx, in.Data, model.MediaTypeImage, in.OriginalName, mimeType, true)
	if err != nil {
		return port.MediaResult{}, err
	}

	id := p.persist(ctx, model.NewRecord{
		MediaURL:         mediaURL,
		Caption:          caption,
		OriginalFilename: in.OriginalName,
		MediaType:        model.MediaTypeImage,
	})

	return port.MediaResult{
		Caption:  caption,
		MediaURL: mediaURL,
		RecordID: id,
	}, nil
}

func (p *Pipeline) captionImage(ctx context.Context, in port.MediaRequest) string {
	if p.inferenceActive() {
		caption, err := p.inference.Caption(ctx, in.Data)
		if err == nil && strings.TrimSpace(caption) != "" {
			return strings.TrimSpace(caption)
		}
		if err == nil {
			err = wrapAs(ErrInference, errEmptyOutput)
		}
		logger.Warnf(ctx, "⚠️  captioning %q fell back to keyword table: %v", in.OriginalName, err)
	}

	_, caption := p.catalog.Caption(in.OriginalName)
	return caption
}

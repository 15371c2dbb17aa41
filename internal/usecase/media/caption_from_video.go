package media

import (
	"context"
	"strings"

	"github.com/fhuszti/captions-ms-go/internal/model"
	"github.com/fhuszti/captions-ms-go/internal/port"
)

// CaptionFromVideo captions and summarises an uploaded video by its file
// name. Videos are never inlined, so a failed upload is returned.
func (p *Pipeline) CaptionFromVideo(ctx context.Context, in port.MediaRequest) (port.MediaResult, error) {
	if len(in.Data) == 0 || strings.TrimSpace(in.OriginalName) == "" {
		return port.MediaResult{}, ErrNoVideo
	}

	category, caption := p.catalog.Caption(in.OriginalName)
	summary := p.catalog.Summary(category)
	_, animatedURL, _ := p.catalog.AnimatedVideo(in.OriginalName)

	mediaURL, err := p.storeMedia(ctx, in.Data, model.MediaTypeVideo, in.OriginalName, detectMimeType(in.Data, in.OriginalName), false)
	if err != nil {
		return port.MediaResult{}, err
	}

	id := p.persist(ctx, model.NewRecord{
		MediaURL:         mediaURL,
		Caption:          caption,
		OriginalFilename: in.OriginalName,
		MediaType:        model.MediaTypeVideo,
		Summary:          &summary,
	})

	return port.MediaResult{
		Caption:     caption,
		Summary:     summary,
		MediaURL:    mediaURL,
		RecordID:    id,
		AnimatedURL: animatedURL,
	}, nil
}

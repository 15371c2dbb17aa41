package media

import (
	"context"
	"fmt"
	"strings"

	"github.com/fhuszti/captions-ms-go/internal/model"
	"github.com/fhuszti/captions-ms-go/internal/port"
)

// AnimatedVideo picks a stock animated video matching the caption and style.
func (p *Pipeline) AnimatedVideo(ctx context.Context, in port.CaptionRequest) (port.AnimatedVideoResult, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return port.AnimatedVideoResult{}, ErrNoCaption
	}

	query := text
	if style := strings.TrimSpace(in.Style); style != "" {
		query += " " + style
	}
	category, videoURL, ok := p.catalog.AnimatedVideo(query)
	if !ok {
		return port.AnimatedVideoResult{}, fmt.Errorf("%w: no animated video for %q", ErrGenerationUnavailable, category)
	}

	id := p.persist(ctx, model.NewRecord{
		MediaURL:         videoURL,
		Caption:          text,
		OriginalFilename: "",
		MediaType:        model.MediaTypeVideo,
	})

	return port.AnimatedVideoResult{
		VideoURL: videoURL,
		RecordID: id,
	}, nil
}

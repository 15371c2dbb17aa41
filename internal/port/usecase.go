package port

import (
	"context"

	"github.com/fhuszti/captions-ms-go/internal/model"
	"github.com/fhuszti/captions-ms-go/internal/uuid"
)

// MediaRequest is an uploaded image or video, alive for a single call.
type MediaRequest struct {
	Kind         model.MediaType
	Data         []byte
	OriginalName string
	ContentType  string
}

// CaptionRequest is a caption text with an optional style hint.
type CaptionRequest struct {
	Text  string
	Style string
}

// MediaResult is built once per request and never mutated afterwards.
type MediaResult struct {
	Caption     string     `json:"caption"`
	Summary     string     `json:"summary,omitempty"`
	MediaURL    string     `json:"media_url"`
	RecordID    *uuid.UUID `json:"record_id"`
	AnimatedURL string     `json:"animated_url,omitempty"`
}

type AnimatedVideoResult struct {
	VideoURL string     `json:"video_url"`
	RecordID *uuid.UUID `json:"record_id"`
}

// ImageCaptioner captions an uploaded image.
type ImageCaptioner interface {
	CaptionFromImage(ctx context.Context, in MediaRequest) (MediaResult, error)
}

// ImageGenerator produces an image for a caption.
type ImageGenerator interface {
	ImageFromCaption(ctx context.Context, in CaptionRequest) (MediaResult, error)
}

// VideoCaptioner captions and summarises an uploaded video.
type VideoCaptioner interface {
	CaptionFromVideo(ctx context.Context, in MediaRequest) (MediaResult, error)
}

// AnimatedVideoPicker resolves an animated video for a caption.
type AnimatedVideoPicker interface {
	AnimatedVideo(ctx context.Context, in CaptionRequest) (AnimatedVideoResult, error)
}

// RecordLister lists stored records, newest first.
type RecordLister interface {
	ListRecords(ctx context.Context) ([]model.StoredRecord, error)
}

// MediaOptimiser re-encodes an uploaded image and stores the variant.
type MediaOptimiser interface {
	OptimiseMedia(ctx context.Context, in OptimiseMediaInput) error
}
type OptimiseMediaInput struct {
	Bucket    string
	ObjectKey string
}

package mock

import (
	"context"

	"github.com/fhuszti/captions-ms-go/internal/model"
	"github.com/fhuszti/captions-ms-go/internal/port"
)

// Pipeline implements the captioning use cases for handler tests.
type Pipeline struct {
	// stored values
	MediaOut    port.MediaResult
	AnimatedOut port.AnimatedVideoResult
	RecordsOut  []model.StoredRecord

	// captured inputs
	GotMedia   port.MediaRequest
	GotCaption port.CaptionRequest

	// errors
	Err error

	// call flags
	Called bool
}

func (m *Pipeline) CaptionFromImage(ctx context.Context, in port.MediaRequest) (port.MediaResult, error) {
	m.Called = true
	m.GotMedia = in
	return m.MediaOut, m.Err
}

func (m *Pipeline) ImageFromCaption(ctx context.Context, in port.CaptionRequest) (port.MediaResult, error) {
	m.Called = true
	m.GotCaption = in
	return m.MediaOut, m.Err
}

func (m *Pipeline) CaptionFromVideo(ctx context.Context, in port.MediaRequest) (port.MediaResult, error) {
	m.Called = true
	m.GotMedia = in
	return m.MediaOut, m.Err
}

func (m *Pipeline) AnimatedVideo(ctx context.Context, in port.CaptionRequest) (port.AnimatedVideoResult, error) {
	m.Called = true
	m.GotCaption = in
	return m.AnimatedOut, m.Err
}

func (m *Pipeline) ListRecords(ctx context.Context) ([]model.StoredRecord, error) {
	m.Called = true
	return m.RecordsOut, m.Err
}

// MediaOptimiser implements port.MediaOptimiser for tests.
type MediaOptimiser struct {
	Err error

	Called bool
	In     port.OptimiseMediaInput
}

func (m *MediaOptimiser) OptimiseMedia(ctx context.Context, in port.OptimiseMediaInput) error {
	m.Called = true
	m.In = in
	return m.Err
}

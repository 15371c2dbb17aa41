// Package inference adapts the captioning and image synthesis models behind
// a single provider whose availability is decided once at startup.
package inference

import (
	"context"
	"errors"
	"fmt"

	"github.com/fhuszti/captions-ms-go/internal/logger"
	"github.com/fhuszti/captions-ms-go/internal/port"
	"github.com/fhuszti/captions-ms-go/internal/usecase/media"
)

type Captioner interface {
	Check(ctx context.Context) error
	Caption(ctx context.Context, image []byte) (string, error)
}

type Synthesizer interface {
	Check(ctx context.Context) error
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type Provider struct {
	captioner   Captioner
	synthesizer Synthesizer
	available   bool
}

var _ port.InferenceProvider = (*Provider)(nil)

// Load checks both models. The provider is available only when both answer;
// otherwise the pipeline never calls it.
func Load(ctx context.Context, c Captioner, s Synthesizer) *Provider {
	p := &Provider{captioner: c, synthesizer: s}

	if c == nil || s == nil {
		logger.Warn(ctx, "⚠️  Inference models not configured, using keyword captions and sample images")
		return p
	}
	if err := errors.Join(c.Check(ctx), s.Check(ctx)); err != nil {
		logger.Warnf(ctx, "⚠️  Inference models unavailable, using keyword captions and sample images: %v", err)
		return p
	}

	p.available = true
	logger.Info(ctx, "✅  Inference models loaded")
	return p
}

func (p *Provider) Available() bool {
	return p != nil && p.available
}

func (p *Provider) Caption(ctx context.Context, image []byte) (string, error) {
	if !p.Available() {
		return "", media.ErrModelUnavailable
	}
	caption, err := p.captioner.Caption(ctx, image)
	if err != nil {
		return "", tagInference(err)
	}
	return caption, nil
}

func (p *Provider) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if !p.Available() {
		return nil, media.ErrModelUnavailable
	}
	img, err := p.synthesizer.Synthesize(ctx, text)
	if err != nil {
		return nil, tagInference(err)
	}
	return img, nil
}

func tagInference(err error) error {
	if errors.Is(err, media.ErrInference) || errors.Is(err, media.ErrModelUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", media.ErrInference, err)
}

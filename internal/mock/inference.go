package mock

import (
	"context"
	"sync"
)

// Inference implements port.InferenceProvider for tests.
type Inference struct {
	mu sync.Mutex

	// stored values
	AvailableOut  bool
	CaptionOut    string
	SynthesizeOut []byte

	// captured inputs
	GotImage []byte
	GotText  string

	// errors
	CaptionErr    error
	SynthesizeErr error

	// call counters
	CaptionCalls    int
	SynthesizeCalls int
}

func (m *Inference) Available() bool {
	return m.AvailableOut
}

func (m *Inference) Caption(ctx context.Context, image []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CaptionCalls++
	m.GotImage = image
	if m.CaptionErr != nil {
		return "", m.CaptionErr
	}
	return m.CaptionOut, nil
}

func (m *Inference) Synthesize(ctx context.Context, text string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SynthesizeCalls++
	m.GotText = text
	if m.SynthesizeErr != nil {
		return nil, m.SynthesizeErr
	}
	return m.SynthesizeOut, nil
}

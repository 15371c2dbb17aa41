package inference

import (
	"context"
	"errors"
	"testing"

	"github.com/fhuszti/captions-ms-go/internal/usecase/media"
	"github.com/ollama/ollama/api"
)

type fakeOllama struct {
	chunks  []string
	genErr  error
	showErr error

	gotReq *api.GenerateRequest
}

func (f *fakeOllama) Generate(ctx context.Context, req *api.GenerateRequest, fn api.GenerateResponseFunc) error {
	f.gotReq = req
	if f.genErr != nil {
		return f.genErr
	}
	for _, c := range f.chunks {
		if err := fn(api.GenerateResponse{Response: c}); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeOllama) Show(ctx context.Context, req *api.ShowRequest) (*api.ShowResponse, error) {
	if f.showErr != nil {
		return nil, f.showErr
	}
	return &api.ShowResponse{}, nil
}

func TestOllamaCaptioner_Caption(t *testing.T) {
	fake := &fakeOllama{chunks: []string{" A dog ", "in a field. "}}
	c := &OllamaCaptioner{client: fake, model: "llava"}

	got, err := c.Caption(context.Background(), []byte("img"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "A dog in a field." {
		t.Errorf("caption = %q", got)
	}
	if fake.gotReq.Model != "llava" || len(fake.gotReq.Images) != 1 || string(fake.gotReq.Images[0]) != "img" {
		t.Errorf("request = %+v", fake.gotReq)
	}
	if fake.gotReq.Stream == nil || *fake.gotReq.Stream {
		t.Error("streaming should be disabled")
	}
}

func TestOllamaCaptioner_Errors(t *testing.T) {
	tests := []struct {
		name string
		fake *fakeOllama
	}{
		{"generate error", &fakeOllama{genErr: errors.New("connection refused")}},
		{"empty output", &fakeOllama{chunks: []string{"  "}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := &OllamaCaptioner{client: tc.fake, model: "llava"}
			if _, err := c.Caption(context.Background(), []byte("img")); !errors.Is(err, media.ErrInference) {
				t.Errorf("err = %v; want ErrInference", err)
			}
		})
	}
}

func TestOllamaCaptioner_Check(t *testing.T) {
	ok := &OllamaCaptioner{client: &fakeOllama{}, model: "llava"}
	if err := ok.Check(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	missing := &OllamaCaptioner{client: &fakeOllama{showErr: errors.New("model not found")}, model: "llava"}
	if err := missing.Check(context.Background()); !errors.Is(err, media.ErrModelUnavailable) {
		t.Errorf("err = %v; want ErrModelUnavailable", err)
	}
}

func TestNewOllamaCaptioner(t *testing.T) {
	if _, err := NewOllamaCaptioner("http://localhost:11434", "llava", nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := NewOllamaCaptioner("://bad", "llava", nil); err == nil {
		t.Error("expected error for invalid host")
	}
}

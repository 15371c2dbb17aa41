package inference

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/fhuszti/captions-ms-go/internal/usecase/media"
	"github.com/ollama/ollama/api"
)

const captionPrompt = "Describe this image in one short sentence suitable as a caption."

type ollamaClient interface {
	Generate(ctx context.Context, req *api.GenerateRequest, fn api.GenerateResponseFunc) error
	Show(ctx context.Context, req *api.ShowRequest) (*api.ShowResponse, error)
}

// OllamaCaptioner captions images with a vision model served by Ollama.
type OllamaCaptioner struct {
	client ollamaClient
	model  string
}

func NewOllamaCaptioner(host, model string, httpClient *http.Client) (*OllamaCaptioner, error) {
	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &OllamaCaptioner{client: api.NewClient(base, httpClient), model: model}, nil
}

// Check verifies that the model is installed.
func (c *OllamaCaptioner) Check(ctx context.Context) error {
	if _, err := c.client.Show(ctx, &api.ShowRequest{Model: c.model}); err != nil {
		return fmt.Errorf("%w: %s: %w", media.ErrModelUnavailable, c.model, err)
	}
	return nil
}

func (c *OllamaCaptioner) Caption(ctx context.Context, image []byte) (string, error) {
	stream := false
	req := &api.GenerateRequest{
		Model:  c.model,
		Prompt: captionPrompt,
		Images: []api.ImageData{image},
		Stream: &stream,
	}

	var sb strings.Builder
	err := c.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		sb.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", media.ErrInference, err)
	}

	caption := strings.TrimSpace(sb.String())
	if caption == "" {
		return "", fmt.Errorf("%w: empty caption from %s", media.ErrInference, c.model)
	}
	return caption, nil
}

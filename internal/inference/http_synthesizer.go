package inference

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fhuszti/captions-ms-go/internal/usecase/media"
)

// HTTPSynthesizer generates images through a Stable Diffusion web API
// exposing /sdapi/v1/txt2img.
type HTTPSynthesizer struct {
	httpClient *http.Client
	baseURL    string
	model      string
}

func NewHTTPSynthesizer(baseURL, model string, httpClient *http.Client) *HTTPSynthesizer {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	return &HTTPSynthesizer{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
	}
}

type txt2imgRequest struct {
	Prompt   string            `json:"prompt"`
	Steps    int               `json:"steps"`
	Width    int               `json:"width"`
	Height   int               `json:"height"`
	Override map[string]string `json:"override_settings,omitempty"`
}

type txt2imgResponse struct {
	Images []string `json:"images"`
	Error  string   `json:"error"`
	Detail string   `json:"detail"`
}

// Check verifies that the server answers.
func (s *HTTPSynthesizer) Check(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/sdapi/v1/sd-models", nil)
	if err != nil {
		return fmt.Errorf("%w: %w", media.ErrModelUnavailable, err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", media.ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: synthesizer http %d", media.ErrModelUnavailable, resp.StatusCode)
	}
	return nil
}

func (s *HTTPSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	payload := txt2imgRequest{Prompt: text, Steps: 20, Width: 512, Height: 512}
	if s.model != "" {
		payload.Override = map[string]string{"sd_model_checkpoint": s.model}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/sdapi/v1/txt2img", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", media.ErrInference, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", media.ErrInference, err)
	}
	defer resp.Body.Close()

	var out txt2imgResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("%w: synthesizer http %d", media.ErrInference, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: %w", media.ErrInference, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		msg := out.Error
		if msg == "" {
			msg = out.Detail
		}
		return nil, fmt.Errorf("%w: synthesizer http %d: %s", media.ErrInference, resp.StatusCode, msg)
	}
	if len(out.Images) == 0 || out.Images[0] == "" {
		return nil, fmt.Errorf("%w: synthesizer returned no image", media.ErrInference)
	}

	// some servers prefix the payload with a data URI header
	encoded := out.Images[0]
	if _, after, ok := strings.Cut(encoded, ";base64,"); ok {
		encoded = after
	}
	img, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid image payload: %w", media.ErrInference, err)
	}
	return img, nil
}

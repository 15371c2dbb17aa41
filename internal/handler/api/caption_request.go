package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fhuszti/captions-ms-go/internal/logger"
	"github.com/fhuszti/captions-ms-go/internal/port"
	"github.com/fhuszti/captions-ms-go/internal/validation"
)

type CaptionRequest struct {
	Caption string `json:"caption" validate:"max=1000"`
	Style   string `json:"style" validate:"omitempty,max=64,style"`
}

// decodeCaptionRequest writes the error response itself and reports whether
// the handler may continue.
func decodeCaptionRequest(w http.ResponseWriter, r *http.Request) (port.CaptionRequest, bool) {
	var req CaptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeUseCaseError(w, r, "", err)
		} else {
			writeError(r.Context(), w, http.StatusBadRequest, "invalid request payload", err)
		}
		return port.CaptionRequest{}, false
	}

	if errs := validation.ValidateStruct(req); errs != nil {
		errsJSON, err := validation.ErrorsToJson(errs)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "failed to encode validation errors", err)
			return port.CaptionRequest{}, false
		}
		RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
		logger.Errorf(r.Context(), "❌  Validation failed: %s", errsJSON)
		return port.CaptionRequest{}, false
	}

	return port.CaptionRequest{Text: req.Caption, Style: req.Style}, true
}

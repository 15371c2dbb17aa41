package api

import (
	"errors"
	"net/http"

	"github.com/fhuszti/captions-ms-go/internal/usecase/media"
)

// writeUseCaseError translates a pipeline error into a status and message.
func writeUseCaseError(w http.ResponseWriter, r *http.Request, fallbackMsg string, err error) {
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		writeError(r.Context(), w, http.StatusRequestEntityTooLarge, "File is too large", err)
	case errors.Is(err, media.ErrNoImage):
		writeError(r.Context(), w, http.StatusBadRequest, "No image provided", nil)
	case errors.Is(err, media.ErrInvalidImage):
		writeError(r.Context(), w, http.StatusBadRequest, "File is not a supported image", nil)
	case errors.Is(err, media.ErrNoCaption):
		writeError(r.Context(), w, http.StatusBadRequest, "No caption provided", nil)
	case errors.Is(err, media.ErrNoVideo):
		writeError(r.Context(), w, http.StatusBadRequest, "No video provided", nil)
	case errors.Is(err, media.ErrInvalidInput):
		writeError(r.Context(), w, http.StatusBadRequest, "Invalid input", err)
	case errors.Is(err, media.ErrGenerationUnavailable):
		writeError(r.Context(), w, http.StatusServiceUnavailable, "Generation is currently unavailable", err)
	case errors.Is(err, media.ErrUpload):
		writeError(r.Context(), w, http.StatusBadGateway, "Could not store media", err)
	case errors.Is(err, media.ErrPersistence):
		writeError(r.Context(), w, http.StatusServiceUnavailable, "Records are currently unavailable", err)
	default:
		writeError(r.Context(), w, http.StatusInternalServerError, fallbackMsg, err)
	}
}

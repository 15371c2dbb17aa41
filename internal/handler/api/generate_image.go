package api

import (
	"net/http"

	"github.com/fhuszti/captions-ms-go/internal/logger"
	"github.com/fhuszti/captions-ms-go/internal/port"
)

func GenerateImageHandler(svc port.ImageGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeCaptionRequest(w, r)
		if !ok {
			return
		}

		out, err := svc.ImageFromCaption(r.Context(), in)
		if err != nil {
			writeUseCaseError(w, r, "could not generate image", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully generated image for caption %q", in.Text)
	}
}

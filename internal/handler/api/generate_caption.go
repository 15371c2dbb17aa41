package api

import (
	"net/http"

	"github.com/fhuszti/captions-ms-go/internal/logger"
	"github.com/fhuszti/captions-ms-go/internal/model"
	"github.com/fhuszti/captions-ms-go/internal/port"
)

// GenerateCaptionHandler captions the image sent in the "image" form field.
func GenerateCaptionHandler(svc port.ImageCaptioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := readUpload(r, "image", model.MediaTypeImage)
		if err != nil {
			writeUseCaseError(w, r, "could not read uploaded image", err)
			return
		}

		out, err := svc.CaptionFromImage(r.Context(), in)
		if err != nil {
			writeUseCaseError(w, r, "could not caption image", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully captioned image %q", in.OriginalName)
	}
}

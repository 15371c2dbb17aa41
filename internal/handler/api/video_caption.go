package api

import (
	"net/http"

	"github.com/fhuszti/captions-ms-go/internal/logger"
	"github.com/fhuszti/captions-ms-go/internal/model"
	"github.com/fhuszti/captions-ms-go/internal/port"
)

// VideoCaptionHandler captions and summarises the video sent in the "video"
// form field.
func VideoCaptionHandler(svc port.VideoCaptioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := readUpload(r, "video", model.MediaTypeVideo)
		if err != nil {
			writeUseCaseError(w, r, "could not read uploaded video", err)
			return
		}

		out, err := svc.CaptionFromVideo(r.Context(), in)
		if err != nil {
			writeUseCaseError(w, r, "could not caption video", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully captioned video %q", in.OriginalName)
	}
}

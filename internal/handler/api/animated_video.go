package api

import (
	"net/http"

	"github.com/fhuszti/captions-ms-go/internal/logger"
	"github.com/fhuszti/captions-ms-go/internal/port"
)

func AnimatedVideoHandler(svc port.AnimatedVideoPicker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeCaptionRequest(w, r)
		if !ok {
			return
		}

		out, err := svc.AnimatedVideo(r.Context(), in)
		if err != nil {
			writeUseCaseError(w, r, "could not pick animated video", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully picked animated video for caption %q", in.Text)
	}
}

package api

import (
	"net/http"

	"github.com/fhuszti/captions-ms-go/internal/logger"
	"github.com/fhuszti/captions-ms-go/internal/port"
)

func ListRecordsHandler(renderer port.HTTPRenderer, svc port.RecordLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, etag, err := renderer.RenderListRecords(r.Context(), svc)
		if err != nil {
			writeUseCaseError(w, r, "could not list records", err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "no-cache")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			logger.Info(r.Context(), "✅  Returning cached records listing")
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		logger.Info(r.Context(), "✅  Successfully returned records listing")
	}
}

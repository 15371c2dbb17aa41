package middleware

import (
	"net/http"

	"github.com/fhuszti/captions-ms-go/internal/api_context"
	"github.com/go-chi/chi/v5/middleware"
)

// WithRequestID exposes chi's request id to the logger. It must run after
// chi's RequestID middleware.
func WithRequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := middleware.GetReqID(r.Context())
			if id == "" {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Set(middleware.RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(api_context.WithRequestID(r.Context(), id)))
		})
	}
}

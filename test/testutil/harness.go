package testutil

import (
	"net/http/httptest"
	"time"

	"github.com/fhuszti/captions-ms-go/internal/handler/api"
	cMiddleware "github.com/fhuszti/captions-ms-go/internal/middleware"
	"github.com/fhuszti/captions-ms-go/internal/port"
	"github.com/fhuszti/captions-ms-go/internal/renderer"
	mediaSvc "github.com/fhuszti/captions-ms-go/internal/usecase/media"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewAPIServer serves the pipeline behind the same routes as cmd/api.
func NewAPIServer(pipeline *mediaSvc.Pipeline, cache port.Cache, maxUpload int64) *httptest.Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(cMiddleware.WithRequestID())
	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	rendererSvc := renderer.NewHTTPRenderer(cache, time.Minute)
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", api.HealthHandler(pipeline))
		r.Group(func(r chi.Router) {
			r.Use(cMiddleware.WithMaxBodySize(maxUpload))
			r.Post("/generate-caption", api.GenerateCaptionHandler(pipeline))
			r.Post("/generate-image", api.GenerateImageHandler(pipeline))
			r.Post("/video-caption", api.VideoCaptionHandler(pipeline))
			r.Post("/animated-video", api.AnimatedVideoHandler(pipeline))
			r.Get("/records", api.ListRecordsHandler(rendererSvc, pipeline))
		})
	})

	return httptest.NewServer(r)
}

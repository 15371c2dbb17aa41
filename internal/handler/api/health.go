package api

import (
	"net/http"

	"github.com/fhuszti/captions-ms-go/internal/usecase/media"
)

// TierReporter exposes which degradation tiers are currently live.
type TierReporter interface {
	ActiveTiers() media.Tiers
}

type HealthResponse struct {
	Status string          `json:"status"`
	Tiers  map[string]bool `json:"tiers"`
}

func HealthHandler(reporter TierReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := reporter.ActiveTiers()
		RespondJSON(w, http.StatusOK, HealthResponse{
			Status: "ok",
			Tiers: map[string]bool{
				"inference":       t.Inference,
				"upload":          t.Upload,
				"inline_fallback": t.InlineFallback,
				"persistence":     t.Persistence,
			},
		})
	}
}

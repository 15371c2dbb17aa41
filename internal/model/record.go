package model

import (
	"time"

	"github.com/fhuszti/captions-ms-go/internal/uuid"
)

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// StoredRecord is a persisted pipeline outcome. Records are never updated.
type StoredRecord struct {
	ID               uuid.UUID `json:"id"`
	MediaURL         string    `json:"media_url"`
	Caption          string    `json:"caption"`
	OriginalFilename string    `json:"original_filename"`
	MediaType        MediaType `json:"media_type"`
	Summary          *string   `json:"summary,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewRecord holds the fields a caller supplies on insert; the store assigns
// the id and creation time.
type NewRecord struct {
	MediaURL         string
	Caption          string
	OriginalFilename string
	MediaType        MediaType
	Summary          *string
}

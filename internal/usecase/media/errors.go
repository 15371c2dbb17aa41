package media

import (
	"errors"
	"fmt"
)

// Input errors are rejected before any tier runs.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoImage      = fmt.Errorf("%w: no image provided", ErrInvalidInput)
	ErrInvalidImage = fmt.Errorf("%w: file is not a supported image", ErrInvalidInput)
	ErrNoCaption    = fmt.Errorf("%w: no caption provided", ErrInvalidInput)
	ErrNoVideo      = fmt.Errorf("%w: no video provided", ErrInvalidInput)
)

// Capability errors move the pipeline to its next tier.
var (
	ErrModelUnavailable = errors.New("inference: model unavailable")
	ErrInference        = errors.New("inference: call failed")
	ErrUpload           = errors.New("storage: upload failed")
	ErrPersistence      = errors.New("records: persistence failed")
)

var errEmptyOutput = errors.New("empty output")

// ErrGenerationUnavailable is terminal: no tier could produce media.
var ErrGenerationUnavailable = errors.New("generation unavailable")

// Storage errors reported by object store adapters.
var (
	ErrObjectNotFound = errors.New("storage: object not found")
	ErrBucketNotFound = errors.New("storage: bucket not found")
	ErrUnauthorized   = errors.New("storage: unauthorized")
	ErrInternal       = errors.New("storage: internal error")
)

// wrapAs tags err with sentinel unless it already carries it.
func wrapAs(sentinel, err error) error {
	if err == nil || errors.Is(err, sentinel) {
		return err
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

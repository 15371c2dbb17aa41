package worker

import (
	"context"
	"fmt"

	"github.com/fhuszti/captions-ms-go/internal/logger"
	"github.com/fhuszti/captions-ms-go/internal/port"
	"github.com/fhuszti/captions-ms-go/internal/task"
)

// OptimiseMediaHandler handles an optimise-media task.
// It converts the incoming task payload to the input expected by
// the media optimiser and delegates the call.
func OptimiseMediaHandler(ctx context.Context, p task.OptimiseMediaPayload, svc port.MediaOptimiser) error {
	if p.Bucket == "" || p.ObjectKey == "" {
		err := fmt.Errorf("invalid payload: bucket and object key are required")
		logger.Errorf(ctx, "❌  %v", err)
		return err
	}

	in := port.OptimiseMediaInput{Bucket: p.Bucket, ObjectKey: p.ObjectKey}
	if err := svc.OptimiseMedia(ctx, in); err != nil {
		logger.Errorf(ctx, "❌  Failed to optimise %s/%s: %v", p.Bucket, p.ObjectKey, err)
		return err
	}

	logger.Infof(ctx, "✅  Successfully optimised %s/%s", p.Bucket, p.ObjectKey)
	return nil
}

package media

import (
	"context"
	"fmt"
	"strings"

	"github.com/fhuszti/captions-ms-go/internal/logger"
	"github.com/fhuszti/captions-ms-go/internal/model"
	"github.com/fhuszti/captions-ms-go/internal/port"
)

// optimisedPrefix is the key prefix of variants written by the optimiser.
const optimisedPrefix = "optimised/"

type BacklogOptimiser struct {
	records port.RecordStore
	locator port.ObjectLocator
	tasks   port.TaskDispatcher
}

func NewBacklogOptimiser(records port.RecordStore, locator port.ObjectLocator, tasks port.TaskDispatcher) *BacklogOptimiser {
	return &BacklogOptimiser{records: records, locator: locator, tasks: tasks}
}

// OptimiseBacklog re-enqueues optimisation for every stored image record
// whose media lives in the object store. Inline data URIs are skipped.
// It returns how many tasks were enqueued.
func (b *BacklogOptimiser) OptimiseBacklog(ctx context.Context) (int, error) {
	recs, err := b.records.ListAll(ctx)
	if err != nil {
		return 0, wrapAs(ErrPersistence, err)
	}

	enqueued := 0
	for _, rec := range recs {
		if rec.MediaType != model.MediaTypeImage {
			continue
		}
		obj, ok := b.locator.LocateObject(rec.MediaURL)
		if !ok || strings.HasPrefix(obj.Key, optimisedPrefix) {
			continue
		}
		if err := b.tasks.EnqueueOptimiseMedia(ctx, obj.Bucket, obj.Key); err != nil {
			return enqueued, fmt.Errorf("enqueue optimisation of record #%s: %w", rec.ID, err)
		}
		enqueued++
		logger.Infof(ctx, "✅  Enqueued optimisation of %s/%s", obj.Bucket, obj.Key)
	}
	return enqueued, nil
}

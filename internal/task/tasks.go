package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypeOptimiseMedia = "media:optimise"

type OptimiseMediaPayload struct {
	Bucket    string `json:"bucket"`
	ObjectKey string `json:"object_key"`
}

// NewOptimiseMediaTask creates an Asynq task for optimising a stored image.
func NewOptimiseMediaTask(bucket, objectKey string) (*asynq.Task, error) {
	p := OptimiseMediaPayload{Bucket: bucket, ObjectKey: objectKey}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal optimise-media payload: %w", err)
	}
	return asynq.NewTask(TypeOptimiseMedia, data, asynq.MaxRetry(3)), nil
}

// ParseOptimiseMediaPayload parses the task payload to OptimiseMediaPayload.
func ParseOptimiseMediaPayload(t *asynq.Task) (OptimiseMediaPayload, error) {
	var p OptimiseMediaPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return OptimiseMediaPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	if p.Bucket == "" || p.ObjectKey == "" {
		return OptimiseMediaPayload{}, fmt.Errorf("payload is missing bucket or object key")
	}
	return p, nil
}

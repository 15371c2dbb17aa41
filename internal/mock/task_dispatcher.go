package mock

import "context"

// Dispatcher implements port.TaskDispatcher for tests.
type Dispatcher struct {
	OptimiseCalled bool
	OptimiseKeys   []string
	OptimiseErr    error
}

func (m *Dispatcher) EnqueueOptimiseMedia(ctx context.Context, bucket, objectKey string) error {
	m.OptimiseCalled = true
	m.OptimiseKeys = append(m.OptimiseKeys, bucket+"/"+objectKey)
	return m.OptimiseErr
}

package testutil

import (
	"context"

	workerHandler "github.com/fhuszti/captions-ms-go/internal/handler/worker"
	"github.com/fhuszti/captions-ms-go/internal/logger"
	"github.com/fhuszti/captions-ms-go/internal/optimiser"
	"github.com/fhuszti/captions-ms-go/internal/storage"
	"github.com/fhuszti/captions-ms-go/internal/task"
	mediaSvc "github.com/fhuszti/captions-ms-go/internal/usecase/media"
	"github.com/hibiken/asynq"
)

// StartWorker starts an asynq worker processing optimisation tasks.
// It returns a function to gracefully shut down the worker.
func StartWorker(strg *storage.Storage, redisAddr string) func() {
	fo := optimiser.NewOptimiser(optimiser.NewWebPEncoder())
	optimiseSvc := mediaSvc.NewMediaOptimiser(fo, strg)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeOptimiseMedia, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseOptimiseMediaPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.OptimiseMediaHandler(ctx, p, optimiseSvc)
	})

	srv := asynq.NewServer(asynq.RedisClientOpt{Addr: redisAddr}, asynq.Config{Concurrency: 5})
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "worker stopped: %v", err)
		}
	}()

	return func() {
		srv.Shutdown()
	}
}

package workers

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

// New returns a group of workers.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Add appends worker to the group. It must not be called while Run is active.
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

// Run starts all workers and blocks until every one has returned. The first
// worker to return cancels the rest. A context.Canceled coming from that
// shutdown is not an error.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	gctx, cancel := context.WithCancel(gctx)
	defer cancel()

	for _, worker := range w.workers {
		g.Go(func() error {
			defer cancel()

			err := worker.Run(gctx)
			if errors.Is(err, context.Canceled) && gctx.Err() != nil {
				return nil
			}
			return err
		})
	}

	return g.Wait()
}

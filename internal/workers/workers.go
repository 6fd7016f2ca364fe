package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker concurrently and waits for all of them. The first
// failure cancels the others.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}
	return g.Wait()
}

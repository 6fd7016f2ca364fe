// Package workers runs the gateway's background maintenance jobs.
//
// It defines the Worker interface and a Workers aggregate that runs every
// registered worker until the shared context is cancelled.
package workers

import "context"

// Worker is a long-running background job.
//
// Run blocks until ctx is cancelled or the worker fails. A cancelled context
// is a normal stop and must return nil.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

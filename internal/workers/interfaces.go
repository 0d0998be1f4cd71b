// Package workers runs the long-lived goroutines of the client process as
// one group.
//
// Every worker gets the same context. When any worker returns, with or
// without an error, the context is cancelled so the others stop too; the
// group then reports the first real error.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Run blocks until the work is done or ctx is cancelled.
//
// Example implementation:
//
//	type pump struct{ events <-chan Event }
//
//	func (p *pump) Run(ctx context.Context) error {
//	    for {
//	        select {
//	        case <-ctx.Done():
//	            return ctx.Err()
//	        case ev := <-p.events:
//	            handle(ev)
//	        }
//	    }
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts an ordinary function to [Worker].
type WorkerFunc func(ctx context.Context) error

// Run calls f(ctx).
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}

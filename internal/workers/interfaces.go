// Package workers runs the long-lived background loops of the server, such
// as the collaboration relay subscription and the health probe, under one
// shared lifetime.
package workers

import "context"

// Worker is a background loop. Run blocks until ctx is done or the loop
// fails; a nil return after ctx is done is a clean stop.
type Worker interface {
	Run(ctx context.Context) error
}

// Func adapts a function to [Worker].
type Func func(ctx context.Context) error

func (f Func) Run(ctx context.Context) error { return f(ctx) }

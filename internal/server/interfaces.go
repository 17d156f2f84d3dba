package server

import "context"

// Server defines the lifecycle contract of the transport servers managed by
// this package.
type Server interface {
	// RunServer serves until a stop signal arrives or a transport fails.
	RunServer() error

	// Shutdown gracefully stops the server within ctx.
	Shutdown(ctx context.Context)
}

// runner is a single transport started by [server].
type runner interface {
	// serve blocks until the transport stops; a graceful stop returns nil.
	serve() error
	shutdown(ctx context.Context)
}

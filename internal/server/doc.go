// Package server wires and runs the inventory hub's transport servers.
//
// It owns the HTTP and gRPC lifecycles together with the background workers:
// startup, signal handling, and graceful shutdown of everything enabled.
package server

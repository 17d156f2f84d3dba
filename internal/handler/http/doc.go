// Package http implements the REST and WebSocket transport of the inventory
// hub.
//
// It exposes route wiring, request handlers, and middleware. Authentication,
// per-inventory authorization, request tracing, access logging, and response
// compression are handled in this package before requests are delegated to
// the service layer.
package http

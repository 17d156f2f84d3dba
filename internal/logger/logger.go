// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the inventory hub server and client.
//
// Every entry carries the process role, a timestamp and the calling
// function in the "func" field. HTTP middlewares enrich the request logger
// with trace_id, principal_id and inventory_id, so code below the handlers
// logs through [FromContext] and gets those fields for free.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ClientLogFile is created next to the client executable.
const ClientLogFile = "logs"

type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger writes to [ClientLogFile] beside the executable, keeping
// stdout free for the interactive prompt. It falls back to stderr when the
// file cannot be opened.
func NewClientLogger(role string) *Logger {
	var out io.Writer = os.Stderr

	execPath, err := os.Executable()
	if err == nil {
		logPath := filepath.Join(filepath.Dir(execPath), ClientLogFile)
		if f, openErr := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); openErr == nil {
			out = f
		}
	}

	return newLogger(out, role)
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// Nop discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithTraceID returns a child logger tagged with trace_id. The receiver is
// not modified.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str("trace_id", traceID).Logger()}
}

// WithPrincipalID returns ctx whose logger is tagged with principal_id.
func WithPrincipalID(ctx context.Context, principalID string) context.Context {
	return with(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("principal_id", principalID)
	})
}

// WithInventoryID returns ctx whose logger is tagged with inventory_id.
func WithInventoryID(ctx context.Context, inventoryID int64) context.Context {
	return with(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Int64("inventory_id", inventoryID)
	})
}

func with(ctx context.Context, fields func(zerolog.Context) zerolog.Context) context.Context {
	child := fields(log.Ctx(ctx).With()).Logger()
	return child.WithContext(ctx)
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. Without one zerolog's
// default context logger is returned, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

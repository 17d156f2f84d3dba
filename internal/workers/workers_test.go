// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-inventory-hub/internal/logger"
)

func waitForCancel(started *atomic.Int32) Func {
	return func(ctx context.Context) error {
		started.Add(1)
		<-ctx.Done()
		return nil
	}
}

func TestWorkers_RunUntilCancelled(t *testing.T) {
	var started atomic.Int32
	ws := NewWorkers(logger.Nop())
	ws.Add("relay", waitForCancel(&started))
	ws.Add("health", waitForCancel(&started))
	ws.Add("skipped", nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	require.Eventually(t, func() bool { return started.Load() == 2 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("workers did not stop")
	}
}

func TestWorkers_FailureCancelsOthers(t *testing.T) {
	errRelay := errors.New("redis: connection refused")
	var started atomic.Int32

	ws := NewWorkers(logger.Nop())
	ws.Add("health", waitForCancel(&started))
	ws.Add("relay", Func(func(context.Context) error { return errRelay }))

	err := ws.Run(context.Background())

	require.ErrorIs(t, err, errRelay)
	assert.Contains(t, err.Error(), "worker relay")
}

func TestWorkers_Empty(t *testing.T) {
	assert.NoError(t, NewWorkers(logger.Nop()).Run(context.Background()))
}

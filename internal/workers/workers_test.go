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
)

// blockingWorker runs until its context is cancelled.
type blockingWorker struct {
	started atomic.Bool
	stopped atomic.Bool
}

func (b *blockingWorker) Run(ctx context.Context) error {
	b.started.Store(true)
	<-ctx.Done()
	b.stopped.Store(true)
	return ctx.Err()
}

func runWithTimeout(t *testing.T, ctx context.Context, ws *Workers) error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("workers did not stop")
		return nil
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, New().Run(context.Background()))
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	assert.NoError(t, ws.Run(context.Background()))
}

func TestWorkers_Run_CleanExitStopsOthers(t *testing.T) {
	bg := &blockingWorker{}
	ui := WorkerFunc(func(ctx context.Context) error { return nil })

	err := runWithTimeout(t, context.Background(), New(bg, ui))

	require.NoError(t, err)
	assert.True(t, bg.stopped.Load())
}

func TestWorkers_Run_FirstErrorWins(t *testing.T) {
	boom := errors.New("boom")
	bg := &blockingWorker{}
	failing := WorkerFunc(func(ctx context.Context) error { return boom })

	err := runWithTimeout(t, context.Background(), New(bg, failing))

	assert.ErrorIs(t, err, boom)
	assert.True(t, bg.stopped.Load())
}

func TestWorkers_Run_ParentCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	a, b := &blockingWorker{}, &blockingWorker{}

	go func() {
		for !a.started.Load() || !b.started.Load() {
			time.Sleep(time.Millisecond)
		}
		cancel()
	}()

	err := runWithTimeout(t, ctx, New(a, b))

	assert.NoError(t, err)
	assert.True(t, a.stopped.Load())
	assert.True(t, b.stopped.Load())
}

func TestWorkers_Add(t *testing.T) {
	var calls atomic.Int32
	ws := New()
	for range 3 {
		ws.Add(WorkerFunc(func(ctx context.Context) error {
			calls.Add(1)
			return nil
		}))
	}

	require.NoError(t, ws.Run(context.Background()))
	assert.Equal(t, int32(3), calls.Load())
}

func TestWorkers_Run_DeadlineIsAnError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := runWithTimeout(t, ctx, New(&blockingWorker{}))

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

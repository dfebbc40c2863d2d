// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingWorker is a test implementation of the Worker interface
// that tracks how many times Run was called and blocks until cancelled.
type countingWorker struct {
	runCount atomic.Int32
}

func (m *countingWorker) Run(ctx context.Context) error {
	m.runCount.Add(1)
	<-ctx.Done()
	return nil
}

// failingWorker returns err immediately.
type failingWorker struct {
	err error
}

func (f *failingWorker) Run(context.Context) error {
	return f.err
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}
	ws := NewWorkers(w1, w2)
	ws.Add(w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	require.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("workers did not stop after cancellation")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	// Should return immediately when nothing is registered
	assert.NoError(t, ws.Run(context.Background()))
}

func TestWorkers_Run_ErrorStopsOthers(t *testing.T) {
	boom := errors.New("boom")
	blocking := &countingWorker{}
	ws := NewWorkers(blocking, &failingWorker{err: boom})

	var wg sync.WaitGroup
	wg.Add(1)
	var err error
	go func() {
		defer wg.Done()
		err = ws.Run(context.Background())
	}()
	wg.Wait()

	assert.ErrorIs(t, err, boom)
}

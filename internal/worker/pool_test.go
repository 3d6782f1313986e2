package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/taskfarm/internal/testing/leaktest"
)

const testQueueSize = 10

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool_RunsEnqueuedJobs(t *testing.T) {
	var executed int32
	pool := NewPool(2, testQueueSize)
	pool.Start()
	defer pool.Stop()

	job := &testJob{executed: &executed}
	for range 5 {
		assert.True(t, pool.Enqueue(job))
	}

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == 5
	}, time.Second, 5*time.Millisecond)
}

func TestPool_CancelsInFlightJobsOnStop(t *testing.T) {
	pool := NewPool(1, testQueueSize)
	pool.Start()

	started := make(chan struct{})
	var cancelled atomic.Bool
	pool.Enqueue(JobFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		cancelled.Store(true)
		return ctx.Err()
	}))

	<-started
	pool.Stop()
	assert.True(t, cancelled.Load())
}

func TestPool_SurvivesFailingAndPanickingJobs(t *testing.T) {
	var executed int32
	pool := NewPool(1, testQueueSize)
	pool.Start()
	defer pool.Stop()

	pool.Enqueue(JobFunc(func(context.Context) error { return errors.New("boom") }))
	pool.Enqueue(JobFunc(func(context.Context) error { panic("kaboom") }))
	pool.Enqueue(&testJob{executed: &executed})

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestPool_TryEnqueueWhenFull(t *testing.T) {
	pool := NewPool(1, 1)
	// not started: nothing drains the queue
	var executed int32
	assert.True(t, pool.TryEnqueue(&testJob{executed: &executed}))
	assert.False(t, pool.TryEnqueue(&testJob{executed: &executed}))
	pool.Stop()
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	pool := NewPool(1, 0)
	pool.Start()
	pool.Stop()
	pool.Stop()

	var executed int32
	assert.False(t, pool.Enqueue(&testJob{executed: &executed}))
}

func TestPool_StopReleasesWorkers(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		var executed int32
		pool := NewPool(4, testQueueSize)
		pool.Start()
		for range 8 {
			pool.Enqueue(&testJob{executed: &executed})
		}
		pool.Stop()
	})
}

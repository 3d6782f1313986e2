// Package scheduler hands recurring jobs (session ticks, event log cleanup)
// to the worker pool on fixed intervals.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/taskfarm/internal/logger"
	"github.com/osse101/taskfarm/internal/metrics"
	"github.com/osse101/taskfarm/internal/worker"
)

// Enqueuer is the part of worker.Pool the scheduler needs
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// Scheduler owns one ticker goroutine per scheduled job
type Scheduler struct {
	pool   Enqueuer
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a scheduler feeding pool
func New(pool Enqueuer) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{pool: pool, ctx: ctx, cancel: cancel}
}

// Schedule hands job to the pool every interval until Stop. name labels the
// job in logs and metrics.
//
// A run that finds the queue full is skipped rather than retried: the next
// session tick credits the whole elapsed time anyway.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	runs := metrics.ScheduledRuns.WithLabelValues(name)
	skipped := metrics.ScheduledRunsSkipped.WithLabelValues(name)
	log := logger.FromContext(s.ctx).With(LogFieldJob, name)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		log.Debug(LogMsgJobScheduled, LogFieldInterval, interval)
		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				if s.pool.TryEnqueue(job) {
					runs.Inc()
					continue
				}
				skipped.Inc()
				log.Debug(LogMsgRunSkipped)
			}
		}
	}()
}

// Stop halts every ticker and waits for the goroutines to exit. Jobs already
// queued in the pool still run. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}

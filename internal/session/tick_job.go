package session

import (
	"context"
	"time"

	"github.com/osse101/taskfarm/internal/farm"
	"github.com/osse101/taskfarm/internal/logger"
	"github.com/osse101/taskfarm/internal/metrics"
)

// TickJob advances the simulation clock of every live session once per run
type TickJob struct {
	manager *Manager
}

// NewTickJob creates a tick job over manager
func NewTickJob(manager *Manager) *TickJob {
	return &TickJob{manager: manager}
}

// Process implements worker.Job
func (j *TickJob) Process(ctx context.Context) error {
	start := time.Now()
	count := 0
	j.manager.ForEach(func(s *farm.Session) {
		if ctx.Err() != nil {
			return
		}
		s.Clock().Advance(ctx)
		count++
	})

	elapsed := time.Since(start)
	metrics.TicksTotal.Inc()
	metrics.TickDuration.Observe(elapsed.Seconds())
	logger.FromContext(ctx).Debug(LogMsgTickPass, "sessions", count, "elapsed", elapsed)
	return ctx.Err()
}

package eventlog

import (
	"context"
	"time"

	"github.com/osse101/taskfarm/internal/logger"
	"github.com/osse101/taskfarm/internal/metrics"
)

// CleanupJob prunes audit events past the retention window. The scheduler
// runs it through the worker pool.
type CleanupJob struct {
	service       Service
	retentionDays int
}

func NewCleanupJob(service Service, retentionDays int) *CleanupJob {
	return &CleanupJob{service: service, retentionDays: retentionDays}
}

// Process runs one cleanup pass
func (j *CleanupJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx).With(LogFieldRetentionDays, j.retentionDays)
	start := time.Now()

	deleted, err := j.service.CleanupOldEvents(ctx, j.retentionDays)
	if err != nil {
		metrics.EventLogCleanupRuns.WithLabelValues(metrics.StatusFailure).Inc()
		log.Error(LogMsgCleanupJobFailed, LogFieldError, err, LogFieldDuration, time.Since(start))
		return err
	}

	metrics.EventLogCleanupRuns.WithLabelValues(metrics.StatusSuccess).Inc()
	metrics.EventLogPruned.Add(float64(deleted))
	log.Info(LogMsgCleanupJobCompleted, LogFieldDeletedCount, deleted, LogFieldDuration, time.Since(start))
	return nil
}

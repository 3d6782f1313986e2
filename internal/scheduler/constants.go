package scheduler

// Log messages
const (
	LogMsgJobScheduled = "Job scheduled"
	LogMsgRunSkipped   = "Worker queue full, scheduled run skipped"
)

// Log field keys
const (
	LogFieldJob      = "job"
	LogFieldInterval = "interval"
)

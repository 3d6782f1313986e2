package worker

// Log messages
const (
	LogMsgWorkerJobFailed = "Background job failed"
	LogMsgWorkerJobPanic  = "Background job panicked"
	LogMsgWorkerPoolStart = "Worker pool started"
	LogMsgWorkerPoolStop  = "Worker pool stopped"
	LogMsgWorkerQueueFull = "Worker queue full, job rejected"
)

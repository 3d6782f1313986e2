package event

// EventSchemaVersion is bumped when a payload changes shape
const EventSchemaVersion = "1.1"

// MetadataKeySessionID routes an event to one farm's subscribers
const MetadataKeySessionID = "session_id"

// ErrMsgHandlersFailedFmt wraps the joined handler errors of one publish
const ErrMsgHandlersFailedFmt = "event %s: %d handler(s) failed: %w"

// Retry defaults
const (
	// RetryQueueBufferSize bounds deliveries waiting for a retry
	RetryQueueBufferSize = 1000
)

// Dead-letter file format
const (
	// DeadLetterSchemaVersion is bumped when DeadLetterEntry changes shape
	DeadLetterSchemaVersion   = "1.0"
	DeadLetterFilePermissions = 0o644
)

// Error messages
const (
	ErrMsgOpenDeadLetter     = "failed to open dead-letter file"
	ErrMsgNegativeRetriesFmt = "max retries must not be negative, got %d"
)

// Log messages
const (
	LogMsgEventPublishFailed    = "Event handler failed, queuing for retry"
	LogMsgRetryQueueFull        = "Retry queue full, event sent to dead-letter"
	LogMsgEventRetryExhausted   = "Event retry exhausted, writing to dead-letter"
	LogMsgEventRetryFailed      = "Event retry failed"
	LogMsgEventRetrySucceeded   = "Event retry succeeded"
	LogMsgEventDroppedShutdown  = "Publisher shutting down, event sent to dead-letter"
	LogMsgQueueDrainedShutdown  = "Drained retry queue during shutdown"
	LogMsgShutdownTimeout       = "Resilient publisher shutdown timed out"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead-letter file"
)

// Log field keys
const (
	LogFieldEventType = "event_type"
	LogFieldAttempt   = "attempt"
	LogFieldAttempts  = "attempts"
	LogFieldRetries   = "retries"
)

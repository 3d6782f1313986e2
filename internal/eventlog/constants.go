package eventlog

import "errors"

// ErrInvalidRetention is returned for a retention window shorter than one day
var ErrInvalidRetention = errors.New("retention must be at least one day")

// JSON field keys
const (
	PayloadKeySessionID   = "session_id"
	MetadataKeyOccurredAt = "occurred_at"
)

// Query defaults
const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// Log messages - service events
const (
	LogMsgEventPayloadNotMap = "Event payload could not be flattened, skipping log"
	LogMsgFailedToLogEvent   = "Failed to log event"
	LogMsgEventLogged        = "Event logged"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldType          = "type"
	LogFieldSessionID     = "session_id"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retentionDays"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deletedCount"
)

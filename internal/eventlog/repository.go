package eventlog

import (
	"context"
	"time"
)

// Entry is a farm event flattened for storage
type Entry struct {
	EventType string
	SessionID *string
	Payload   map[string]interface{}
	Metadata  map[string]interface{}
}

// Event is a stored Entry with its id and insert time
type Event struct {
	ID        int64                  `json:"id"`
	EventType string                 `json:"event_type"`
	SessionID *string                `json:"session_id,omitempty"`
	Payload   map[string]interface{} `json:"payload"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// EventFilter narrows a Query. Nil fields match everything; Since and Until are inclusive.
type EventFilter struct {
	SessionID *string
	EventType *string
	Since     *time.Time
	Until     *time.Time
	Limit     int
}

// Repository is the audit trail store. Query returns newest first.
type Repository interface {
	Append(ctx context.Context, entry Entry) error
	Query(ctx context.Context, filter EventFilter) ([]Event, error)
	// Prune deletes events created strictly before cutoff and reports how many went
	Prune(ctx context.Context, cutoff time.Time) (int64, error)
}

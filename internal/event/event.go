// Package event carries farm notifications from a Session to its
// subscribers: metrics, the audit log and the SSE stream.
package event

import (
	"encoding/json"
	"time"
)

// Type names an event, e.g. "farm.plot.ready"
type Type string

// Metadata holds routing attributes that are not part of the payload
type Metadata map[string]interface{}

// Event is what the bus delivers. Payload is one of the domain.*Payload
// structs when published in process.
type Event struct {
	Version    string      `json:"version"`
	Type       Type        `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
	Metadata   Metadata    `json:"metadata"`
}

// SessionID returns the farm session the event belongs to, or "" if none
func (e Event) SessionID() string {
	id, _ := e.Metadata[MetadataKeySessionID].(string)
	return id
}

// DecodePayload returns the payload as T. A payload of another shape, such
// as a map read back from storage, is converted through JSON.
func DecodePayload[T any](payload interface{}) (T, error) {
	if v, ok := payload.(T); ok {
		return v, nil
	}
	var out T
	data, err := json.Marshal(payload)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(data, &out)
	return out, err
}

// PayloadMap flattens a payload into its JSON object form for storage
func PayloadMap(payload interface{}) (map[string]interface{}, error) {
	return DecodePayload[map[string]interface{}](payload)
}

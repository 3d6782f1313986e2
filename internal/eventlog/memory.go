package eventlog

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository keeps the event log in process memory.
// It is used when no database is configured. Events live in a ring of
// capacity slots; once full, each append overwrites the oldest.
type MemoryRepository struct {
	mu       sync.RWMutex
	events   []Event
	head     int // slot of the oldest event
	nextID   int64
	capacity int
	now      func() time.Time
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository creates an in-memory log keeping at most capacity events
func NewMemoryRepository(capacity int) *MemoryRepository {
	if capacity <= 0 {
		capacity = MaxLimit * 10
	}
	return &MemoryRepository{capacity: capacity, now: time.Now}
}

// Append stores entry, dropping the oldest event once full
func (r *MemoryRepository) Append(_ context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	evt := Event{
		ID:        r.nextID,
		EventType: entry.EventType,
		Payload:   entry.Payload,
		Metadata:  entry.Metadata,
		CreatedAt: r.now(),
	}
	if entry.SessionID != nil {
		sid := *entry.SessionID
		evt.SessionID = &sid
	}

	if len(r.events) < r.capacity {
		r.events = append(r.events, evt)
		return nil
	}
	r.events[r.head] = evt
	r.head = (r.head + 1) % r.capacity
	return nil
}

// at returns the i-th oldest event
func (r *MemoryRepository) at(i int) Event {
	return r.events[(r.head+i)%len(r.events)]
}

// Query walks from the newest event back, so the result is newest first
// without sorting. Insert times never decrease.
func (r *MemoryRepository) Query(_ context.Context, filter EventFilter) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Event
	for i := len(r.events) - 1; i >= 0; i-- {
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
		if evt := r.at(i); filter.matches(evt) {
			out = append(out, evt)
		}
	}
	return out, nil
}

func (f EventFilter) matches(evt Event) bool {
	switch {
	case f.SessionID != nil && (evt.SessionID == nil || *evt.SessionID != *f.SessionID):
		return false
	case f.EventType != nil && evt.EventType != *f.EventType:
		return false
	case f.Since != nil && evt.CreatedAt.Before(*f.Since):
		return false
	case f.Until != nil && evt.CreatedAt.After(*f.Until):
		return false
	}
	return true
}

// Prune drops events created before cutoff
func (r *MemoryRepository) Prune(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]Event, 0, len(r.events))
	for i := range r.events {
		if evt := r.at(i); !evt.CreatedAt.Before(cutoff) {
			kept = append(kept, evt)
		}
	}
	pruned := int64(len(r.events) - len(kept))
	r.events = kept
	r.head = 0
	return pruned, nil
}

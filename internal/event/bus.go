package event

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/taskfarm/internal/domain"
)

// Handler reacts to one event. Errors are reported back to the publisher.
type Handler func(ctx context.Context, event Event) error

// Bus routes events to the handlers subscribed to their type
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus dispatches synchronously on the publisher's goroutine
type MemoryBus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewMemoryBus returns an empty bus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[Type][]Handler)}
}

// Publish runs every handler for event.Type in subscription order, even after
// one fails. The failures come back joined.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf(ErrMsgHandlersFailedFmt, event.Type, len(errs), errors.Join(errs...))
	}
	return nil
}

// Subscribe adds handler for eventType
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	// copy on write so Publish can range over its snapshot unlocked
	hs := make([]Handler, len(b.handlers[eventType]), len(b.handlers[eventType])+1)
	copy(hs, b.handlers[eventType])
	b.handlers[eventType] = append(hs, handler)
}

// SubscribeAll subscribes handler to every farm event type
func SubscribeAll(bus Bus, handler Handler) {
	for _, t := range domain.AllFarmEventTypes {
		bus.Subscribe(Type(t), handler)
	}
}

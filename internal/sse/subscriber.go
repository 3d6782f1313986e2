package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/taskfarm/internal/domain"
	"github.com/osse101/taskfarm/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe forwards every farm event to connected clients
func (s *Subscriber) Subscribe() {
	event.SubscribeAll(s.bus, s.handleFarmEvent)
	slog.Info(LogMsgSubscriberRegistered, "types", domain.AllFarmEventTypes)
}

// handleFarmEvent relays the typed payload unchanged; the hub never blocks the publisher
func (s *Subscriber) handleFarmEvent(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.SessionID(), evt.Payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "session_id", evt.SessionID())
	return nil
}

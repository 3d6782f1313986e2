package sse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/taskfarm/internal/metrics"
)

// Event is one message on the stream. Timestamp is unix milliseconds.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	SessionID string      `json:"session_id,omitempty"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

func newEvent(eventType, sessionID string, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SessionID: sessionID,
		Timestamp: time.Now().UnixMilli(),
		Payload:   payload,
	}
}

// Client is one connected dashboard. EventChannel is closed when the client
// is unregistered or the hub stops.
type Client struct {
	ID           string
	EventChannel chan Event
	EventFilter  map[string]bool // nil accepts every type
	SessionID    string          // empty accepts every session

	dropped atomic.Uint64
}

// Dropped counts events skipped because the client fell behind
func (c *Client) Dropped() uint64 { return c.dropped.Load() }

func (c *Client) wants(evt Event) bool {
	if c.EventFilter != nil && !c.EventFilter[evt.Type] {
		return false
	}
	return c.SessionID == "" || c.SessionID == evt.SessionID
}

// Hub fans farm events out to SSE clients. Publishers hand events to a
// buffered queue; a single loop delivers them so a slow client never blocks
// the engine.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	stopped bool

	queue    chan Event
	shutdown chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewHub() *Hub {
	return &Hub{
		clients:  make(map[string]*Client),
		queue:    make(chan Event, BroadcastBufferSize),
		shutdown: make(chan struct{}),
	}
}

// Start launches the delivery loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends delivery and closes every client channel. Safe to call twice.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		h.stopped = true
		for id, c := range h.clients {
			close(c.EventChannel)
			delete(h.clients, id)
		}
		h.mu.Unlock()
		metrics.SSEClientsConnected.Set(0)
	})
}

func (h *Hub) run() {
	defer h.wg.Done()
	for {
		select {
		case evt := <-h.queue:
			h.deliver(evt)
		case <-h.shutdown:
			return
		}
	}
}

func (h *Hub) deliver(evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		if !c.wants(evt) {
			continue
		}
		select {
		case c.EventChannel <- evt:
		default:
			c.dropped.Add(1)
		}
	}
}

// Register adds a client. eventTypes restricts delivery to those types and
// sessionID to one farm. After Stop the returned client's channel is already closed.
func (h *Hub) Register(eventTypes []string, sessionID string) *Client {
	c := &Client{
		ID:           uuid.NewString(),
		EventChannel: make(chan Event, ClientEventBuffer),
		SessionID:    sessionID,
	}
	for _, t := range eventTypes {
		if t = strings.TrimSpace(t); t != "" {
			if c.EventFilter == nil {
				c.EventFilter = make(map[string]bool)
			}
			c.EventFilter[t] = true
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		close(c.EventChannel)
		return c
	}
	h.clients[c.ID] = c
	metrics.SSEClientsConnected.Set(float64(len(h.clients)))
	return c
}

// Unregister removes a client and closes its channel
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.clients[clientID]
	if !ok {
		return
	}
	close(c.EventChannel)
	delete(h.clients, clientID)
	metrics.SSEClientsConnected.Set(float64(len(h.clients)))
}

// Broadcast queues an event for every interested client without blocking
func (h *Hub) Broadcast(eventType, sessionID string, payload interface{}) {
	select {
	case h.queue <- newEvent(eventType, sessionID, payload):
	default:
		slog.Warn(LogMsgBroadcastDropped, "type", eventType, "session_id", sessionID)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders evt in text/event-stream framing
func FormatSSEMessage(evt Event) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeEvent(&buf, evt); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeEvent(w io.Writer, evt Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	if evt.ID != "" {
		if _, err := fmt.Fprintf(w, "id: %s\n", evt.ID); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", evt.Type, data)
	return err
}

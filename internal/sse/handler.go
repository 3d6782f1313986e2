package sse

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Handler streams hub events to one HTTP client.
// ?types=a,b filters by event type and ?session=<id> by farm session.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, ErrMsgStreamingUnsupported, http.StatusInternalServerError)
			return
		}

		q := r.URL.Query()
		var eventTypes []string
		if types := q.Get(QueryParamTypes); types != "" {
			eventTypes = strings.Split(types, ",")
		}
		sessionID := q.Get(QueryParamSession)

		h := w.Header()
		h.Set("Content-Type", "text/event-stream")
		h.Set("Cache-Control", "no-cache")
		h.Set("Connection", "keep-alive")

		client := hub.Register(eventTypes, sessionID)
		log := slog.With("client_id", client.ID, "session_id", sessionID)
		log.Info(LogMsgClientConnected, "filters", eventTypes)
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "dropped", client.Dropped())
		}()

		send := func(evt Event) bool {
			if err := writeEvent(w, evt); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}

		connected := newEvent(EventTypeConnected, sessionID, map[string]interface{}{
			"client_id": client.ID,
			"filters":   eventTypes,
		})
		connected.ID = client.ID
		if !send(connected) {
			return
		}

		keepalive := time.NewTicker(KeepaliveInterval)
		defer keepalive.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case evt, open := <-client.EventChannel:
				if !open || !send(evt) {
					return
				}
			case <-keepalive.C:
				if !send(Event{Type: EventTypeKeepalive, Timestamp: time.Now().UnixMilli()}) {
					return
				}
			}
		}
	}
}

package sse

import "time"

const (
	// BroadcastBufferSize bounds events waiting for the delivery loop
	BroadcastBufferSize = 256

	// ClientEventBuffer bounds events waiting for one client's writer
	ClientEventBuffer = 64

	KeepaliveInterval = 30 * time.Second
)

// Control event types
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// Query parameters
const (
	QueryParamTypes   = "types"
	QueryParamSession = "session"
)

const ErrMsgStreamingUnsupported = "streaming not supported"

// Log messages
const (
	LogMsgClientConnected      = "SSE client connected"
	LogMsgClientDisconnected   = "SSE client disconnected"
	LogMsgEventBroadcast       = "Broadcasting SSE event"
	LogMsgBroadcastDropped     = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError           = "Failed to write SSE event"
	LogMsgSubscriberRegistered = "SSE subscriber registered for farm events"
)

package session

import "time"

// Registry defaults
const (
	DefaultCacheSize = 256
	DefaultTTL       = 2 * time.Hour
)

// Log messages
const (
	LogMsgSessionCreated = "Farm session created"
	LogMsgSessionEvicted = "Farm session evicted"
	LogMsgSessionRevived = "Farm session registered again after expiring during refresh"
	LogMsgTickPass       = "Tick pass complete"
)

package config

import "time"

// Environment variable names
const (
	EnvPort               = "PORT"
	EnvLogLevel           = "LOG_LEVEL"
	EnvLogFormat          = "LOG_FORMAT"
	EnvEnvironment        = "ENVIRONMENT"
	EnvServiceName        = "SERVICE_NAME"
	EnvVersion            = "VERSION"
	EnvAPIKey             = "API_KEY"
	EnvTrustedProxies     = "TRUSTED_PROXIES"
	EnvStartingBalance    = "FARM_STARTING_BALANCE"
	EnvGridSize           = "FARM_GRID_SIZE"
	EnvTickInterval       = "FARM_TICK_INTERVAL"
	EnvSessionCacheSize   = "SESSION_CACHE_SIZE"
	EnvSessionTTL         = "SESSION_TTL"
	EnvCropCatalogPath    = "CROP_CATALOG_PATH"
	EnvDatabaseURL        = "DATABASE_URL"
	EnvDBMaxConns         = "DB_MAX_CONNS"
	EnvEventRetentionDays = "EVENT_RETENTION_DAYS"
	EnvEventLogCapacity   = "EVENT_LOG_CAPACITY"
	EnvWorkerCount        = "WORKER_COUNT"
	EnvWorkerQueueSize    = "WORKER_QUEUE_SIZE"

	EnvEventMaxRetries     = "EVENT_MAX_RETRIES"
	EnvEventRetryDelay     = "EVENT_RETRY_DELAY"
	EnvEventDeadLetterPath = "EVENT_DEADLETTER_PATH"
)

// Defaults
const (
	DefaultPort               = 8080
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
	DefaultEnvironment        = "dev"
	DefaultServiceName        = "taskfarm"
	DefaultVersion            = "dev"
	DefaultStartingBalance    = 50
	DefaultGridSize           = 25
	DefaultTickInterval       = 100 * time.Millisecond
	DefaultSessionCacheSize   = 256
	DefaultSessionTTL         = 2 * time.Hour
	DefaultDBMaxConns         = 10
	DefaultEventRetentionDays = 30
	DefaultEventLogCapacity   = 10000
	DefaultWorkerCount        = 2
	DefaultWorkerQueueSize    = 64

	DefaultEventMaxRetries     = 5
	DefaultEventRetryDelay     = 2 * time.Second
	DefaultEventDeadLetterPath = "logs/event_deadletter.jsonl"
)

// Error message formats
const (
	ErrMsgInvalidIntFmt      = "invalid %s value %q: %w"
	ErrMsgInvalidDurationFmt = "invalid %s value %q: %w"
	ErrMsgMustBePositiveFmt  = "%s must be positive, got %v"
	ErrMsgMustBeNonNegFmt    = "%s must not be negative, got %v"
	ErrMsgInvalidPortFmt     = "%s must be between 1 and 65535, got %d"
)

// Configuration warnings
const (
	WarnNoAPIKeyInProduction = "API_KEY is empty in production, the farm API is unauthenticated"
	WarnInMemoryEventLog     = "DATABASE_URL is empty, the audit event log is kept in memory and lost on restart"
)

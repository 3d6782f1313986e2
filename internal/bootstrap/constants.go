package bootstrap

import "time"

// Timeouts
const (
	// ShutdownTimeout bounds the whole graceful shutdown sequence
	ShutdownTimeout = 15 * time.Second

	// MigrationTimeout bounds applying the embedded migrations at startup
	MigrationTimeout = 30 * time.Second
)

// DirPermission is used for the dead-letter file's directory
const DirPermission = 0o755

// Database pool tuning
const (
	DBMaxConnIdleTime = 5 * time.Minute
	DBMaxConnLifetime = time.Hour
)

// Scheduled jobs
const (
	JobNameTick         = "session_tick"
	JobNameEventCleanup = "eventlog_cleanup"

	// EventCleanupInterval is how often the audit log retention job runs
	EventCleanupInterval = 24 * time.Hour
)

// Log messages for startup
const (
	LogMsgStartingTaskfarm       = "Starting taskfarm"
	LogMsgConfigurationLoaded    = "Configuration loaded"
	LogMsgConfigWarning          = "Configuration warning"
	LogMsgEventSystemInitialized = "Event system initialized"
	LogMsgSubscriberRegistered   = "Event subscriber registered"
	LogMsgEventLogMemory         = "Using in-memory event log"
	LogMsgEventLogPostgres       = "Using Postgres event log"
	LogMsgJobsScheduled          = "Background jobs scheduled"
)

// Log messages for shutdown
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgServerStopped        = "Server stopped"
	LogMsgStoppingScheduler    = "Stopping scheduler"
	LogMsgStoppingWorkerPool   = "Stopping worker pool"
	LogMsgClosingSessions      = "Closing farm sessions"
	LogMsgStoppingPublisher    = "Stopping event retry publisher"
	LogMsgPublisherShutdown    = "Event retry publisher did not stop cleanly"
	LogMsgClosingDatabase      = "Closing database pool"
)

// Error messages
const (
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedSubscribeEventLogger = "failed to subscribe event logger"
	ErrMsgFailedConnectDatabase      = "failed to connect to database"
	ErrMsgFailedMigrateDatabase      = "failed to apply database migrations"
	ErrMsgFailedCreateDeadLetterDir  = "failed to create dead-letter directory"
	ErrMsgFailedCreatePublisher      = "failed to create event publisher"
)

package database

// Connection pool sizing
const (
	DefaultMinConnections = 2
	DefaultMaxConnections = 10
)

// MigrationsDir is the embedded directory holding the goose SQL files
const MigrationsDir = "migrations"

// Error messages
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToCreateProvider  = "failed to load migrations"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
)

// Log messages
const (
	LogMsgConnected         = "Connected to Postgres"
	LogMsgMigrationsApplied = "Database migrations applied"
)

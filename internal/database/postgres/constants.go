package postgres

const (
	insertEventSQL = `INSERT INTO farm_events (event_type, session_id, payload, metadata) VALUES ($1, $2, $3, $4)`

	selectEventsSQL = `SELECT id, event_type, session_id, payload, metadata, created_at FROM farm_events`

	deleteEventsBeforeSQL = `DELETE FROM farm_events WHERE created_at < $1`
)

const (
	ErrMsgInsertEvent  = "failed to insert farm event"
	ErrMsgQueryEvents  = "failed to query farm events"
	ErrMsgDeleteEvents = "failed to delete old farm events"
)

package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/taskfarm/internal/eventlog"
)

// Querier is the subset of pgxpool.Pool the repositories need
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type eventLogRepository struct {
	db Querier
}

var _ eventlog.Repository = (*eventLogRepository)(nil)

// NewEventLogRepository stores the farm audit trail in the farm_events table
func NewEventLogRepository(db Querier) eventlog.Repository {
	return &eventLogRepository{db: db}
}

// Append inserts one event. pgx encodes the maps as jsonb.
func (r *eventLogRepository) Append(ctx context.Context, entry eventlog.Entry) error {
	payload := entry.Payload
	if payload == nil {
		payload = map[string]interface{}{}
	}
	if _, err := r.db.Exec(ctx, insertEventSQL, entry.EventType, entry.SessionID, payload, entry.Metadata); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInsertEvent, err)
	}
	return nil
}

func (r *eventLogRepository) Query(ctx context.Context, filter eventlog.EventFilter) ([]eventlog.Event, error) {
	query, args := buildEventQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryEvents, err)
	}
	events, err := pgx.CollectRows(rows, scanEvent)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryEvents, err)
	}
	return events, nil
}

func (r *eventLogRepository) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteEventsBeforeSQL, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgDeleteEvents, err)
	}
	return tag.RowsAffected(), nil
}

// buildEventQuery turns a filter into positional SQL
func buildEventQuery(filter eventlog.EventFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if filter.SessionID != nil {
		add("session_id = $%d", *filter.SessionID)
	}
	if filter.EventType != nil {
		add("event_type = $%d", *filter.EventType)
	}
	if filter.Since != nil {
		add("created_at >= $%d", *filter.Since)
	}
	if filter.Until != nil {
		add("created_at <= $%d", *filter.Until)
	}

	var b strings.Builder
	b.WriteString(selectEventsSQL)
	if len(where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}
	b.WriteString(" ORDER BY created_at DESC, id DESC")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
	}
	return b.String(), args
}

func scanEvent(row pgx.CollectableRow) (eventlog.Event, error) {
	var evt eventlog.Event
	err := row.Scan(&evt.ID, &evt.EventType, &evt.SessionID, &evt.Payload, &evt.Metadata, &evt.CreatedAt)
	return evt, err
}

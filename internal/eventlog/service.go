package eventlog

import (
	"context"
	"fmt"
	"maps"
	"time"

	"github.com/osse101/taskfarm/internal/event"
	"github.com/osse101/taskfarm/internal/logger"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger to listen to all farm events
	Subscribe(bus event.Bus) error

	// Recent returns logged events matching filter, newest first
	Recent(ctx context.Context, filter EventFilter) ([]Event, error)

	// CleanupOldEvents removes events older than retentionDays calendar days
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// Subscribe registers event handlers for all farm event types
func (s *service) Subscribe(bus event.Bus) error {
	event.SubscribeAll(bus, s.handleEvent)
	return nil
}

// handleEvent flattens the payload and writes it to the repository
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.PayloadMap(evt.Payload)
	if err != nil {
		log.Debug(LogMsgEventPayloadNotMap, LogFieldType, evt.Type, LogFieldError, err)
		return nil
	}

	metadata := maps.Clone(evt.Metadata)
	if !evt.OccurredAt.IsZero() {
		if metadata == nil {
			metadata = make(map[string]interface{}, 1)
		}
		metadata[MetadataKeyOccurredAt] = evt.OccurredAt.Format(time.RFC3339Nano)
	}

	entry := Entry{
		EventType: string(evt.Type),
		Payload:   payload,
		Metadata:  metadata,
	}
	if sid := evt.SessionID(); sid != "" {
		entry.SessionID = &sid
	} else if sid, ok := payload[PayloadKeySessionID].(string); ok {
		entry.SessionID = &sid
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldSessionID, entry.SessionID)
	return nil
}

// Recent clamps the limit and queries the repository
func (s *service) Recent(ctx context.Context, filter EventFilter) ([]Event, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > MaxLimit {
		filter.Limit = MaxLimit
	}
	return s.repo.Query(ctx, filter)
}

func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRetention, retentionDays)
	}
	return s.repo.Prune(ctx, s.now().AddDate(0, 0, -retentionDays))
}

package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/taskfarm/internal/config"
	"github.com/osse101/taskfarm/internal/event"
	"github.com/osse101/taskfarm/internal/sse"
)

// InitializeEventSystem creates the in-process event bus wrapped in a retrying
// publisher, and the SSE hub fed from it. Subscribers and sessions must use
// the returned publisher so failed deliveries are retried and dead-lettered.
func InitializeEventSystem(cfg *config.Config) (*event.ResilientPublisher, *sse.Hub, error) {
	if cfg.EventDeadLetterPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.EventDeadLetterPath), DirPermission); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
		}
	}

	publisher, err := event.NewResilientPublisher(event.NewMemoryBus(), event.ResilientConfig{
		MaxRetries:     cfg.EventMaxRetries,
		RetryDelay:     cfg.EventRetryDelay,
		DeadLetterPath: cfg.EventDeadLetterPath,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreatePublisher, err)
	}

	hub := sse.NewHub()
	hub.Start()

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", cfg.EventMaxRetries,
		"retry_delay", cfg.EventRetryDelay,
		"deadletter_path", cfg.EventDeadLetterPath)
	return publisher, hub, nil
}

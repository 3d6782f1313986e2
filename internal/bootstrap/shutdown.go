package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/taskfarm/internal/database"
	"github.com/osse101/taskfarm/internal/event"
	"github.com/osse101/taskfarm/internal/scheduler"
	"github.com/osse101/taskfarm/internal/server"
	"github.com/osse101/taskfarm/internal/session"
	"github.com/osse101/taskfarm/internal/sse"
	"github.com/osse101/taskfarm/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil components are skipped.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler *scheduler.Scheduler
	Pool      *worker.Pool
	Sessions  *session.Manager
	Events    *event.ResilientPublisher
	Hub       *sse.Hub
	DB        database.Pool
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler and worker pool (no more ticks or cleanup runs)
// 3. Sessions (pause every clock)
// 4. Event publisher (pending retries go to the dead-letter file) and the SSE hub
// 5. Database pool, which retries may still have been writing to
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		slog.Info(LogMsgStoppingScheduler)
		c.Scheduler.Stop()
	}
	if c.Pool != nil {
		slog.Info(LogMsgStoppingWorkerPool)
		c.Pool.Stop()
	}

	if c.Sessions != nil {
		slog.Info(LogMsgClosingSessions, "sessions", c.Sessions.Len())
		c.Sessions.Close()
	}
	if c.Events != nil {
		slog.Info(LogMsgStoppingPublisher)
		if err := c.Events.Shutdown(ctx); err != nil {
			slog.Error(LogMsgPublisherShutdown, "error", err)
		}
	}
	if c.Hub != nil {
		c.Hub.Stop()
	}

	if c.DB != nil {
		slog.Info(LogMsgClosingDatabase)
		c.DB.Close()
	}

	slog.Info(LogMsgServerStopped)
}

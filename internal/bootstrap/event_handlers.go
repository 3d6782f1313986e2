package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/taskfarm/internal/event"
	"github.com/osse101/taskfarm/internal/eventlog"
	"github.com/osse101/taskfarm/internal/metrics"
	"github.com/osse101/taskfarm/internal/sse"
)

// Subscribers are the consumers of farm events. A nil Hub skips the SSE bridge.
type Subscribers struct {
	EventLog eventlog.Service
	Hub      *sse.Hub
}

type subscriberStep struct {
	name   string
	errMsg string
	attach func(bus event.Bus) error
}

// RegisterEventHandlers subscribes metrics, the audit log and the SSE bridge
// to bus, in that order, so metrics see an event before anything that can fail.
func RegisterEventHandlers(bus event.Bus, subs Subscribers) error {
	steps := []subscriberStep{
		{"metrics", ErrMsgFailedRegisterMetrics, metrics.NewEventMetricsCollector().Register},
		{"eventlog", ErrMsgFailedSubscribeEventLogger, subs.EventLog.Subscribe},
	}
	if subs.Hub != nil {
		steps = append(steps, subscriberStep{"sse", "", func(bus event.Bus) error {
			sse.NewSubscriber(subs.Hub, bus).Subscribe()
			return nil
		}})
	}

	for _, step := range steps {
		if err := step.attach(bus); err != nil {
			return fmt.Errorf("%s: %w", step.errMsg, err)
		}
		slog.Info(LogMsgSubscriberRegistered, "subscriber", step.name)
	}
	return nil
}

package metrics

import (
	"context"

	"github.com/osse101/taskfarm/internal/domain"
	"github.com/osse101/taskfarm/internal/event"
	"github.com/osse101/taskfarm/internal/logger"
)

// EventMetricsCollector subscribes to farm events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all farm events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	event.SubscribeAll(bus, e.HandleEvent)
	return nil
}

// HandleEvent processes events and updates metrics.
// A payload of the wrong shape is logged and skipped, never returned as an error.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case domain.EventTypePlotPlanted:
		var p domain.PlotPlantedPayload
		if p, err = event.DecodePayload[domain.PlotPlantedPayload](evt.Payload); err == nil {
			CropsPlanted.WithLabelValues(p.CropID).Inc()
			SunEnergySpent.WithLabelValues(ReasonPlant).Add(float64(p.Cost))
		}

	case domain.EventTypePlotAccelerated:
		var p domain.PlotAcceleratedPayload
		if p, err = event.DecodePayload[domain.PlotAcceleratedPayload](evt.Payload); err == nil {
			Accelerations.Inc()
			SunEnergySpent.WithLabelValues(ReasonAccelerate).Add(float64(p.Cost))
		}

	case domain.EventTypePlotReady:
		var p domain.PlotReadyPayload
		if p, err = event.DecodePayload[domain.PlotReadyPayload](evt.Payload); err == nil {
			CropsReady.WithLabelValues(p.CropID).Inc()
		}

	case domain.EventTypePlotHarvested:
		var p domain.PlotHarvestedPayload
		if p, err = event.DecodePayload[domain.PlotHarvestedPayload](evt.Payload); err == nil {
			CropsHarvested.WithLabelValues(p.CropID).Inc()
			SunEnergyEarned.Add(float64(p.Reward))
		}

	case domain.EventTypeWeatherChanged:
		var p domain.WeatherChangedPayload
		if p, err = event.DecodePayload[domain.WeatherChangedPayload](evt.Payload); err == nil {
			WeatherChanges.WithLabelValues(string(p.Weather)).Inc()
		}
	}

	if err != nil {
		log.Debug(LogMsgEventPayloadMismatch, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

package event

import (
	"time"

	"github.com/osse101/taskfarm/internal/domain"
)

// newFarmEvent stamps the wall clock. Sessions restamp with their own clock
// before publishing.
func newFarmEvent(eventType string, sessionID string, payload interface{}) Event {
	return Event{
		Version:    EventSchemaVersion,
		Type:       Type(eventType),
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
		Metadata:   Metadata{MetadataKeySessionID: sessionID},
	}
}

func NewPlotPlantedEvent(sessionID string, plotID int, cropID string, cost, balance int) Event {
	return newFarmEvent(domain.EventTypePlotPlanted, sessionID, domain.PlotPlantedPayload{
		SessionID: sessionID,
		PlotID:    plotID,
		CropID:    cropID,
		Cost:      cost,
		Balance:   balance,
	})
}

func NewPlotAcceleratedEvent(sessionID string, plotID int, cropID string, cost int, progress float64, balance int) Event {
	return newFarmEvent(domain.EventTypePlotAccelerated, sessionID, domain.PlotAcceleratedPayload{
		SessionID: sessionID,
		PlotID:    plotID,
		CropID:    cropID,
		Cost:      cost,
		Progress:  progress,
		Balance:   balance,
	})
}

func NewPlotReadyEvent(sessionID string, plotID int, cropID string) Event {
	return newFarmEvent(domain.EventTypePlotReady, sessionID, domain.PlotReadyPayload{
		SessionID: sessionID,
		PlotID:    plotID,
		CropID:    cropID,
	})
}

func NewPlotHarvestedEvent(sessionID string, plotID int, cropID string, reward, balance int) Event {
	return newFarmEvent(domain.EventTypePlotHarvested, sessionID, domain.PlotHarvestedPayload{
		SessionID: sessionID,
		PlotID:    plotID,
		CropID:    cropID,
		Reward:    reward,
		Balance:   balance,
	})
}

func NewWeatherChangedEvent(sessionID string, weather domain.Weather, multiplier float64) Event {
	return newFarmEvent(domain.EventTypeWeatherChanged, sessionID, domain.WeatherChangedPayload{
		SessionID:  sessionID,
		Weather:    weather,
		Multiplier: multiplier,
	})
}

func NewSeasonChangedEvent(sessionID string, season domain.Season) Event {
	return newFarmEvent(domain.EventTypeSeasonChanged, sessionID, domain.SeasonChangedPayload{
		SessionID: sessionID,
		Season:    season,
	})
}

package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: farm.<entity>.<action> (e.g., "farm.plot.planted")
const (
	// EventTypePlotPlanted is published when a seed is planted on an empty plot
	EventTypePlotPlanted = "farm.plot.planted"

	// EventTypePlotAccelerated is published when sun energy is spent to speed up a growing plot
	EventTypePlotAccelerated = "farm.plot.accelerated"

	// EventTypePlotReady is published when a tick promotes a growing plot to ready
	EventTypePlotReady = "farm.plot.ready"

	// EventTypePlotHarvested is published when a ready plot is harvested
	EventTypePlotHarvested = "farm.plot.harvested"

	EventTypeWeatherChanged = "farm.weather.changed"
	EventTypeSeasonChanged  = "farm.season.changed"
)

// AllFarmEventTypes lists every event type the farm engine emits
var AllFarmEventTypes = []string{
	EventTypePlotPlanted,
	EventTypePlotAccelerated,
	EventTypePlotReady,
	EventTypePlotHarvested,
	EventTypeWeatherChanged,
	EventTypeSeasonChanged,
}

// PlotPlantedPayload is the event payload for farm.plot.planted events
type PlotPlantedPayload struct {
	SessionID string `json:"session_id"`
	PlotID    int    `json:"plot_id"`
	CropID    string `json:"crop_id"`
	Cost      int    `json:"cost"`
	Balance   int    `json:"balance"`
}

// PlotAcceleratedPayload is the event payload for farm.plot.accelerated events
type PlotAcceleratedPayload struct {
	SessionID string  `json:"session_id"`
	PlotID    int     `json:"plot_id"`
	CropID    string  `json:"crop_id"`
	Cost      int     `json:"cost"`
	Progress  float64 `json:"progress"`
	Balance   int     `json:"balance"`
}

// PlotReadyPayload is the event payload for farm.plot.ready events
type PlotReadyPayload struct {
	SessionID string `json:"session_id"`
	PlotID    int    `json:"plot_id"`
	CropID    string `json:"crop_id"`
}

// PlotHarvestedPayload is the event payload for farm.plot.harvested events
type PlotHarvestedPayload struct {
	SessionID string `json:"session_id"`
	PlotID    int    `json:"plot_id"`
	CropID    string `json:"crop_id"`
	Reward    int    `json:"reward"`
	Balance   int    `json:"balance"`
}

// WeatherChangedPayload is the event payload for farm.weather.changed events
type WeatherChangedPayload struct {
	SessionID  string  `json:"session_id"`
	Weather    Weather `json:"weather"`
	Multiplier float64 `json:"multiplier"`
}

// SeasonChangedPayload is the event payload for farm.season.changed events
type SeasonChangedPayload struct {
	SessionID string `json:"session_id"`
	Season    Season `json:"season"`
}

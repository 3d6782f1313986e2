package farm

import "time"

// Growth and economy constants
const (
	AccelerationCost   = 1
	AccelerationAmount = 5.0
	MaxProgress        = 100.0
	// GrowthTimeScale is applied to every tick: a crop with total growth time T
	// matures in T/GrowthTimeScale seconds under a 1.0 multiplier.
	GrowthTimeScale = 10.0
	TickInterval    = 100 * time.Millisecond
	DefaultGridSize = 25
)

// Log messages
const (
	LogMsgPlotPlanted        = "Plot planted"
	LogMsgPlotAccelerated    = "Plot accelerated"
	LogMsgPlotReady          = "Plot ready for harvest"
	LogMsgPlotHarvested      = "Plot harvested"
	LogMsgWeatherChanged     = "Weather changed"
	LogMsgSeasonChanged      = "Season changed"
	LogMsgTickApplied        = "Tick applied"
	LogMsgEventPublishFailed = "Failed to publish farm event"
	LogMsgClockPaused        = "Simulation clock paused"
	LogMsgClockResumed       = "Simulation clock resumed"
)

// Formatted error messages
const (
	ErrMsgPlotStateFmt    = "%w: plot %d is %s"
	ErrMsgPlotNotFoundFmt = "%w: plot %d outside grid of %d"
	ErrMsgGridSizeFmt     = "%w: grid size must be positive, got %d"
)

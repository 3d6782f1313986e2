package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Farm metric names
const (
	MetricNameCropsPlanted      = "farm_crops_planted_total"
	MetricNameCropsHarvested    = "farm_crops_harvested_total"
	MetricNameCropsReady        = "farm_crops_ready_total"
	MetricNameAccelerations     = "farm_accelerations_total"
	MetricNameSunEnergyEarned   = "farm_sun_energy_earned_total"
	MetricNameSunEnergySpent    = "farm_sun_energy_spent_total"
	MetricNameWeatherChanges    = "farm_weather_changes_total"
	MetricNameActiveSessions    = "farm_active_sessions"
	MetricNameSessionsEvicted   = "farm_sessions_evicted_total"
	MetricNameTickDuration      = "farm_tick_duration_seconds"
	MetricNameTicksTotal        = "farm_ticks_total"
	MetricNameSSEClientsCurrent = "sse_clients_connected"
)

// Event log metric names
const (
	MetricNameEventLogPruned      = "eventlog_pruned_events_total"
	MetricNameEventLogCleanupRuns = "eventlog_cleanup_runs_total"
)

// Scheduler metric names
const (
	MetricNameScheduledRuns        = "scheduler_runs_total"
	MetricNameScheduledRunsSkipped = "scheduler_runs_skipped_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Farm metric help text
const (
	HelpTextCropsPlanted      = "Total number of crops planted"
	HelpTextCropsHarvested    = "Total number of crops harvested"
	HelpTextCropsReady        = "Total number of plots promoted to ready"
	HelpTextAccelerations     = "Total number of paid growth accelerations"
	HelpTextSunEnergyEarned   = "Total sun energy credited by harvests"
	HelpTextSunEnergySpent    = "Total sun energy debited by planting and acceleration"
	HelpTextWeatherChanges    = "Total number of weather changes"
	HelpTextActiveSessions    = "Current number of live farm sessions"
	HelpTextSessionsEvicted   = "Total number of farm sessions evicted or deleted"
	HelpTextTickDuration      = "Time spent ticking every live session once"
	HelpTextTicksTotal        = "Total number of scheduled tick passes"
	HelpTextSSEClientsCurrent = "Current number of connected SSE clients"
)

// Event log metric help text
const (
	HelpTextEventLogPruned      = "Audit events removed by retention cleanup"
	HelpTextEventLogCleanupRuns = "Retention cleanup runs by outcome"
)

// Scheduler metric help text
const (
	HelpTextScheduledRuns        = "Scheduled job runs handed to the worker pool"
	HelpTextScheduledRunsSkipped = "Scheduled job runs skipped because the worker queue was full"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelCrop    = "crop"
	LabelWeather = "weather"
	LabelReason  = "reason"
	LabelJob     = "job"
)

// Cleanup run outcomes
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Spend reasons
const (
	ReasonPlant      = "plant"
	ReasonAccelerate = "accelerate"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TickLatencyBuckets covers a tick pass from 10µs up to one full tick interval
var TickLatencyBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadMismatch = "Event payload did not match its type"
	LogMsgMetricsRecorded      = "Metrics recorded for event"
)

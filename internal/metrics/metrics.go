package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Farm Metrics
var (
	CropsPlanted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropsPlanted,
			Help: HelpTextCropsPlanted,
		},
		[]string{LabelCrop},
	)

	CropsHarvested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropsHarvested,
			Help: HelpTextCropsHarvested,
		},
		[]string{LabelCrop},
	)

	CropsReady = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropsReady,
			Help: HelpTextCropsReady,
		},
		[]string{LabelCrop},
	)

	Accelerations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAccelerations,
			Help: HelpTextAccelerations,
		},
	)

	SunEnergyEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSunEnergyEarned,
			Help: HelpTextSunEnergyEarned,
		},
	)

	SunEnergySpent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSunEnergySpent,
			Help: HelpTextSunEnergySpent,
		},
		[]string{LabelReason},
	)

	WeatherChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWeatherChanges,
			Help: HelpTextWeatherChanges,
		},
		[]string{LabelWeather},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSessions,
			Help: HelpTextActiveSessions,
		},
	)

	SessionsEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsEvicted,
			Help: HelpTextSessionsEvicted,
		},
	)

	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameTickDuration,
			Help:    HelpTextTickDuration,
			Buckets: TickLatencyBuckets,
		},
	)

	TicksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTicksTotal,
			Help: HelpTextTicksTotal,
		},
	)

	SSEClientsConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSSEClientsCurrent,
			Help: HelpTextSSEClientsCurrent,
		},
	)

	EventLogPruned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEventLogPruned,
			Help: HelpTextEventLogPruned,
		},
	)

	EventLogCleanupRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventLogCleanupRuns,
			Help: HelpTextEventLogCleanupRuns,
		},
		[]string{LabelStatus},
	)
)

// Scheduler Metrics
var (
	ScheduledRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameScheduledRuns,
			Help: HelpTextScheduledRuns,
		},
		[]string{LabelJob},
	)

	ScheduledRunsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameScheduledRunsSkipped,
			Help: HelpTextScheduledRunsSkipped,
		},
		[]string{LabelJob},
	)
)

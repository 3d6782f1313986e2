package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/taskfarm/internal/domain"
	"github.com/osse101/taskfarm/internal/event"
)

func TestEventMetricsCollector_RecordsFarmActivity(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))
	ctx := context.Background()

	planted := testutil.ToFloat64(CropsPlanted.WithLabelValues("beet"))
	spentPlant := testutil.ToFloat64(SunEnergySpent.WithLabelValues(ReasonPlant))
	spentAccel := testutil.ToFloat64(SunEnergySpent.WithLabelValues(ReasonAccelerate))
	readyCount := testutil.ToFloat64(CropsReady.WithLabelValues("beet"))
	harvested := testutil.ToFloat64(CropsHarvested.WithLabelValues("beet"))
	earned := testutil.ToFloat64(SunEnergyEarned)
	rainy := testutil.ToFloat64(WeatherChanges.WithLabelValues("rainy"))
	published := testutil.ToFloat64(EventsPublished.WithLabelValues(domain.EventTypeSeasonChanged))

	require.NoError(t, bus.Publish(ctx, event.NewPlotPlantedEvent("s", 0, "beet", 4, 46)))
	require.NoError(t, bus.Publish(ctx, event.NewPlotAcceleratedEvent("s", 0, "beet", 1, 5, 45)))
	require.NoError(t, bus.Publish(ctx, event.NewPlotReadyEvent("s", 0, "beet")))
	require.NoError(t, bus.Publish(ctx, event.NewPlotHarvestedEvent("s", 0, "beet", 9, 54)))
	require.NoError(t, bus.Publish(ctx, event.NewWeatherChangedEvent("s", domain.WeatherRainy, 1.5)))
	require.NoError(t, bus.Publish(ctx, event.NewSeasonChangedEvent("s", domain.SeasonSummer)))

	assert.Equal(t, planted+1, testutil.ToFloat64(CropsPlanted.WithLabelValues("beet")))
	assert.Equal(t, spentPlant+4, testutil.ToFloat64(SunEnergySpent.WithLabelValues(ReasonPlant)))
	assert.Equal(t, spentAccel+1, testutil.ToFloat64(SunEnergySpent.WithLabelValues(ReasonAccelerate)))
	assert.Equal(t, readyCount+1, testutil.ToFloat64(CropsReady.WithLabelValues("beet")))
	assert.Equal(t, harvested+1, testutil.ToFloat64(CropsHarvested.WithLabelValues("beet")))
	assert.Equal(t, earned+9, testutil.ToFloat64(SunEnergyEarned))
	assert.Equal(t, rainy+1, testutil.ToFloat64(WeatherChanges.WithLabelValues("rainy")))
	assert.Equal(t, published+1, testutil.ToFloat64(EventsPublished.WithLabelValues(domain.EventTypeSeasonChanged)))
}

func TestEventMetricsCollector_IgnoresMalformedPayload(t *testing.T) {
	c := NewEventMetricsCollector()
	evt := event.Event{Type: domain.EventTypePlotPlanted, Payload: "not a payload"}

	assert.NoError(t, c.HandleEvent(context.Background(), evt))
}

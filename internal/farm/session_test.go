package farm

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/taskfarm/internal/crop"
	"github.com/osse101/taskfarm/internal/domain"
	"github.com/osse101/taskfarm/internal/event"
)

func newTestSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	s, err := NewSession("test-session", crop.Default(), opts...)
	require.NoError(t, err)
	return s
}

func ready(t *testing.T, s *Session, plotID int) {
	t.Helper()
	s.Tick(context.Background(), 1000)
	require.Equal(t, domain.PlotStatusReady, s.GetState().Plots[plotID].Status)
}

func TestNewSession(t *testing.T) {
	s := newTestSession(t)
	state := s.GetState()

	assert.Equal(t, 50, state.Balance)
	assert.Len(t, state.Plots, DefaultGridSize)
	assert.Equal(t, domain.WeatherSunny, state.Weather)
	assert.Equal(t, domain.SeasonSpring, state.Season)
	for i, p := range state.Plots {
		assert.Equal(t, i, p.ID)
		assert.Equal(t, domain.PlotStatusEmpty, p.Status)
	}

	_, err := NewSession("x", crop.Default(), WithGridSize(0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewSession("x", crop.Default(), WithStartingBalance(-5))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = NewSession("x", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	small := newTestSession(t, WithGridSize(4), WithStartingBalance(7))
	assert.Equal(t, 4, small.GridSize())
	assert.Equal(t, 7, small.Balance())
}

func TestSession_PlantWheat(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.Plant(context.Background(), 0, "wheat"))

	state := s.GetState()
	assert.Equal(t, 48, state.Balance)
	assert.Equal(t, domain.PlotStatusGrowing, state.Plots[0].Status)
	assert.Equal(t, "wheat", state.Plots[0].CropID)
	assert.Zero(t, state.Plots[0].Progress)
}

func TestSession_OneSecondOfTicks(t *testing.T) {
	tests := []struct {
		name    string
		weather domain.Weather
		want    float64
	}{
		{"sunny", domain.WeatherSunny, 33.333},
		{"rainy", domain.WeatherRainy, 50.0},
		{"snowy", domain.WeatherSnowy, 16.667},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s := newTestSession(t)
			require.NoError(t, s.SetWeather(ctx, tt.weather))
			require.NoError(t, s.Plant(ctx, 0, "wheat"))

			s.AdvanceTicks(ctx, 10, TickInterval)

			assert.InDelta(t, tt.want, s.GetState().Plots[0].Progress, 0.01)
		})
	}
}

func TestSession_WeatherChangeAppliesFromNextTick(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t)
	require.NoError(t, s.Plant(ctx, 0, "wheat"))

	s.Tick(ctx, 0.5)
	before := s.GetState().Plots[0].Progress
	require.NoError(t, s.SetWeather(ctx, domain.WeatherRainy))
	assert.Equal(t, before, s.GetState().Plots[0].Progress)

	s.Tick(ctx, 0.5)
	assert.InDelta(t, before+before*1.5, s.GetState().Plots[0].Progress, 1e-9)
}

func TestSession_HarvestReadyPlot(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t)
	require.NoError(t, s.Plant(ctx, 0, "wheat"))
	ready(t, s, 0)

	before := s.Balance()
	require.NoError(t, s.Harvest(ctx, 0))

	state := s.GetState()
	assert.Equal(t, before+5, state.Balance)
	assert.Equal(t, domain.PlotStatusEmpty, state.Plots[0].Status)
	assert.Zero(t, state.Plots[0].Progress)
	assert.Empty(t, state.Plots[0].CropID)
	assert.Nil(t, state.Plots[0].PlantedAt)
}

func TestSession_AccelerateRejectsEmptyAndReady(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t)

	err := s.Accelerate(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidPlotState)
	assert.Equal(t, 50, s.Balance())

	require.NoError(t, s.Plant(ctx, 1, "wheat"))
	ready(t, s, 1)
	balance := s.Balance()

	err = s.Accelerate(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidPlotState)
	assert.Equal(t, balance, s.Balance())
}

func TestSession_PlantThenHarvestFails(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t)
	require.NoError(t, s.Plant(ctx, 0, "wheat"))

	err := s.Harvest(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidPlotState)
	assert.Equal(t, 48, s.Balance())
	assert.Equal(t, domain.PlotStatusGrowing, s.GetState().Plots[0].Status)
}

func TestSession_AccelerateToMaxWaitsForTick(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t)
	require.NoError(t, s.Plant(ctx, 0, "wheat"))

	for i := 0; i < 20; i++ {
		require.NoError(t, s.Accelerate(ctx, 0))
	}
	state := s.GetState()
	assert.Equal(t, MaxProgress, state.Plots[0].Progress)
	assert.Equal(t, domain.PlotStatusGrowing, state.Plots[0].Status)
	assert.Equal(t, 28, state.Balance)

	assert.ErrorIs(t, s.Harvest(ctx, 0), domain.ErrInvalidPlotState)

	s.Tick(ctx, 0)
	assert.Equal(t, domain.PlotStatusReady, s.GetState().Plots[0].Status)
	require.NoError(t, s.Harvest(ctx, 0))
}

func TestSession_NaNTickDoesNotStallGrowth(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t)
	require.NoError(t, s.Plant(ctx, 0, "wheat"))

	s.Tick(ctx, math.NaN())
	plot := s.GetState().Plots[0]
	assert.Zero(t, plot.Progress)
	assert.Equal(t, domain.PlotStatusGrowing, plot.Status)

	s.Tick(ctx, 100)
	plot = s.GetState().Plots[0]
	assert.Equal(t, MaxProgress, plot.Progress)
	assert.Equal(t, domain.PlotStatusReady, plot.Status)
}

func TestSession_Errors(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, WithStartingBalance(3))

	assert.ErrorIs(t, s.Plant(ctx, -1, "wheat"), domain.ErrPlotNotFound)
	assert.ErrorIs(t, s.Plant(ctx, DefaultGridSize, "wheat"), domain.ErrPlotNotFound)
	assert.ErrorIs(t, s.Accelerate(ctx, 99), domain.ErrPlotNotFound)
	assert.ErrorIs(t, s.Harvest(ctx, 99), domain.ErrPlotNotFound)

	err := s.Plant(ctx, 0, "wheet")
	assert.ErrorIs(t, err, domain.ErrUnknownCrop)
	assert.Contains(t, err.Error(), "wheat")

	assert.ErrorIs(t, s.Plant(ctx, 0, "pumpkin"), domain.ErrInsufficientFunds)
	assert.Equal(t, 3, s.Balance())

	require.NoError(t, s.Plant(ctx, 0, "wheat"))
	assert.ErrorIs(t, s.Plant(ctx, 0, "wheat"), domain.ErrInvalidPlotState)
	require.NoError(t, s.Accelerate(ctx, 0))
	assert.ErrorIs(t, s.Accelerate(ctx, 0), domain.ErrInsufficientFunds)
	assert.Zero(t, s.Balance())

	assert.ErrorIs(t, s.SetWeather(ctx, "hail"), domain.ErrInvalidInput)
	assert.ErrorIs(t, s.SetSeason(ctx, "monsoon"), domain.ErrInvalidInput)
}

func TestSession_GetStateIsIdempotentAndDetached(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t)
	require.NoError(t, s.Plant(ctx, 2, "corn"))
	s.Tick(ctx, 0.3)

	first := s.GetState()
	second := s.GetState()
	assert.Equal(t, first, second)

	first.Plots[2].Progress = 99
	first.Plots[2].PlantedAt = nil
	first.Balance = 1000
	assert.Equal(t, second, s.GetState())
}

func TestSession_SeasonIsPassthrough(t *testing.T) {
	ctx := context.Background()
	a := newTestSession(t)
	b := newTestSession(t)
	require.NoError(t, b.SetSeason(ctx, domain.SeasonWinter))
	require.NoError(t, a.Plant(ctx, 0, "tomato"))
	require.NoError(t, b.Plant(ctx, 0, "tomato"))

	a.Tick(ctx, 1.7)
	b.Tick(ctx, 1.7)

	assert.Equal(t, domain.SeasonWinter, b.GetState().Season)
	assert.Equal(t, a.GetState().Plots[0].Progress, b.GetState().Plots[0].Progress)
}

func TestSession_RandomOperationsKeepInvariants(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, WithGridSize(6), WithStartingBalance(20))
	rng := rand.New(rand.NewSource(42))
	crops := []string{"wheat", "carrot", "tomato", "corn", "pumpkin", "sunflower"}
	lastProgress := make(map[int]float64)

	for i := 0; i < 2000; i++ {
		plot := rng.Intn(6)
		switch rng.Intn(5) {
		case 0:
			_ = s.Plant(ctx, plot, crops[rng.Intn(len(crops))])
		case 1:
			_ = s.Accelerate(ctx, plot)
		case 2:
			if s.Harvest(ctx, plot) == nil {
				delete(lastProgress, plot)
			}
		case 3:
			s.Tick(ctx, rng.Float64()*0.2)
		case 4:
			_ = s.SetWeather(ctx, domain.AllWeathers[rng.Intn(len(domain.AllWeathers))])
		}

		state := s.GetState()
		require.GreaterOrEqual(t, state.Balance, 0)
		for _, p := range state.Plots {
			switch p.Status {
			case domain.PlotStatusEmpty:
				require.Empty(t, p.CropID)
				require.Zero(t, p.Progress)
				delete(lastProgress, p.ID)
			case domain.PlotStatusReady:
				require.Equal(t, MaxProgress, p.Progress)
			case domain.PlotStatusGrowing:
				require.NotEmpty(t, p.CropID)
				require.GreaterOrEqual(t, p.Progress, lastProgress[p.ID])
				lastProgress[p.ID] = p.Progress
			}
		}
	}
}

func TestSession_PublishesEvents(t *testing.T) {
	ctx := context.Background()
	bus := event.NewMemoryBus()
	var mu sync.Mutex
	var got []event.Type
	event.SubscribeAll(bus, func(_ context.Context, e event.Event) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e.Type)
		assert.Equal(t, "test-session", e.SessionID())
		return nil
	})

	s := newTestSession(t, WithBus(bus))
	require.NoError(t, s.Plant(ctx, 0, "wheat"))
	require.NoError(t, s.Accelerate(ctx, 0))
	s.Tick(ctx, 10)
	require.NoError(t, s.Harvest(ctx, 0))
	require.NoError(t, s.SetWeather(ctx, domain.WeatherSnowy))
	require.NoError(t, s.SetWeather(ctx, domain.WeatherSnowy))
	require.NoError(t, s.SetSeason(ctx, domain.SeasonAutumn))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []event.Type{
		domain.EventTypePlotPlanted,
		domain.EventTypePlotAccelerated,
		domain.EventTypePlotReady,
		domain.EventTypePlotHarvested,
		domain.EventTypeWeatherChanged,
		domain.EventTypeSeasonChanged,
	}, got)
}

func TestSession_EventsCarrySessionClockTime(t *testing.T) {
	start := time.Date(2024, 7, 1, 6, 0, 0, 0, time.UTC)
	clock := NewSimulatedClock(start)
	bus := event.NewMemoryBus()
	var stamps []time.Time
	event.SubscribeAll(bus, func(_ context.Context, e event.Event) error {
		stamps = append(stamps, e.OccurredAt)
		return nil
	})

	s := newTestSession(t, WithBus(bus), WithClock(clock))
	require.NoError(t, s.Plant(context.Background(), 0, "wheat"))
	clock.Advance(90 * time.Minute)
	require.NoError(t, s.SetSeason(context.Background(), domain.SeasonSummer))

	assert.Equal(t, []time.Time{start, start.Add(90 * time.Minute)}, stamps)
}

func TestSession_SubscriberErrorDoesNotFailOperation(t *testing.T) {
	bus := event.NewMemoryBus()
	bus.Subscribe(domain.EventTypePlotPlanted, func(context.Context, event.Event) error {
		return errors.New("subscriber down")
	})
	s := newTestSession(t, WithBus(bus))

	require.NoError(t, s.Plant(context.Background(), 0, "wheat"))
	assert.Equal(t, 48, s.Balance())
}

func TestSession_SubscriberMayReadState(t *testing.T) {
	bus := event.NewMemoryBus()
	var s *Session
	var seen domain.FarmState
	bus.Subscribe(domain.EventTypePlotPlanted, func(context.Context, event.Event) error {
		seen = s.GetState()
		return nil
	})
	s = newTestSession(t, WithBus(bus))

	require.NoError(t, s.Plant(context.Background(), 0, "wheat"))
	assert.Equal(t, 48, seen.Balance)
}

func TestSession_ClockDrivesTicks(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewSimulatedClock(start)
	s := newTestSession(t, WithClock(clock))
	require.NoError(t, s.Plant(ctx, 0, "wheat"))

	clock.Advance(time.Second)
	s.Clock().Advance(ctx)
	assert.InDelta(t, 33.333, s.GetState().Plots[0].Progress, 0.01)

	s.Clock().Pause()
	clock.Advance(time.Minute)
	s.Clock().Advance(ctx)
	s.Clock().Resume()
	s.Clock().Advance(ctx)
	assert.InDelta(t, 33.333, s.GetState().Plots[0].Progress, 0.01)
	assert.Equal(t, start, *s.GetState().Plots[0].PlantedAt)
}

func TestSession_ConcurrentOperations(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, WithStartingBalance(500))

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				plot := (worker + i) % DefaultGridSize
				_ = s.Plant(ctx, plot, "wheat")
				_ = s.Accelerate(ctx, plot)
				s.Tick(ctx, 0.05)
				_ = s.Harvest(ctx, plot)
				_ = s.GetState()
			}
		}(w)
	}
	wg.Wait()

	assert.GreaterOrEqual(t, s.Balance(), 0)
}

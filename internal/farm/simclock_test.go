package farm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingTicker struct {
	deltas []float64
}

func (r *recordingTicker) Tick(_ context.Context, delta float64) {
	r.deltas = append(r.deltas, delta)
}

func TestSimulationClock_Advance(t *testing.T) {
	clock := NewSimulatedClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	target := &recordingTicker{}
	sim := NewSimulationClock(target, clock)
	ctx := context.Background()

	clock.Advance(100 * time.Millisecond)
	assert.InDelta(t, 0.1, sim.Advance(ctx), 1e-9)

	clock.Advance(250 * time.Millisecond)
	assert.InDelta(t, 0.25, sim.Advance(ctx), 1e-9)

	assert.Equal(t, 0.0, sim.Advance(ctx))
	assert.Len(t, target.deltas, 3)
}

func TestSimulationClock_PauseDoesNotCreditElapsedTime(t *testing.T) {
	clock := NewSimulatedClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	target := &recordingTicker{}
	sim := NewSimulationClock(target, clock)
	ctx := context.Background()

	sim.Pause()
	assert.True(t, sim.Paused())
	clock.Advance(time.Hour)
	assert.Zero(t, sim.Advance(ctx))
	assert.Empty(t, target.deltas)

	sim.Resume()
	assert.False(t, sim.Paused())
	clock.Advance(100 * time.Millisecond)
	assert.InDelta(t, 0.1, sim.Advance(ctx), 1e-9)
	assert.Len(t, target.deltas, 1)
}

func TestSimulationClock_NegativeSkewIsZero(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewSimulatedClock(start)
	target := &recordingTicker{}
	sim := NewSimulationClock(target, clock)

	clock.Set(start.Add(-time.Minute))
	assert.Zero(t, sim.Advance(context.Background()))
	assert.Equal(t, []float64{0}, target.deltas)
}

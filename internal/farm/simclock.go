package farm

import (
	"context"
	"sync"
	"time"
)

// Ticker receives elapsed wall-clock seconds
type Ticker interface {
	Tick(ctx context.Context, deltaSeconds float64)
}

// SimulationClock converts wall-clock time into tick deltas for one target.
// Paused time is never credited: Resume restarts measurement from now.
type SimulationClock struct {
	mu     sync.Mutex
	target Ticker
	clock  Clock
	last   time.Time
	paused bool
}

// NewSimulationClock creates a running clock whose first delta is measured from now
func NewSimulationClock(target Ticker, clock Clock) *SimulationClock {
	return &SimulationClock{
		target: target,
		clock:  clock,
		last:   clock.Now(),
	}
}

// Advance ticks the target with the time elapsed since the previous advance.
// It returns the delta applied, which is zero while paused.
func (c *SimulationClock) Advance(ctx context.Context) float64 {
	c.mu.Lock()
	if c.paused {
		c.mu.Unlock()
		return 0
	}
	now := c.clock.Now()
	delta := now.Sub(c.last).Seconds()
	c.last = now
	c.mu.Unlock()

	if delta < 0 {
		delta = 0
	}
	c.target.Tick(ctx, delta)
	return delta
}

// Pause stops accrual until Resume
func (c *SimulationClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = true
}

// Resume restarts accrual from the current time
func (c *SimulationClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = false
	c.last = c.clock.Now()
}

// Paused reports whether the clock is paused
func (c *SimulationClock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

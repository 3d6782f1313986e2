package farm

import (
	"sync"
	"time"
)

// Clock is the time source a session reads for plantedAt stamps and tick deltas
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock
type ClockFunc func() time.Time

// Now calls f
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads wall-clock time
var SystemClock Clock = ClockFunc(time.Now)

// SimulatedClock only moves when told to. The simulate command and tests
// drive it so tick deltas are exact.
type SimulatedClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewSimulatedClock returns a clock stopped at start
func NewSimulatedClock(start time.Time) *SimulatedClock {
	return &SimulatedClock{now: start}
}

// Now returns the simulated time
func (c *SimulatedClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Advance moves the clock forward by d and returns the new time
func (c *SimulatedClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// Set jumps to t, which may be earlier than the current time
func (c *SimulatedClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

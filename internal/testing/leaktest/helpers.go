// Package leaktest detects goroutines left running after a component stops.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultSettleTimeout bounds how long Check waits for goroutines to exit
const DefaultSettleTimeout = time.Second

const pollInterval = 10 * time.Millisecond

// GoroutineChecker compares the goroutine count against a baseline
type GoroutineChecker struct {
	t        testing.TB
	baseline int
	timeout  time.Duration
}

// NewGoroutineChecker records the current goroutine count as the baseline
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{
		t:        t,
		baseline: runtime.NumGoroutine(),
		timeout:  DefaultSettleTimeout,
	}
}

// WithTimeout overrides how long Check polls before failing
func (g *GoroutineChecker) WithTimeout(d time.Duration) *GoroutineChecker {
	g.timeout = d
	return g
}

// Check polls until at most tolerance goroutines above the baseline remain.
// On failure the stacks of all live goroutines are logged.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	limit := g.baseline + tolerance
	deadline := time.Now().Add(g.timeout)
	for {
		n := runtime.NumGoroutine()
		if n <= limit {
			return
		}
		if time.Now().After(deadline) {
			g.t.Errorf("goroutine leak: baseline=%d now=%d tolerance=%d\n%s",
				g.baseline, n, tolerance, stacks())
			return
		}
		time.Sleep(pollInterval)
	}
}

// CheckNoGoroutineLeak runs fn and fails t if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

func stacks() string {
	buf := make([]byte, 64<<10)
	for {
		n := runtime.Stack(buf, true)
		if n < len(buf) {
			return string(buf[:n])
		}
		buf = make([]byte, 2*len(buf))
	}
}

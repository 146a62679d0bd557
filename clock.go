package windowz

import "fmt"

// Clock is the threshold-crossing detector that drives the clock-based
// windows. A clock is ticked by its owner — once per observed value for
// MonotonicWindow, once per scheduler firing for TimedWindow — and reports
// through Elapsed when the configured threshold has been reached. Reset
// returns it to its post-construction baseline so the next window can
// accumulate from scratch.
//
// A Clock instance is owned by exactly one window; the window serializes
// access, so implementations need no locking of their own.
type Clock interface {
	// Tick advances the clock by one unit of its own definition.
	Tick()

	// Elapsed reports whether the threshold has been reached.
	Elapsed() bool

	// Reset returns the clock to its baseline.
	Reset()
}

// IntervalClock elapses every N ticks. Driven by MonotonicWindow it yields
// fixed-count logical windows; driven by TimedWindow's scheduler it yields
// windows spanning N tick periods.
type IntervalClock struct {
	every int
	ticks int
}

// NewIntervalClock creates a clock that elapses every `every` ticks.
// Panics if every is not positive.
func NewIntervalClock(every int) *IntervalClock {
	if every <= 0 {
		panic(fmt.Sprintf("windowz.NewIntervalClock: every must be positive, got %d", every))
	}
	return &IntervalClock{every: every}
}

// Tick advances the tick count by one.
func (c *IntervalClock) Tick() {
	c.ticks++
}

// Elapsed reports whether the configured number of ticks has been reached.
func (c *IntervalClock) Elapsed() bool {
	return c.ticks >= c.every
}

// Reset returns the tick count to zero.
func (c *IntervalClock) Reset() {
	c.ticks = 0
}

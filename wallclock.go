package windowz

import "github.com/zoobzio/clockz"

// WallClock provides wall-time operations for deterministic testing.
// The TickerScheduler runs on a WallClock; substituting a fake clock makes
// TimedWindow fully deterministic in tests.
type WallClock = clockz.Clock

// Timer represents a single event timer.
type Timer = clockz.Timer

// Ticker delivers ticks at intervals.
type Ticker = clockz.Ticker

// RealClock is the default WallClock using standard time.
var RealClock WallClock = clockz.RealClock

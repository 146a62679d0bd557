package windowz

import (
	"fmt"
	"sync"
	"time"
)

// Scheduler runs a task periodically on a goroutine independent of the
// caller. TimedWindow registers its tick task through this interface;
// injecting a TickerScheduler over a fake WallClock makes the firing
// cadence manually advanceable in tests.
type Scheduler interface {
	// Schedule invokes task every period, starting after initialDelay
	// (an initialDelay of zero fires immediately). The task runs on a
	// dedicated goroutine; invocations never overlap.
	Schedule(initialDelay, period time.Duration, task func()) TaskHandle
}

// TaskHandle controls a scheduled task.
type TaskHandle interface {
	// Cancel stops future invocations. An in-flight invocation, if any,
	// completes. Cancel is idempotent.
	Cancel()
}

// TickerScheduler is the default Scheduler, driving tasks from a WallClock
// ticker. The zero value is not usable; construct with NewTickerScheduler.
type TickerScheduler struct {
	clock WallClock
}

// NewTickerScheduler creates a scheduler backed by the given wall clock.
// Pass RealClock for production use or a clockz fake clock in tests.
func NewTickerScheduler(clock WallClock) *TickerScheduler {
	return &TickerScheduler{clock: clock}
}

// Schedule starts a goroutine that invokes task every period.
// Panics if period is not positive.
func (s *TickerScheduler) Schedule(initialDelay, period time.Duration, task func()) TaskHandle {
	if period <= 0 {
		panic(fmt.Sprintf("windowz.TickerScheduler: period must be positive, got %v", period))
	}

	t := &tickerTask{stop: make(chan struct{})}

	go func() {
		if initialDelay > 0 {
			timer := s.clock.NewTimer(initialDelay)
			select {
			case <-timer.C():
			case <-t.stop:
				timer.Stop()
				return
			}
		}

		// The ticker is registered before the first invocation so a fake
		// clock advanced after that invocation is observed already has a
		// waiter for the next period.
		ticker := s.clock.NewTicker(period)
		defer ticker.Stop()

		select {
		case <-t.stop:
			return
		default:
		}
		task()

		for {
			select {
			case <-ticker.C():
				// A tick and a cancel can be ready together; cancel wins.
				select {
				case <-t.stop:
					return
				default:
				}
				task()
			case <-t.stop:
				return
			}
		}
	}()

	return t
}

// tickerTask is the handle for a TickerScheduler task.
type tickerTask struct {
	stop chan struct{}
	once sync.Once
}

func (t *tickerTask) Cancel() {
	t.once.Do(func() {
		close(t.stop)
	})
}

package windowz

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// TimedWindow groups values into windows bounded by an independent
// wall-clock schedule, decoupling emission cadence from value arrival rate.
// Values observed between two firings are aggregated as one window
// regardless of count, and a quiet period still emits on schedule with an
// empty snapshot.
//
// Two actors share the window state: Observe callers append values, and a
// scheduler goroutine ticks the threshold clock on every firing, emitting
// and resetting when it elapses. A single mutex guards the buffer and
// clock jointly, so appends can never fall between the scheduler's
// snapshot and reset — every observed value lands in exactly one window.
// The aggregate and emit calls run outside the lock on the captured
// snapshot; a blocking emit stalls only the scheduler goroutine, never
// Observe callers.
type TimedWindow[T, R any] struct {
	name       string
	tickPeriod time.Duration
	aggregate  AggregateFunc[T, R]
	emit       EmitFunc[R]
	scheduler  Scheduler
	onPanic    func(*TickError)

	mu     sync.Mutex
	clock  Clock
	buffer *Buffer[T]
	handle TaskHandle

	lastEmit atomicTime
}

// NewTimedWindow creates a window whose threshold clock is ticked every
// tickPeriod by a background scheduler rather than per observed value.
// Each firing performs the same step as MonotonicWindow: tick the clock
// and, if elapsed, emit the aggregate, clear the buffer, and reset the
// clock. With NewIntervalClock(1) every firing emits; larger intervals
// span multiple periods per window.
//
// The window is inert until Start is called. The buffer is unbounded;
// values observed while the schedule is cancelled accumulate until a
// future emission or the window is discarded.
//
// When to use:
//   - Fixed-cadence reporting regardless of traffic (metrics flushes)
//   - Collapsing bursts into one aggregate per period
//   - Heartbeat-style emissions during quiet periods
//
// Example:
//
//	window := windowz.NewTimedWindow(
//		windowz.NewIntervalClock(1),
//		time.Second,
//		windowz.Count[Event](),
//		func(n int) { fmt.Printf("%d events/sec\n", n) },
//	)
//	handle := window.Start()
//	defer handle.Cancel()
//
//	for event := range events {
//		window.Observe(event)
//	}
//
// Parameters:
//   - clock: Threshold clock ticked once per scheduler firing
//   - tickPeriod: Interval between firings (must be > 0)
//   - aggregate: Pure summarization over the window snapshot
//   - emit: Sink invoked with each aggregate, on the scheduler goroutine
//
// Panics if tickPeriod is not positive or clock, aggregate, or emit is
// nil. Returns a new TimedWindow with fluent configuration; call Start to
// begin the schedule.
func NewTimedWindow[T, R any](clock Clock, tickPeriod time.Duration, aggregate AggregateFunc[T, R], emit EmitFunc[R]) *TimedWindow[T, R] {
	if tickPeriod <= 0 {
		panic(fmt.Sprintf("windowz.NewTimedWindow: tickPeriod must be positive, got %v", tickPeriod))
	}
	if clock == nil {
		panic("windowz.NewTimedWindow: clock must not be nil")
	}
	if aggregate == nil || emit == nil {
		panic("windowz.NewTimedWindow: aggregate and emit must not be nil")
	}
	return &TimedWindow[T, R]{
		name:       "timed-window",
		tickPeriod: tickPeriod,
		aggregate:  aggregate,
		emit:       emit,
		scheduler:  NewTickerScheduler(RealClock),
		clock:      clock,
		buffer:     NewBuffer[T](0),
	}
}

// WithScheduler sets the scheduler used to drive firings.
// Defaults to a TickerScheduler on RealClock. Must be called before Start;
// tests inject a TickerScheduler over a clockz fake clock here.
func (w *TimedWindow[T, R]) WithScheduler(scheduler Scheduler) *TimedWindow[T, R] {
	w.scheduler = scheduler
	return w
}

// WithPanicHandler sets the handler invoked when a firing panics.
// If not set, the error is written to the standard logger. The schedule
// continues either way.
func (w *TimedWindow[T, R]) WithPanicHandler(handler func(*TickError)) *TimedWindow[T, R] {
	w.onPanic = handler
	return w
}

// WithName sets a custom name for this window instance.
// If not set, defaults to "timed-window".
func (w *TimedWindow[T, R]) WithName(name string) *TimedWindow[T, R] {
	w.name = name
	return w
}

// Start registers the periodic tick task, firing immediately and then
// every tickPeriod, and returns the handle controlling it. Cancelling the
// handle permanently stops emissions; Observe keeps accepting values.
// Start is idempotent — repeated calls return the original handle.
func (w *TimedWindow[T, R]) Start() TaskHandle {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.handle == nil {
		w.handle = w.scheduler.Schedule(0, w.tickPeriod, w.tick)
	}
	return w.handle
}

// Stop cancels the scheduled task, if started.
func (w *TimedWindow[T, R]) Stop() {
	w.mu.Lock()
	handle := w.handle
	w.mu.Unlock()
	if handle != nil {
		handle.Cancel()
	}
}

// Observe appends value to the current window. Safe to call from any
// goroutine, before Start and after cancellation.
func (w *TimedWindow[T, R]) Observe(value T) {
	w.mu.Lock()
	w.buffer.Append(value)
	w.mu.Unlock()
}

// tick runs on the scheduler goroutine once per firing.
func (w *TimedWindow[T, R]) tick() {
	defer func() {
		if r := recover(); r != nil {
			w.reportPanic(r)
		}
	}()

	items, elapsed := w.advance()
	if !elapsed {
		return
	}
	w.emit(w.aggregate(items))
	w.lastEmit.Store(time.Now())
}

// advance performs the tick/check/snapshot/reset step as one critical
// section, so no concurrent append can be lost between snapshot and reset.
func (w *TimedWindow[T, R]) advance() (items []T, elapsed bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.clock.Tick()
	if !w.clock.Elapsed() {
		return nil, false
	}
	items = w.buffer.Items()
	w.buffer.Clear()
	w.clock.Reset()
	return items, true
}

func (w *TimedWindow[T, R]) reportPanic(recovered any) {
	err := &TickError{
		Recovered:  recovered,
		WindowName: w.name,
		Timestamp:  time.Now(),
	}
	if w.onPanic != nil {
		w.onPanic(err)
		return
	}
	log.Printf("TimedWindow[%s]: tick panicked: %v", w.name, recovered)
}

// LastEmission returns the wall time of the most recent emission, or the
// zero time if nothing has been emitted. Readable from any goroutine
// without contending on the window lock.
func (w *TimedWindow[T, R]) LastEmission() time.Time {
	return w.lastEmit.Load()
}

// Len returns the number of values accumulated toward the current window.
func (w *TimedWindow[T, R]) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buffer.Len()
}

func (w *TimedWindow[T, R]) Name() string {
	return w.name
}

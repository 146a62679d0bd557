package windowz

// MonotonicWindow groups values into windows bounded by a logical clock.
// The clock is ticked once per observed value; when it reports elapsed, the
// accumulated values are aggregated and emitted, the buffer is cleared, and
// the clock is reset. The window itself is size-free — the clock alone
// decides where windows end.
//
// The elapsed check happens before the value is appended, so the value that
// trips the clock is excluded from the aggregate it triggers and becomes
// the first element of the next window. This lets the clock be driven
// purely by tick count or value content rather than buffer size, at the
// cost of the emitted aggregate lagging the triggering value by one.
//
// MonotonicWindow has a single-threaded contract: Observe must be invoked
// by one goroutine at a time, or externally serialized.
type MonotonicWindow[T, R any] struct {
	name      string
	clock     Clock
	buffer    *Buffer[T]
	aggregate AggregateFunc[T, R]
	emit      EmitFunc[R]
}

// NewMonotonicWindow creates a window driven by the given logical clock.
// On each Observe the clock is ticked; if it has elapsed, the buffered
// values are aggregated and emitted, the buffer is cleared, and the clock
// is reset. The observed value is then appended.
//
// When to use:
//   - Windows bounded by event count without a fixed buffer size
//   - Content-driven boundaries (a custom Clock inspecting external state)
//   - Deterministic windowing independent of wall time
//
// Example:
//
//	// Emit a count every 3 values (the third opens the next window).
//	window := windowz.NewMonotonicWindow(
//		windowz.NewIntervalClock(3),
//		windowz.Count[string](),
//		func(n int) { fmt.Println(n) },
//	)
//
// Parameters:
//   - clock: Threshold clock ticked once per value (must not be nil)
//   - aggregate: Pure summarization over the window snapshot
//   - emit: Sink invoked with each aggregate
//
// Panics if clock, aggregate, or emit is nil. Panics raised by aggregate or
// emit propagate to the Observe caller.
func NewMonotonicWindow[T, R any](clock Clock, aggregate AggregateFunc[T, R], emit EmitFunc[R]) *MonotonicWindow[T, R] {
	if clock == nil {
		panic("windowz.NewMonotonicWindow: clock must not be nil")
	}
	if aggregate == nil || emit == nil {
		panic("windowz.NewMonotonicWindow: aggregate and emit must not be nil")
	}
	return &MonotonicWindow[T, R]{
		name:      "monotonic-window",
		clock:     clock,
		buffer:    NewBuffer[T](0),
		aggregate: aggregate,
		emit:      emit,
	}
}

// WithName sets a custom name for this window instance.
// If not set, defaults to "monotonic-window".
func (w *MonotonicWindow[T, R]) WithName(name string) *MonotonicWindow[T, R] {
	w.name = name
	return w
}

// Observe ticks the clock, emits and resets if it has elapsed, and then
// appends value as part of the current (or freshly opened) window.
func (w *MonotonicWindow[T, R]) Observe(value T) {
	w.clock.Tick()
	if w.clock.Elapsed() {
		w.emit(w.aggregate(w.buffer.Items()))
		w.buffer.Clear()
		w.clock.Reset()
	}
	w.buffer.Append(value)
}

// Len returns the number of values accumulated toward the current window.
func (w *MonotonicWindow[T, R]) Len() int {
	return w.buffer.Len()
}

func (w *MonotonicWindow[T, R]) Name() string {
	return w.name
}

package windowz

import "fmt"

// SlidingWindow groups values into overlapping fixed-count windows.
// Once the first size values have arrived, every new value produces an
// aggregate of the most recent size values (step = 1), making it ideal for
// rolling calculations over a value stream.
//
// SlidingWindow has a single-threaded contract: Observe must be invoked by
// one goroutine at a time, or externally serialized.
type SlidingWindow[T, R any] struct {
	name      string
	buffer    *Buffer[T]
	aggregate AggregateFunc[T, R]
	emit      EmitFunc[R]
}

// NewSlidingWindow creates a window that emits an aggregate of the most
// recent size values on every call once the first size values have arrived.
// The first size-1 calls are silent warm-up; from the size-th call onward,
// each call evicts the oldest value, appends the new one, and emits. The
// buffer is never reset — eviction is continuous.
//
// When to use:
//   - Rolling averages and moving statistics
//   - Smooth trend detection with overlapping data points
//   - Alerting on the last N observations
//
// Example:
//
//	// Rolling sum over the last 2 values.
//	window := windowz.NewSlidingWindow(2, windowz.Sum[int](), func(sum int) {
//		fmt.Println(sum)
//	})
//
//	for _, v := range []int{1, 2, 3, 4} {
//		window.Observe(v)
//	}
//	// Prints 3, 5, 7.
//
// Parameters:
//   - size: Number of values per window (must be > 0)
//   - aggregate: Pure summarization over the window snapshot
//   - emit: Sink invoked with each aggregate
//
// Panics if size is not positive or either function is nil. Panics raised
// by aggregate or emit propagate to the Observe caller.
func NewSlidingWindow[T, R any](size int, aggregate AggregateFunc[T, R], emit EmitFunc[R]) *SlidingWindow[T, R] {
	if size <= 0 {
		panic(fmt.Sprintf("windowz.NewSlidingWindow: size must be positive, got %d", size))
	}
	if aggregate == nil || emit == nil {
		panic("windowz.NewSlidingWindow: aggregate and emit must not be nil")
	}
	return &SlidingWindow[T, R]{
		name:      "sliding-window",
		buffer:    NewBuffer[T](size),
		aggregate: aggregate,
		emit:      emit,
	}
}

// WithName sets a custom name for this window instance.
// If not set, defaults to "sliding-window".
func (w *SlidingWindow[T, R]) WithName(name string) *SlidingWindow[T, R] {
	w.name = name
	return w
}

// Observe appends value to the window, evicting the oldest value if the
// window was already full, and emits an aggregate if the window is full.
func (w *SlidingWindow[T, R]) Observe(value T) {
	w.buffer.Append(value)
	if w.buffer.IsFull() {
		w.emit(w.aggregate(w.buffer.Items()))
	}
}

// Len returns the number of values currently buffered.
func (w *SlidingWindow[T, R]) Len() int {
	return w.buffer.Len()
}

func (w *SlidingWindow[T, R]) Name() string {
	return w.name
}

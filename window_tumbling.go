package windowz

import "fmt"

// TumblingWindow groups values into fixed-count, non-overlapping windows.
// Each value belongs to exactly one window; when the window fills it is
// aggregated, emitted, and replaced by a fresh empty window.
//
// TumblingWindow has a single-threaded contract: Observe must be invoked by
// one goroutine at a time, or externally serialized.
type TumblingWindow[T, R any] struct {
	name      string
	size      int
	buffer    *Buffer[T]
	aggregate AggregateFunc[T, R]
	emit      EmitFunc[R]
}

// NewTumblingWindow creates a window that emits on every size-th value.
// Unlike sliding windows, tumbling windows don't overlap: emissions happen
// exactly on calls size, 2·size, 3·size, …, each covering a disjoint
// consecutive block, and the buffer is flushed after every emission.
//
// When to use:
//   - Per-batch aggregation (every N events, not a rolling view)
//   - Chunked downstream writes
//   - Rate and count statistics over disjoint blocks
//
// Example:
//
//	// Sum every pair of values.
//	window := windowz.NewTumblingWindow(2, windowz.Sum[int](), func(sum int) {
//		fmt.Println(sum)
//	})
//
//	for _, v := range []int{1, 2, 3, 4} {
//		window.Observe(v)
//	}
//	// Prints 3, 7.
//
// Parameters:
//   - size: Number of values per window (must be > 0)
//   - aggregate: Pure summarization over the window snapshot
//   - emit: Sink invoked with each aggregate
//
// Panics if size is not positive or either function is nil. Panics raised
// by aggregate or emit propagate to the Observe caller.
func NewTumblingWindow[T, R any](size int, aggregate AggregateFunc[T, R], emit EmitFunc[R]) *TumblingWindow[T, R] {
	if size <= 0 {
		panic(fmt.Sprintf("windowz.NewTumblingWindow: size must be positive, got %d", size))
	}
	if aggregate == nil || emit == nil {
		panic("windowz.NewTumblingWindow: aggregate and emit must not be nil")
	}
	return &TumblingWindow[T, R]{
		name:      "tumbling-window",
		size:      size,
		buffer:    NewBuffer[T](size),
		aggregate: aggregate,
		emit:      emit,
	}
}

// WithName sets a custom name for this window instance.
// If not set, defaults to "tumbling-window".
func (w *TumblingWindow[T, R]) WithName(name string) *TumblingWindow[T, R] {
	w.name = name
	return w
}

// Observe appends value to the window. When the window fills, the aggregate
// is emitted and the buffer is replaced with a fresh one.
func (w *TumblingWindow[T, R]) Observe(value T) {
	w.buffer.Append(value)
	if w.buffer.IsFull() {
		w.emit(w.aggregate(w.buffer.Items()))
		w.buffer = NewBuffer[T](w.size)
	}
}

// Len returns the number of values accumulated toward the current window.
// It is always 0 immediately after an emission.
func (w *TumblingWindow[T, R]) Len() int {
	return w.buffer.Len()
}

func (w *TumblingWindow[T, R]) Name() string {
	return w.name
}

// Package windowz provides push-based windowing primitives for streaming
// event processing: stateful handlers that consume one value at a time and
// periodically emit an aggregate over a bounded recent subset of the stream.
//
// The core abstraction is the Window interface, a single-method consume
// capability. Four sibling implementations cover the common windowing
// policies:
//   - SlidingWindow: fixed count, overlapping, emits on every value once full
//   - TumblingWindow: fixed count, non-overlapping, emits and flushes on full
//   - MonotonicWindow: emission driven by a logical clock ticked per value
//   - TimedWindow: emission driven by an independent wall-clock schedule
//
// Basic usage:
//
//	emitted := []int{}
//	window := windowz.NewSlidingWindow(2, windowz.Sum[int](), func(sum int) {
//		emitted = append(emitted, sum)
//	})
//
//	for _, v := range []int{1, 2, 3, 4} {
//		window.Observe(v)
//	}
//	// emitted == [3, 5, 7]
//
// Windows are building blocks for larger pipelines, not pipelines
// themselves: there is no channel plumbing, no source, no sink. Feed values
// in with Observe and receive aggregates through the emit callback.
package windowz

// Window is the core interface for window handlers.
// A Window consumes one value per Observe call and, as a side effect,
// invokes its emit function whenever its policy decides a window is
// complete. Implementations should:
//   - Invoke emit synchronously on the goroutine that triggered it
//   - Hand the aggregate function a snapshot, never live buffer storage
//   - Document their threading contract (only TimedWindow is concurrent)
type Window[T any] interface {
	// Observe feeds one value into the window.
	Observe(value T)

	// Name returns a descriptive name for the window, useful for debugging.
	Name() string
}

// AggregateFunc summarizes the values accumulated in a window.
// It receives a snapshot of the buffered values in insertion order. The
// snapshot is a copy owned by the call; mutating it has no effect on the
// window's own state.
type AggregateFunc[T, R any] func(items []T) R

// EmitFunc receives the aggregate for a completed window.
// It is invoked for its side effect only; emission blocks the goroutine
// that triggered it (the Observe caller for count/logical windows, the
// scheduler goroutine for TimedWindow).
type EmitFunc[R any] func(result R)

package windowz

import "fmt"

// Buffer is an ordered FIFO container of values with an optional fixed
// capacity. Appending to a full bounded buffer evicts the oldest element
// first, so a bounded buffer always holds the most recent values and never
// exceeds its capacity. A capacity of zero or less makes the buffer
// unbounded, which is what the clock-driven windows use.
//
// Buffer performs no synchronization of its own; the owning window
// serializes access (TimedWindow holds its own lock around every use).
type Buffer[T any] struct {
	items []T
	head  int
	count int
	cap   int
}

// NewBuffer creates a buffer with the given capacity.
// A capacity of zero or less creates an unbounded buffer.
func NewBuffer[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		return &Buffer[T]{cap: 0}
	}
	return &Buffer[T]{
		items: make([]T, capacity),
		cap:   capacity,
	}
}

// Append inserts a value at the tail. If a bounded buffer is already at
// capacity, the head element is evicted to make room.
func (b *Buffer[T]) Append(value T) {
	if b.cap <= 0 {
		b.items = append(b.items, value)
		b.count++
		return
	}

	if b.count < b.cap {
		b.items[(b.head+b.count)%b.cap] = value
		b.count++
		return
	}

	// Full: overwrite the head slot and rotate.
	b.items[b.head] = value
	b.head = (b.head + 1) % b.cap
}

// IsFull reports whether a bounded buffer holds capacity elements.
// An unbounded buffer is never full.
func (b *Buffer[T]) IsFull() bool {
	return b.cap > 0 && b.count == b.cap
}

// Len returns the number of buffered values.
func (b *Buffer[T]) Len() int {
	return b.count
}

// Cap returns the configured capacity, or 0 for an unbounded buffer.
func (b *Buffer[T]) Cap() int {
	return b.cap
}

// Items returns a copy of the buffered values in insertion order.
// Callers may keep or mutate the returned slice freely.
func (b *Buffer[T]) Items() []T {
	out := make([]T, b.count)
	if b.cap <= 0 {
		copy(out, b.items)
		return out
	}
	for i := 0; i < b.count; i++ {
		out[i] = b.items[(b.head+i)%b.cap]
	}
	return out
}

// Clear removes all values, keeping the capacity.
func (b *Buffer[T]) Clear() {
	if b.cap <= 0 {
		b.items = nil
	} else {
		var zero T
		for i := range b.items {
			b.items[i] = zero
		}
	}
	b.head = 0
	b.count = 0
}

// String returns a short description for debugging.
func (b *Buffer[T]) String() string {
	if b.cap <= 0 {
		return fmt.Sprintf("Buffer(len=%d, unbounded)", b.count)
	}
	return fmt.Sprintf("Buffer(len=%d, cap=%d)", b.count, b.cap)
}

package windowz

import "fmt"

// Common aggregate functions for use with any window.

// Sum returns an aggregate that sums numeric values.
func Sum[T ~int | ~int32 | ~int64 | ~float32 | ~float64]() AggregateFunc[T, T] {
	return func(items []T) T {
		var sum T
		for _, item := range items {
			sum += item
		}
		return sum
	}
}

// Count returns an aggregate that counts values.
func Count[T any]() AggregateFunc[T, int] {
	return func(items []T) int {
		return len(items)
	}
}

// Average holds the sum and count of a window's values.
type Average struct {
	Sum   float64
	Count int
}

// Value returns the computed average, or 0 for an empty window.
func (a Average) Value() float64 {
	if a.Count == 0 {
		return 0
	}
	return a.Sum / float64(a.Count)
}

// Avg returns an aggregate that computes the average of numeric values.
func Avg[T ~int | ~int32 | ~int64 | ~float32 | ~float64]() AggregateFunc[T, Average] {
	return func(items []T) Average {
		avg := Average{Count: len(items)}
		for _, item := range items {
			avg.Sum += float64(item)
		}
		return avg
	}
}

// MinMax holds the minimum and maximum of a window's values.
// Count is 0 for an empty window, in which case Min and Max are zero.
type MinMax[T comparable] struct {
	Min   T
	Max   T
	Count int
}

// String returns a string representation of the min/max values.
func (mm MinMax[T]) String() string {
	return fmt.Sprintf("Min: %v, Max: %v, Count: %d", mm.Min, mm.Max, mm.Count)
}

// MinMaxAgg returns an aggregate that tracks min and max values.
func MinMaxAgg[T ~int | ~int32 | ~int64 | ~float32 | ~float64]() AggregateFunc[T, MinMax[T]] {
	return func(items []T) MinMax[T] {
		var mm MinMax[T]
		for _, item := range items {
			if mm.Count == 0 || item < mm.Min {
				mm.Min = item
			}
			if mm.Count == 0 || item > mm.Max {
				mm.Max = item
			}
			mm.Count++
		}
		return mm
	}
}

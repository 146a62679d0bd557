package windowz

import (
	"fmt"
	"reflect"
	"testing"
)

func TestMonotonicWindow_Name(t *testing.T) {
	window := NewMonotonicWindow(NewIntervalClock(2), Count[int](), func(int) {})
	if window.Name() != "monotonic-window" {
		t.Errorf("expected name 'monotonic-window', got %q", window.Name())
	}
}

func TestMonotonicWindow_TriggeringValueExcluded(t *testing.T) {
	var windows [][]int
	snapshot := func(items []int) []int { return items }
	window := NewMonotonicWindow(NewIntervalClock(3), snapshot, func(items []int) {
		windows = append(windows, items)
	})

	for i := 1; i <= 6; i++ {
		window.Observe(i)
	}

	// The third value trips the clock, is excluded from the aggregate it
	// triggers, and opens the next window.
	want := [][]int{{1, 2}, {3, 4, 5}}
	if !reflect.DeepEqual(windows, want) {
		t.Errorf("expected %v, got %v", want, windows)
	}

	if window.Len() != 1 {
		t.Errorf("expected value 6 alone in the next window, got len %d", window.Len())
	}
}

func TestMonotonicWindow_BufferFlushedOnEmission(t *testing.T) {
	emissions := 0
	window := NewMonotonicWindow(NewIntervalClock(3), Count[int](), func(int) {
		emissions++
	})

	for i := 1; i <= 9; i++ {
		window.Observe(i)
		if window.Len() > 3 {
			t.Fatalf("buffer length %d exceeded the clock interval after observing %d", window.Len(), i)
		}
	}

	// Each emitting call leaves only its triggering value buffered.
	if emissions != 3 {
		t.Errorf("expected 3 emissions, got %d", emissions)
	}
	if window.Len() != 1 {
		t.Errorf("expected len 1 after an emitting call, got %d", window.Len())
	}
}

func TestMonotonicWindow_CustomClock(t *testing.T) {
	// A clock elapsing when an external flag is set, independent of count.
	clk := &flagClock{}
	var windows [][]string
	snapshot := func(items []string) []string { return items }
	window := NewMonotonicWindow(clk, snapshot, func(items []string) {
		windows = append(windows, items)
	})

	window.Observe("a")
	window.Observe("b")
	clk.trip = true
	window.Observe("c")

	want := [][]string{{"a", "b"}}
	if !reflect.DeepEqual(windows, want) {
		t.Errorf("expected %v, got %v", want, windows)
	}
	if window.Len() != 1 {
		t.Errorf("expected only the triggering value buffered, got len %d", window.Len())
	}
}

// flagClock elapses when an external flag is set.
type flagClock struct {
	trip    bool
	elapsed bool
}

func (c *flagClock) Tick()         { c.elapsed = c.trip }
func (c *flagClock) Elapsed() bool { return c.elapsed }
func (c *flagClock) Reset()        { c.trip = false; c.elapsed = false }

func TestNewMonotonicWindow_PanicsOnNilClock(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil clock")
		}
	}()
	NewMonotonicWindow[int, int](nil, Count[int](), func(int) {})
}

// Example demonstrates logical-clock windows: the value that trips the
// clock opens the next window instead of joining the emitted one.
func ExampleMonotonicWindow() {
	window := NewMonotonicWindow(
		NewIntervalClock(3),
		Sum[int](),
		func(sum int) { fmt.Println(sum) },
	)

	for _, v := range []int{1, 2, 3, 4, 5, 6} {
		window.Observe(v)
	}

	// Output:
	// 3
	// 12
}

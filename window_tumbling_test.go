package windowz

import (
	"fmt"
	"reflect"
	"testing"
)

func TestTumblingWindow_Name(t *testing.T) {
	window := NewTumblingWindow(2, Sum[int](), func(int) {})
	if window.Name() != "tumbling-window" {
		t.Errorf("expected name 'tumbling-window', got %q", window.Name())
	}
}

func TestTumblingWindow_PairSums(t *testing.T) {
	var emitted []int
	window := NewTumblingWindow(2, Sum[int](), func(sum int) {
		emitted = append(emitted, sum)
	})

	for _, v := range []int{1, 2, 3, 4} {
		window.Observe(v)
	}

	if !reflect.DeepEqual(emitted, []int{3, 7}) {
		t.Errorf("expected [3 7], got %v", emitted)
	}
}

func TestTumblingWindow_EmitsOnEverySizeThCall(t *testing.T) {
	var emitAt []int
	calls := 0
	window := NewTumblingWindow(3, Count[int](), func(int) {
		emitAt = append(emitAt, calls)
	})

	for i := 1; i <= 9; i++ {
		calls = i
		window.Observe(i)
	}

	if !reflect.DeepEqual(emitAt, []int{3, 6, 9}) {
		t.Errorf("expected emissions on calls [3 6 9], got %v", emitAt)
	}
}

func TestTumblingWindow_DisjointBlocks(t *testing.T) {
	var windows [][]int
	snapshot := func(items []int) []int { return items }
	window := NewTumblingWindow(3, snapshot, func(items []int) {
		windows = append(windows, items)
	})

	for i := 1; i <= 9; i++ {
		window.Observe(i)
	}

	want := [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	if !reflect.DeepEqual(windows, want) {
		t.Errorf("expected %v, got %v", want, windows)
	}

	// No value appears in two emitted aggregates.
	seen := map[int]bool{}
	for _, w := range windows {
		for _, v := range w {
			if seen[v] {
				t.Errorf("value %d appeared in two windows", v)
			}
			seen[v] = true
		}
	}
}

func TestTumblingWindow_EmptyAfterEmission(t *testing.T) {
	window := NewTumblingWindow(2, Count[int](), func(int) {})

	window.Observe(1)
	if window.Len() != 1 {
		t.Errorf("expected len 1 mid-window, got %d", window.Len())
	}

	window.Observe(2)
	if window.Len() != 0 {
		t.Errorf("expected len 0 immediately after emission, got %d", window.Len())
	}
}

func TestNewTumblingWindow_PanicsOnInvalidConfig(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for size=0")
		}
	}()
	NewTumblingWindow(0, Sum[int](), func(int) {})
}

// Example demonstrates disjoint pair sums.
func ExampleTumblingWindow() {
	window := NewTumblingWindow(2, Sum[int](), func(sum int) {
		fmt.Println(sum)
	})

	for _, v := range []int{1, 2, 3, 4} {
		window.Observe(v)
	}

	// Output:
	// 3
	// 7
}

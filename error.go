package windowz

import (
	"fmt"
	"time"
)

// TickError reports a panic recovered during a TimedWindow scheduler
// firing. It captures the recovered value and which window raised it, so a
// panic handler can surface the failure without the schedule dying.
type TickError struct {
	// Recovered is the value recovered from the panic.
	Recovered any

	// WindowName identifies the window whose firing panicked.
	WindowName string

	// Timestamp records when the panic was recovered.
	Timestamp time.Time
}

// Error implements the error interface.
func (e *TickError) Error() string {
	return fmt.Sprintf("TickError[%s]: tick panicked: %v (time: %s)",
		e.WindowName, e.Recovered, e.Timestamp.Format(time.RFC3339))
}

// Unwrap returns the recovered value if it was an error, enabling error
// wrapping chains; otherwise nil.
func (e *TickError) Unwrap() error {
	if err, ok := e.Recovered.(error); ok {
		return err
	}
	return nil
}

package windowz

import (
	"sync/atomic"
	"time"
)

// atomicTime holds a time.Time updated and read from different goroutines.
// The value is stored as Unix nanoseconds to avoid type assertions.
type atomicTime struct {
	nanos atomic.Int64
}

func (at *atomicTime) Store(t time.Time) {
	at.nanos.Store(t.UnixNano())
}

// Load returns the stored time, or the zero time if never stored.
func (at *atomicTime) Load() time.Time {
	nanos := at.nanos.Load()
	if nanos == 0 {
		return time.Time{}
	}
	return time.Unix(0, nanos)
}

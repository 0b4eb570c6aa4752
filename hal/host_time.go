package hal

import (
	"sync"
	"time"
)

// hostTime is either a wall clock truncated to milliseconds or a virtual
// clock advanced by a fixed period per tick.
type hostTime struct {
	mu      sync.Mutex
	virtual bool
	start   time.Time
	now     time.Duration
}

func newHostTime(virtual bool) *hostTime {
	return &hostTime{virtual: virtual}
}

func (t *hostTime) Now() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.now
}

// step latches the time for the coming frame. period is only used by the
// virtual clock.
func (t *hostTime) step(period time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.virtual {
		t.now += period
		return
	}

	now := time.Now()
	if t.start.IsZero() {
		t.start = now
	}
	t.now = now.Sub(t.start).Truncate(time.Millisecond)
}

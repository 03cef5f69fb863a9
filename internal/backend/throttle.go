package backend

import (
	"context"
	"time"
)

// throttle spaces successive reloads at least interval apart. It is owned by
// a single poller goroutine.
type throttle struct {
	interval time.Duration
	last     time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval < 0 {
		interval = 0
	}
	return &throttle{interval: interval}
}

// wait blocks until the interval since the previous call has elapsed. It
// returns false if ctx ends first.
func (t *throttle) wait(ctx context.Context) bool {
	if t.interval > 0 && !t.last.IsZero() {
		if remaining := t.interval - time.Since(t.last); remaining > 0 {
			timer := time.NewTimer(remaining)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return false
			case <-timer.C:
			}
		}
	}
	t.last = time.Now()
	return true
}

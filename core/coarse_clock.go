package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock returns the current time. Loggers take their timestamps from a
// Clock so tests can pin the time.
type Clock func() time.Time

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// StartCoarseClock starts the background goroutine that caches time.Now()
// every interval. Only the first call has any effect; the goroutine runs
// for the lifetime of the process. Log lines carry seconds, so an interval
// well below a second keeps timestamps exact.
func StartCoarseClock(interval time.Duration) {
	coarseClockOnce.Do(func() {
		if interval <= 0 {
			interval = 100 * time.Millisecond
		}
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(interval)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
}

// CoarseNow returns the most recently cached time. It falls back to
// time.Now when StartCoarseClock has not been called.
func CoarseNow() time.Time {
	if t := coarseNow.Load(); t != nil {
		return *t
	}
	return time.Now()
}

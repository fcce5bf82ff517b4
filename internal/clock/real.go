package clock

import (
	"sync/atomic"
	"time"
)

type realClock struct{}

// Real returns a Clock backed by the runtime timer wheel.
func Real() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	t := &realTimer{}
	t.active.Store(true)
	t.timer = time.AfterFunc(nonNegative(d), func() {
		// Lost the race against Cancel.
		if !t.active.CompareAndSwap(true, false) {
			return
		}
		f()
	})
	return t
}

type realTimer struct {
	timer  *time.Timer
	active atomic.Bool
}

func (t *realTimer) Cancel() bool {
	if !t.active.CompareAndSwap(true, false) {
		return false
	}
	t.timer.Stop()
	return true
}

func (t *realTimer) Active() bool {
	return t.active.Load()
}

// Package clock provides the cancellable-timer abstraction used by the
// rate limiters and the progress simulator. Production code uses Real;
// tests drive a Virtual clock so no test waits on the wall clock.
package clock

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Cancel prevents the callback from running.
	// Returns true if the call stopped a pending callback, false if it had
	// already fired or been cancelled. Safe to call multiple times.
	Cancel() bool

	// Active reports whether the callback is still pending.
	Active() bool
}

// Clock schedules callbacks after a delay.
type Clock interface {
	// Now returns the current time of this clock.
	Now() time.Time

	// AfterFunc runs f once, after d has elapsed, on a goroutine owned by
	// the clock. Negative durations are treated as zero.
	AfterFunc(d time.Duration, f func()) Timer
}

// nonNegative clamps a duration to zero.
func nonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}

package ratelimit

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-folio/internal/clock"
)

// Debouncer runs fn once calls have been quiet for delay, with the argument
// of the most recent call.
type Debouncer[T any] struct {
	mu      sync.Mutex
	clk     clock.Clock
	delay   time.Duration
	fn      func(T)
	pending clock.Timer
	gen     uint64
}

// NewDebouncer creates a debouncer. A nil clock uses the real clock.
func NewDebouncer[T any](clk clock.Clock, delay time.Duration, fn func(T)) *Debouncer[T] {
	if clk == nil {
		clk = clock.Real()
	}
	return &Debouncer[T]{clk: clk, delay: delay, fn: fn}
}

// Call cancels any pending invocation and schedules a new one.
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		d.pending.Cancel()
	}
	d.gen++
	gen := d.gen
	d.pending = d.clk.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// Superseded by a later Call or Cancel.
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.pending = nil
		d.mu.Unlock()

		d.fn(arg)
	})
}

// Cancel drops the pending invocation, if any. An invocation whose fn is
// already running is not waited for; fn may call Call or Cancel itself.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		d.pending.Cancel()
		d.pending = nil
	}
	d.gen++
}

// Pending reports whether an invocation is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil && d.pending.Active()
}

// Debounce returns fn wrapped in a new Debouncer.
func Debounce[T any](clk clock.Clock, delay time.Duration, fn func(T)) func(T) {
	return NewDebouncer(clk, delay, fn).Call
}

package ratelimit

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-folio/internal/clock"
)

// Throttler runs fn immediately on the first call, then drops every call
// until limit has elapsed. The next call after the window reopens runs
// immediately and starts a new window.
type Throttler[T any] struct {
	mu      sync.Mutex
	clk     clock.Clock
	limit   time.Duration
	fn      func(T)
	blocked bool
	window  clock.Timer
	gen     uint64
}

// NewThrottler creates a throttler. A nil clock uses the real clock.
func NewThrottler[T any](clk clock.Clock, limit time.Duration, fn func(T)) *Throttler[T] {
	if clk == nil {
		clk = clock.Real()
	}
	return &Throttler[T]{clk: clk, limit: limit, fn: fn}
}

// Call runs fn if the window is open and reports whether it ran.
// Dropped calls lose their argument.
func (t *Throttler[T]) Call(arg T) bool {
	t.mu.Lock()
	if t.blocked {
		t.mu.Unlock()
		return false
	}
	t.blocked = true
	t.gen++
	gen := t.gen
	t.window = t.clk.AfterFunc(t.limit, func() { t.reopen(gen) })
	t.mu.Unlock()

	t.fn(arg)
	return true
}

// Blocked reports whether calls are currently being dropped.
func (t *Throttler[T]) Blocked() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.blocked
}

// Reset reopens the window immediately.
func (t *Throttler[T]) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.window != nil {
		t.window.Cancel()
		t.window = nil
	}
	t.blocked = false
	t.gen++
}

func (t *Throttler[T]) reopen(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// A window cancelled by Reset that fired anyway.
	if gen != t.gen {
		return
	}
	t.blocked = false
	t.window = nil
}

// Throttle returns fn wrapped in a new Throttler.
func Throttle[T any](clk clock.Clock, limit time.Duration, fn func(T)) func(T) {
	th := NewThrottler(clk, limit, fn)
	return func(arg T) { th.Call(arg) }
}

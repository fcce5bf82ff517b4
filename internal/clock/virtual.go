package clock

import (
	"sync"
	"time"
)

// Virtual is a manually advanced clock for tests.
// Callbacks run synchronously inside Advance, in deadline order; timers
// with equal deadlines fire in the order they were scheduled.
type Virtual struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	pending []*virtualTimer
}

// NewVirtual creates a virtual clock starting at the given time.
func NewVirtual(start time.Time) *Virtual {
	return &Virtual{now: start}
}

// Now returns the current virtual time.
func (v *Virtual) Now() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

// AfterFunc schedules f at now+d.
func (v *Virtual) AfterFunc(d time.Duration, f func()) Timer {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.seq++
	t := &virtualTimer{
		clock:    v,
		deadline: v.now.Add(nonNegative(d)),
		seq:      v.seq,
		fn:       f,
		active:   true,
	}
	v.pending = append(v.pending, t)
	return t
}

// Advance moves the clock forward by d, firing every timer whose deadline
// falls inside the window. Timers scheduled by a callback also fire if
// their deadline is still inside the window.
func (v *Virtual) Advance(d time.Duration) {
	v.mu.Lock()
	target := v.now.Add(nonNegative(d))
	v.mu.Unlock()

	for {
		v.mu.Lock()
		next := v.popDue(target)
		if next == nil {
			v.now = target
			v.mu.Unlock()
			return
		}
		if next.deadline.After(v.now) {
			v.now = next.deadline
		}
		v.mu.Unlock()

		next.fn()
	}
}

// Pending returns the number of timers that have not fired or been cancelled.
func (v *Virtual) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.pending)
}

// popDue removes and returns the earliest timer due at or before target.
// Caller must hold v.mu.
func (v *Virtual) popDue(target time.Time) *virtualTimer {
	idx := -1
	for i, t := range v.pending {
		if t.deadline.After(target) {
			continue
		}
		if idx < 0 || earlier(t, v.pending[idx]) {
			idx = i
		}
	}
	if idx < 0 {
		return nil
	}

	t := v.pending[idx]
	v.pending = append(v.pending[:idx], v.pending[idx+1:]...)
	t.active = false
	return t
}

// remove drops t from the pending list. Caller must hold v.mu.
func (v *Virtual) remove(t *virtualTimer) {
	for i, p := range v.pending {
		if p == t {
			v.pending = append(v.pending[:i], v.pending[i+1:]...)
			return
		}
	}
}

func earlier(a, b *virtualTimer) bool {
	if a.deadline.Equal(b.deadline) {
		return a.seq < b.seq
	}
	return a.deadline.Before(b.deadline)
}

type virtualTimer struct {
	clock    *Virtual
	deadline time.Time
	seq      uint64
	fn       func()
	active   bool
}

func (t *virtualTimer) Cancel() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if !t.active {
		return false
	}
	t.active = false
	t.clock.remove(t)
	return true
}

func (t *virtualTimer) Active() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	return t.active
}

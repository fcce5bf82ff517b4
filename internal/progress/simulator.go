// Package progress simulates a loading percentage that climbs from 0 to 100
// on a fixed tick. The value is cosmetic: it is tied to a timer only and
// says nothing about real readiness.
package progress

import (
	"errors"
	"sync"
	"time"

	"github.com/vovakirdan/tui-folio/internal/clock"
)

// Max is the value at which the simulator completes.
const Max = 100

// ErrAlreadyStarted is returned by Start on a simulator that is not idle.
var ErrAlreadyStarted = errors.New("progress: simulator already started")

// State is the simulator lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateCompleted
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Duration returns how long a full run takes at the given step.
func Duration(step time.Duration) time.Duration {
	return Max * step
}

// Simulator advances a counter by one every step until it reaches Max.
type Simulator struct {
	mu        sync.Mutex
	clk       clock.Clock
	state     State
	value     int
	step      time.Duration
	onTick    func(int)
	timer     clock.Timer
	cancelled bool
}

// New creates an idle simulator. A nil clock uses the real clock.
func New(clk clock.Clock) *Simulator {
	if clk == nil {
		clk = clock.Real()
	}
	return &Simulator{clk: clk}
}

// CancelHandle stops a running simulator.
type CancelHandle struct {
	sim *Simulator
}

// Cancel stops ticking without completing the count.
// Idempotent, and a no-op after natural completion. Cancel does not wait for
// a tick whose callback is already executing on the clock's goroutine; every
// tick that starts after Cancel returns is dropped.
func (h CancelHandle) Cancel() {
	if h.sim != nil {
		h.sim.cancel()
	}
}

// Start begins ticking; onTick receives each new value from 1 to Max.
// onTick runs on the clock's goroutine and must not block.
func (s *Simulator) Start(onTick func(int), step time.Duration) (CancelHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return CancelHandle{}, ErrAlreadyStarted
	}

	s.state = StateRunning
	s.step = step
	s.onTick = onTick
	s.timer = s.clk.AfterFunc(step, s.tick)

	return CancelHandle{sim: s}, nil
}

// Value returns the current count.
func (s *Simulator) Value() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// State returns the lifecycle state.
func (s *Simulator) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Simulator) tick() {
	s.mu.Lock()
	if s.state != StateRunning {
		s.mu.Unlock()
		return
	}

	s.value++
	value := s.value
	if value >= Max {
		s.state = StateCompleted
		s.timer = nil
	} else {
		s.timer = s.clk.AfterFunc(s.step, s.tick)
	}
	onTick := s.onTick
	s.mu.Unlock()

	if onTick != nil && !s.isCancelled() {
		onTick(value)
	}
}

func (s *Simulator) isCancelled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelled
}

func (s *Simulator) cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Cancel()
		s.timer = nil
	}
	if s.state == StateRunning {
		s.cancelled = true
	}
	s.state = StateCompleted
}

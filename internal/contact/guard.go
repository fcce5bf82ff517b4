package contact

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-folio/internal/clock"
	"github.com/vovakirdan/tui-folio/internal/ratelimit"
)

// Submitter sends a form.
type Submitter interface {
	Submit(ctx context.Context, f Form) (Result, error)
}

// Guard throttles submissions so a visitor cannot flood the endpoint.
// Invalid forms never open the window, and failed sends close it again so
// the visitor can retry.
type Guard struct {
	next Submitter
	gate *ratelimit.Throttler[struct{}]
}

// NewGuard wraps next with a throttle window. A nil clock uses the real
// clock.
func NewGuard(next Submitter, clk clock.Clock, window time.Duration) *Guard {
	return &Guard{
		next: next,
		gate: ratelimit.NewThrottler(clk, window, func(struct{}) {}),
	}
}

// Submit forwards f unless the window from the previous submission is
// still open.
func (g *Guard) Submit(ctx context.Context, f Form) (Result, error) {
	if err := f.Validate(); err != nil {
		return Result{}, err
	}
	if !g.gate.Call(struct{}{}) {
		return Result{}, ErrThrottled
	}

	res, err := g.next.Submit(ctx, f)
	if err != nil {
		g.gate.Reset()
		return Result{}, err
	}
	return res, nil
}

// Throttled reports whether a submission would be dropped right now.
func (g *Guard) Throttled() bool {
	return g.gate.Blocked()
}

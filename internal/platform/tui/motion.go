package tui

import (
	"github.com/vovakirdan/tui-folio/internal/config"
	"github.com/vovakirdan/tui-folio/internal/fx"
	"github.com/vovakirdan/tui-folio/internal/registry"
)

// settleEps is the distance below which a spring counts as at rest.
const settleEps = 0.01

// tracker turns pointer positions into per-surface motions. Each surface
// owns a spring that eases its tilt toward the current target; profile
// surfaces also play an entrance animation the first time they are seen.
type tracker struct {
	calcs    map[registry.SurfaceKind]*fx.TiltCalculator
	delta    fx.DeltaTilt
	useDelta bool // cards tilt by pointer delta instead of the calculator

	fps     int
	spring  config.SpringConfig
	entryS  float32
	springs map[string]*fx.TiltSpring
	targets map[string]fx.TiltResult
	entries map[string]*fx.Entrance
	started map[string]bool

	surfaces []registry.Surface
	hovered  string
}

func newTracker(cfg config.TiltConfig, fps int, useDelta bool) *tracker {
	return &tracker{
		calcs: map[registry.SurfaceKind]*fx.TiltCalculator{
			registry.SurfaceProfile: fx.NewTiltCalculator(cfg.Profile),
			registry.SurfaceIcon:    fx.NewTiltCalculator(cfg.Icon),
			registry.SurfaceCard:    fx.NewTiltCalculator(cfg.Card),
		},
		delta:    cfg.CardDelta,
		useDelta: useDelta,
		fps:      fps,
		spring:   cfg.Spring,
		entryS:   float32(cfg.EntranceMs) / 1000,
		springs:  make(map[string]*fx.TiltSpring),
		targets:  make(map[string]fx.TiltResult),
		entries:  make(map[string]*fx.Entrance),
		started:  make(map[string]bool),
	}
}

// setSurfaces replaces the tracked surfaces, keeping the state of surfaces
// that survive the relayout.
func (t *tracker) setSurfaces(surfaces []registry.Surface) {
	keep := make(map[string]bool, len(surfaces))
	for _, s := range surfaces {
		keep[s.ID] = true
		if _, ok := t.springs[s.ID]; !ok {
			rest := t.calcs[s.Kind].Reset()
			t.springs[s.ID] = fx.NewTiltSpring(t.fps, t.spring.Frequency, t.spring.Damping, rest)
			t.targets[s.ID] = rest
		}
		if s.Kind == registry.SurfaceProfile {
			if _, ok := t.entries[s.ID]; !ok {
				t.entries[s.ID] = fx.NewEntrance(t.entryS)
			}
		}
	}
	for id := range t.springs {
		if !keep[id] {
			delete(t.springs, id)
			delete(t.targets, id)
			delete(t.entries, id)
			delete(t.started, id)
		}
	}
	if !keep[t.hovered] {
		t.hovered = ""
	}
	t.surfaces = surfaces
}

// point moves the pointer to page cell (x, y).
func (t *tracker) point(x, y int) {
	sample := registry.SampleAt(x, y)
	t.hovered = ""
	for _, s := range t.surfaces {
		calc := t.calcs[s.Kind]
		if !s.Rect.Contains(x, y) {
			t.targets[s.ID] = calc.Reset()
			continue
		}
		t.hovered = s.ID
		rect := registry.SurfaceRect(s.Rect)
		if s.Kind == registry.SurfaceCard && t.useDelta {
			target := t.delta.Compute(sample, rect)
			target.PerspectivePx = calc.Options().BasePerspective
			t.targets[s.ID] = target
			continue
		}
		t.targets[s.ID] = calc.Compute(sample, rect)
	}
}

// hit returns the ID of the surface under page cell (x, y), or "".
func (t *tracker) hit(x, y int) string {
	id := ""
	for _, s := range t.surfaces {
		if s.Rect.Contains(x, y) {
			id = s.ID
		}
	}
	return id
}

// leave resets every surface, as when the pointer leaves the page.
func (t *tracker) leave() {
	t.hovered = ""
	for _, s := range t.surfaces {
		t.targets[s.ID] = t.calcs[s.Kind].Reset()
	}
}

// reveal starts the entrance of profile surfaces overlapping rows
// [top, bottom).
func (t *tracker) reveal(top, bottom int) {
	for _, s := range t.surfaces {
		if _, ok := t.entries[s.ID]; !ok || t.started[s.ID] {
			continue
		}
		if s.Rect.Y < bottom && s.Rect.Bottom() > top {
			t.started[s.ID] = true
		}
	}
}

// step advances springs and running entrances by one frame and reports
// whether anything is still moving.
func (t *tracker) step() bool {
	moving := false
	for id, sp := range t.springs {
		target := t.targets[id]
		sp.Step(target)
		if !sp.Settled(target, settleEps) {
			moving = true
		} else {
			sp.Snap(target)
		}
	}
	dt := float32(1) / float32(t.fps)
	for id, e := range t.entries {
		if t.started[id] && !e.Done() {
			e.Update(dt)
			moving = true
		}
	}
	return moving
}

// motions returns the current transform of every surface.
func (t *tracker) motions() map[string]registry.Motion {
	out := make(map[string]registry.Motion, len(t.surfaces))
	for _, s := range t.surfaces {
		sp, ok := t.springs[s.ID]
		if !ok {
			continue
		}
		m := registry.Motion{
			Tilt:    sp.Current(),
			Scale:   1,
			Opacity: 1,
		}
		if s.ID == t.hovered {
			m.Depth = t.calcs[s.Kind].Depth(true)
		}
		if e, ok := t.entries[s.ID]; ok {
			f := e.Frame()
			m.Tilt = f.Apply(m.Tilt)
			m.Scale = f.Scale
			m.Opacity = f.Opacity
		}
		out[s.ID] = m
	}
	return out
}

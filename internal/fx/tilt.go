package fx

import (
	"fmt"
	"math"
)

// Defaults for zero-valued TiltOptions fields.
const (
	DefaultMaxDegrees      = 15.0
	DefaultBasePerspective = 1000.0
	DefaultScaleFactor     = 10.0
)

// PointerSample is a pointer position in viewport space.
type PointerSample struct {
	X, Y float64
}

// SurfaceRect is the bounding box of a tracked surface at sample time.
type SurfaceRect struct {
	Left, Top, Width, Height float64
}

// Center returns the centre point of the rect.
func (r SurfaceRect) Center() (float64, float64) {
	return r.Left + r.Width/2, r.Top + r.Height/2
}

// Contains reports whether the sample lies inside the rect (right and
// bottom edges exclusive).
func (r SurfaceRect) Contains(s PointerSample) bool {
	return s.X >= r.Left && s.X < r.Left+r.Width && s.Y >= r.Top && s.Y < r.Top+r.Height
}

// Valid reports whether the rect has a positive, finite area.
func (r SurfaceRect) Valid() bool {
	return r.Width > 0 && r.Height > 0 && finite(r.Left, r.Top, r.Width, r.Height)
}

// TiltResult holds the rotation angles (degrees) and perspective (px) to
// apply to a tilted surface.
type TiltResult struct {
	RotationX     float64
	RotationY     float64
	PerspectivePx float64
}

// String formats the result as a CSS-like transform.
func (t TiltResult) String() string {
	return fmt.Sprintf("perspective(%.0fpx) rotateX(%.2fdeg) rotateY(%.2fdeg)",
		t.PerspectivePx, t.RotationX, t.RotationY)
}

// TiltOptions configures one tilt call site.
type TiltOptions struct {
	MaxDegrees      float64 `yaml:"max_degrees"`
	BasePerspective float64 `yaml:"base_perspective"`
	// RestPerspective is the perspective reported by Reset.
	// Zero means BasePerspective.
	RestPerspective float64 `yaml:"rest_perspective"`
	ScaleFactor     float64 `yaml:"scale_factor"`
	// FixedPerspective keeps the perspective at BasePerspective regardless
	// of the rotation.
	FixedPerspective bool `yaml:"fixed_perspective"`
	// Clamped limits rotations to [-MaxDegrees, MaxDegrees] when the pointer
	// is outside the surface.
	Clamped bool `yaml:"clamped"`
	// HoverDepth is the translation depth (px) applied while hovered.
	HoverDepth float64 `yaml:"hover_depth"`
}

// withDefaults fills zero fields.
func (o TiltOptions) withDefaults() TiltOptions {
	if o.MaxDegrees == 0 {
		o.MaxDegrees = DefaultMaxDegrees
	}
	if o.BasePerspective == 0 {
		o.BasePerspective = DefaultBasePerspective
	}
	if o.RestPerspective == 0 {
		o.RestPerspective = o.BasePerspective
	}
	if o.ScaleFactor == 0 {
		o.ScaleFactor = DefaultScaleFactor
	}
	return o
}

// ProfileCardTilt is the large profile card tracker: tracks at a base
// perspective of 1200 and rests at 1000 once the pointer leaves.
func ProfileCardTilt() TiltOptions {
	return TiltOptions{
		MaxDegrees:      15,
		BasePerspective: 1200,
		RestPerspective: 1000,
		ScaleFactor:     10,
		Clamped:         true,
	}
}

// IconTilt is the per-icon tracker with a fixed 1000px perspective.
func IconTilt() TiltOptions {
	return TiltOptions{
		MaxDegrees:       15,
		BasePerspective:  1000,
		FixedPerspective: true,
		HoverDepth:       20,
	}
}

// CardTilt is the project card tracker.
func CardTilt() TiltOptions {
	return TiltOptions{
		MaxDegrees:       15,
		BasePerspective:  1000,
		FixedPerspective: true,
		Clamped:          true,
		HoverDepth:       30,
	}
}

// TiltCalculator converts pointer samples into tilt results for one
// configured call site. It holds no mutable state.
type TiltCalculator struct {
	opts TiltOptions
}

// NewTiltCalculator creates a calculator; zero option fields get defaults.
func NewTiltCalculator(opts TiltOptions) *TiltCalculator {
	return &TiltCalculator{opts: opts.withDefaults()}
}

// Options returns the effective options.
func (c *TiltCalculator) Options() TiltOptions {
	return c.opts
}

// Compute returns the tilt for a pointer sample over a surface.
// A surface without positive area, or non-finite input, yields the neutral
// result instead of dividing by zero.
func (c *TiltCalculator) Compute(sample PointerSample, rect SurfaceRect) TiltResult {
	if !rect.Valid() || !finite(sample.X, sample.Y) {
		return c.neutral()
	}

	cx, cy := rect.Center()
	maxDeg := c.opts.MaxDegrees

	rx := (sample.Y - cy) / (rect.Height / 2) * maxDeg
	ry := (sample.X - cx) / (rect.Width / 2) * -maxDeg

	if c.opts.Clamped {
		limit := math.Abs(maxDeg)
		rx = clamp(rx, -limit, limit)
		ry = clamp(ry, -limit, limit)
	}

	return TiltResult{
		RotationX:     rx,
		RotationY:     ry,
		PerspectivePx: c.perspective(rx, ry),
	}
}

// Reset returns the result applied when the pointer leaves the surface.
func (c *TiltCalculator) Reset() TiltResult {
	return TiltResult{PerspectivePx: c.opts.RestPerspective}
}

// Depth returns the translation depth for the hover state.
func (c *TiltCalculator) Depth(hovered bool) float64 {
	if hovered {
		return c.opts.HoverDepth
	}
	return 0
}

func (c *TiltCalculator) neutral() TiltResult {
	return TiltResult{PerspectivePx: c.opts.BasePerspective}
}

func (c *TiltCalculator) perspective(rx, ry float64) float64 {
	if c.opts.FixedPerspective {
		return c.opts.BasePerspective
	}
	return c.opts.BasePerspective + math.Abs(rx+ry)*c.opts.ScaleFactor
}

// CheckSurface returns ErrPrecondition when rect cannot be tracked.
func CheckSurface(rect SurfaceRect) error {
	if !rect.Valid() {
		return fmt.Errorf("%w: surface %vx%v has no area", ErrPrecondition, rect.Width, rect.Height)
	}
	return nil
}

// ComputeTilt is the one-shot form of TiltCalculator.Compute with default
// options and the given maximum angle. Samples outside rect are clamped, so
// both rotations stay within ±maxDegrees.
func ComputeTilt(sample PointerSample, rect SurfaceRect, maxDegrees float64) TiltResult {
	return NewTiltCalculator(TiltOptions{MaxDegrees: maxDegrees, Clamped: true}).Compute(sample, rect)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

package fx

import (
	"fmt"
	"math"
)

// NumericRange is a clamped linear mapping from an input domain to an
// output domain. Output bounds may be reversed to invert the mapping.
type NumericRange struct {
	InputMin  float64 `yaml:"input_min"`
	InputMax  float64 `yaml:"input_max"`
	OutputMin float64 `yaml:"output_min"`
	OutputMax float64 `yaml:"output_max"`
}

// NewRange builds a validated range.
func NewRange(inMin, inMax, outMin, outMax float64) (NumericRange, error) {
	r := NumericRange{InputMin: inMin, InputMax: inMax, OutputMin: outMin, OutputMax: outMax}
	if err := r.Validate(); err != nil {
		return NumericRange{}, err
	}
	return r, nil
}

// MustRange is like NewRange but panics on a degenerate range.
// Intended for package-level presets.
func MustRange(inMin, inMax, outMin, outMax float64) NumericRange {
	r, err := NewRange(inMin, inMax, outMin, outMax)
	if err != nil {
		panic(err)
	}
	return r
}

// Validate returns ErrConfiguration if the input domain is empty or any
// bound is not finite.
func (r NumericRange) Validate() error {
	if !finite(r.InputMin, r.InputMax, r.OutputMin, r.OutputMax) {
		return fmt.Errorf("%w: range %v has non-finite bounds", ErrConfiguration, r)
	}
	if r.InputMin == r.InputMax {
		return fmt.Errorf("%w: input domain [%v, %v] is empty", ErrConfiguration, r.InputMin, r.InputMax)
	}
	return nil
}

// Map applies the mapping. The range must be valid: a degenerate range is a
// caller bug and panics.
func (r NumericRange) Map(value float64) float64 {
	out, err := Map(value, r)
	if err != nil {
		panic(err)
	}
	return out
}

// Map interpolates value from the input domain into the output domain,
// clamping at the domain edges.
func Map(value float64, r NumericRange) (float64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}

	t := (value - r.InputMin) / (r.InputMax - r.InputMin)
	if math.IsNaN(t) {
		t = 0
	}
	t = clamp(t, 0, 1)

	// Exact endpoints, free of rounding.
	switch t {
	case 0:
		return r.OutputMin, nil
	case 1:
		return r.OutputMax, nil
	}
	return r.OutputMin + t*(r.OutputMax-r.OutputMin), nil
}

// ParallaxRange maps scroll 0..500 to a vertical offset of 0..200.
func ParallaxRange() NumericRange {
	return NumericRange{InputMin: 0, InputMax: 500, OutputMin: 0, OutputMax: 200}
}

// FadeRange maps scroll 0..200 to an opacity of 1..0.
func FadeRange() NumericRange {
	return NumericRange{InputMin: 0, InputMax: 200, OutputMin: 1, OutputMax: 0}
}

// DeltaTilt maps a pointer offset from a surface centre to rotations through
// two clamped ranges, the way the project cards do it: a vertical offset of
// -100..100 gives rotateX -15..15 and a horizontal offset gives rotateY
// 15..-15.
type DeltaTilt struct {
	X NumericRange `yaml:"x"`
	Y NumericRange `yaml:"y"`
}

// DefaultDeltaTilt returns the project card mapping.
func DefaultDeltaTilt() DeltaTilt {
	return DeltaTilt{
		Y: NumericRange{InputMin: -100, InputMax: 100, OutputMin: -15, OutputMax: 15},
		X: NumericRange{InputMin: -100, InputMax: 100, OutputMin: 15, OutputMax: -15},
	}
}

// Validate checks both ranges.
func (d DeltaTilt) Validate() error {
	if err := d.X.Validate(); err != nil {
		return fmt.Errorf("delta tilt x: %w", err)
	}
	if err := d.Y.Validate(); err != nil {
		return fmt.Errorf("delta tilt y: %w", err)
	}
	return nil
}

// Compute returns rotations for a pointer sample over rect.
// Perspective is left at zero; callers apply their own fixed value.
func (d DeltaTilt) Compute(sample PointerSample, rect SurfaceRect) TiltResult {
	if !rect.Valid() || !finite(sample.X, sample.Y) {
		return TiltResult{}
	}
	cx, cy := rect.Center()
	return TiltResult{
		RotationX: d.Y.Map(sample.Y - cy),
		RotationY: d.X.Map(sample.X - cx),
	}
}

package fx

import "github.com/charmbracelet/harmonica"

// TiltSpring eases a displayed tilt towards a moving target with a damped
// spring, so pointer jumps and resets animate instead of snapping.
type TiltSpring struct {
	spring  harmonica.Spring
	current TiltResult
	velX    float64
	velY    float64
	velP    float64
}

// NewTiltSpring creates a spring stepped fps times per second.
// frequency is the angular frequency; damping below 1 overshoots.
func NewTiltSpring(fps int, frequency, damping float64, start TiltResult) *TiltSpring {
	if fps <= 0 {
		fps = 60
	}
	return &TiltSpring{
		spring:  harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		current: start,
	}
}

// Step advances one frame towards target and returns the displayed tilt.
func (s *TiltSpring) Step(target TiltResult) TiltResult {
	s.current.RotationX, s.velX = s.spring.Update(s.current.RotationX, s.velX, target.RotationX)
	s.current.RotationY, s.velY = s.spring.Update(s.current.RotationY, s.velY, target.RotationY)
	s.current.PerspectivePx, s.velP = s.spring.Update(s.current.PerspectivePx, s.velP, target.PerspectivePx)
	return s.current
}

// Current returns the last displayed tilt.
func (s *TiltSpring) Current() TiltResult {
	return s.current
}

// Settled reports whether the spring is within eps of target and nearly
// at rest.
func (s *TiltSpring) Settled(target TiltResult, eps float64) bool {
	near := func(a, b float64) bool { return a-b < eps && b-a < eps }
	return near(s.current.RotationX, target.RotationX) &&
		near(s.current.RotationY, target.RotationY) &&
		near(s.current.PerspectivePx, target.PerspectivePx) &&
		near(s.velX, 0) && near(s.velY, 0) && near(s.velP, 0)
}

// Snap jumps to target and clears velocity.
func (s *TiltSpring) Snap(target TiltResult) {
	s.current = target
	s.velX, s.velY, s.velP = 0, 0, 0
}

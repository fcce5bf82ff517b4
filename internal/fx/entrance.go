package fx

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// EntranceFrame is the mount animation state layered over a surface's tilt.
type EntranceFrame struct {
	RotationX float64
	RotationY float64
	Scale     float64
	Opacity   float64
}

// Apply adds the entrance rotation to a tilt.
func (f EntranceFrame) Apply(t TiltResult) TiltResult {
	t.RotationX += f.RotationX
	t.RotationY += f.RotationY
	return t
}

// Entrance animates a surface from rotateX 20, rotateY -20, scale 0.9 and
// opacity 0 to rest when it first appears.
type Entrance struct {
	rotX    *gween.Tween
	rotY    *gween.Tween
	scale   *gween.Tween
	opacity *gween.Tween
	frame   EntranceFrame
	done    bool
}

// NewEntrance creates an entrance lasting duration seconds.
func NewEntrance(duration float32) *Entrance {
	if duration <= 0 {
		duration = 0.8
	}
	return &Entrance{
		rotX:    gween.New(20, 0, duration, ease.OutCubic),
		rotY:    gween.New(-20, 0, duration, ease.OutCubic),
		scale:   gween.New(0.9, 1, duration, ease.OutBack),
		opacity: gween.New(0, 1, duration, ease.Linear),
		frame:   EntranceFrame{RotationX: 20, RotationY: -20, Scale: 0.9},
	}
}

// Update advances the entrance by dt seconds.
func (e *Entrance) Update(dt float32) EntranceFrame {
	if e.done {
		return e.frame
	}

	rx, doneX := e.rotX.Update(dt)
	ry, doneY := e.rotY.Update(dt)
	sc, doneS := e.scale.Update(dt)
	op, doneO := e.opacity.Update(dt)

	e.frame = EntranceFrame{
		RotationX: float64(rx),
		RotationY: float64(ry),
		Scale:     float64(sc),
		Opacity:   float64(op),
	}
	e.done = doneX && doneY && doneS && doneO
	if e.done {
		e.frame = EntranceFrame{Scale: 1, Opacity: 1}
	}
	return e.frame
}

// Frame returns the current frame without advancing.
func (e *Entrance) Frame() EntranceFrame {
	return e.frame
}

// Done reports whether the entrance has finished.
func (e *Entrance) Done() bool {
	return e.done
}

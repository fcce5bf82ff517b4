package fx

import "testing"

func TestTiltSpringSettlesOnTarget(t *testing.T) {
	start := TiltResult{PerspectivePx: 1000}
	target := TiltResult{RotationX: 10, RotationY: -12, PerspectivePx: 1220}
	s := NewTiltSpring(60, 6, 1, start)

	first := s.Step(target)
	if first.RotationX <= 0 || first.RotationX >= 10 {
		t.Errorf("first Step() RotationX = %v, expected strictly between 0 and 10", first.RotationX)
	}

	for i := 0; i < 600; i++ {
		s.Step(target)
	}
	if !s.Settled(target, 0.01) {
		t.Errorf("spring not settled after 600 frames: %+v", s.Current())
	}

	s.Snap(start)
	if s.Current() != start {
		t.Errorf("Current() after Snap = %+v, expected %+v", s.Current(), start)
	}
}

func TestEntranceRunsToRest(t *testing.T) {
	e := NewEntrance(0.8)
	if e.Frame().RotationX != 20 || e.Frame().RotationY != -20 {
		t.Errorf("initial frame = %+v, expected rotate (20, -20)", e.Frame())
	}

	mid := e.Update(0.4)
	if mid.RotationX <= 0 || mid.RotationX >= 20 {
		t.Errorf("mid RotationX = %v, expected strictly between 0 and 20", mid.RotationX)
	}
	if e.Done() {
		t.Error("entrance should not be done halfway")
	}

	end := e.Update(1)
	if !e.Done() {
		t.Fatal("entrance should be done after its duration")
	}
	if end != (EntranceFrame{Scale: 1, Opacity: 1}) {
		t.Errorf("final frame = %+v, expected rest", end)
	}

	applied := end.Apply(TiltResult{RotationX: 3, RotationY: 4, PerspectivePx: 1000})
	if applied.RotationX != 3 || applied.RotationY != 4 {
		t.Errorf("Apply() at rest = %+v, expected tilt unchanged", applied)
	}
}

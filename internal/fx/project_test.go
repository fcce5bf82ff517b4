package fx

import (
	"math"
	"testing"
)

func TestProjectIdentityWithoutRotation(t *testing.T) {
	flat := TiltResult{PerspectivePx: 1000}
	for _, p := range [][2]float64{{0, 0}, {100, -50}, {-30, 80}} {
		x, y := Project(p[0], p[1], 0, flat)
		if !approx(x, p[0]) || !approx(y, p[1]) {
			t.Errorf("Project(%v, %v) = (%v, %v), expected unchanged", p[0], p[1], x, y)
		}
	}
}

func TestProjectLeansTowardsPointer(t *testing.T) {
	// Pointer on the right: right edge pushed away, so it shrinks while the
	// left edge grows.
	tilt := ComputeTilt(PointerSample{X: 200, Y: 100}, SurfaceRect{Width: 200, Height: 200}, 15)

	rightX, _ := Project(100, 0, 0, tilt)
	leftX, _ := Project(-100, 0, 0, tilt)
	if math.Abs(rightX) >= math.Abs(leftX) {
		t.Errorf("right edge |%v| should be smaller than left edge |%v|", rightX, leftX)
	}

	// Pointer at the bottom: bottom edge pushed away.
	tilt = ComputeTilt(PointerSample{X: 100, Y: 200}, SurfaceRect{Width: 200, Height: 200}, 15)
	_, bottomY := Project(0, 100, 0, tilt)
	_, topY := Project(0, -100, 0, tilt)
	if math.Abs(bottomY) >= math.Abs(topY) {
		t.Errorf("bottom edge |%v| should be smaller than top edge |%v|", bottomY, topY)
	}
}

func TestProjectDepthEnlarges(t *testing.T) {
	flat := TiltResult{PerspectivePx: 1000}
	x, _ := Project(100, 0, 20, flat)
	if x <= 100 {
		t.Errorf("Project with depth 20 = %v, expected > 100", x)
	}
}

func TestProjectWithoutPerspectiveIsOrthographic(t *testing.T) {
	x, y := Project(10, 10, 0, TiltResult{RotationX: 60})
	if !approx(x, 10) || !approx(y, 5) {
		t.Errorf("Project() = (%v, %v), expected (10, 5)", x, y)
	}
}

func TestProjectQuarterTurnFoldsEdge(t *testing.T) {
	// A right angle about Y puts the surface edge-on to the viewer.
	x, y := Project(100, 20, 0, TiltResult{RotationY: -90})
	if !approx(x, 0) || !approx(y, 20) {
		t.Errorf("Project() = (%v, %v), expected (0, 20)", x, y)
	}

	// With perspective the right edge, pushed 100px away, shrinks towards
	// the centre line.
	_, y = Project(100, 20, 0, TiltResult{RotationY: -90, PerspectivePx: 1000})
	if !approx(y, 20*1000.0/1100) {
		t.Errorf("Project() y = %v, expected %v", y, 20*1000.0/1100)
	}
}

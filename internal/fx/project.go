package fx

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// minDepth keeps the perspective divisor away from zero when a point swings
// past the viewer.
const minDepth = 1.0

// Project maps a point on a surface to the viewer plane after applying the
// tilt and its perspective. x and y are px relative to the surface centre
// with y pointing down; depth translates the surface towards the viewer.
//
// A positive RotationX pushes the bottom edge away from the viewer and a
// negative RotationY pushes the right edge away, so the surface leans
// towards the pointer that produced the tilt.
func Project(x, y, depth float64, t TiltResult) (float64, float64) {
	v := surfaceMatrix(depth, t).Mul4x1(mgl64.Vec4{x, y, 0, 1})

	p := t.PerspectivePx
	if p <= 0 {
		return v.X(), v.Y()
	}
	f := p / math.Max(p-v.Z(), minDepth)
	return v.X() * f, v.Y() * f
}

// surfaceMatrix is the model transform of a tilted surface: rotate about X,
// then Y, then translate by depth. With y down and z towards the viewer the
// rotations run opposite to mgl64's right-handed angles.
func surfaceMatrix(depth float64, t TiltResult) mgl64.Mat4 {
	rx := mgl64.HomogRotate3DX(-mgl64.DegToRad(t.RotationX))
	ry := mgl64.HomogRotate3DY(-mgl64.DegToRad(t.RotationY))
	return mgl64.Translate3D(0, 0, depth).Mul4(ry).Mul4(rx)
}

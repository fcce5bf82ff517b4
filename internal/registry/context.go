package registry

import (
	"github.com/vovakirdan/tui-folio/internal/content"
	"github.com/vovakirdan/tui-folio/internal/core"
	"github.com/vovakirdan/tui-folio/internal/fx"
)

// Terminal cells are mapped to a nominal pixel size so tilt math written
// for pixel-space surfaces works on a cell grid.
const (
	CellPxW = 8.0
	CellPxH = 16.0
)

// SurfaceKind selects the tilt preset applied to a surface.
type SurfaceKind int

const (
	SurfaceProfile SurfaceKind = iota
	SurfaceIcon
	SurfaceCard
)

// String returns a human-readable name for the kind.
func (k SurfaceKind) String() string {
	switch k {
	case SurfaceProfile:
		return "profile"
	case SurfaceIcon:
		return "icon"
	case SurfaceCard:
		return "card"
	default:
		return "unknown"
	}
}

// Surface is a tilt-tracked rectangle.
type Surface struct {
	ID   string
	Kind SurfaceKind
	Rect core.Rect
}

// Motion is the live transform of one surface.
type Motion struct {
	Tilt  fx.TiltResult
	Depth float64
	// Scale and Opacity come from the entrance animation; zero Scale means 1.
	Scale   float64
	Opacity float64
}

// RenderContext carries everything a section may draw from.
type RenderContext struct {
	Width     int
	Portfolio content.Portfolio

	// Motions maps surface IDs to their current transform. Missing
	// surfaces are drawn flat.
	Motions map[string]Motion
	// Hovered is the ID of the surface under the pointer, if any.
	Hovered string

	// HeroOffset is the parallax shift in rows; HeroOpacity is in [0, 1].
	HeroOffset  int
	HeroOpacity float64

	// Frame counts render ticks, for cursor blinks and typing effects.
	Frame int
}

// MotionOf returns the motion of a surface, flat when unknown.
func (c RenderContext) MotionOf(id string) Motion {
	if m, ok := c.Motions[id]; ok {
		return m
	}
	return Motion{Scale: 1, Opacity: 1}
}

// SurfaceRect converts a cell rect into the pixel space used by fx.
func SurfaceRect(r core.Rect) fx.SurfaceRect {
	return fx.SurfaceRect{
		Left:   float64(r.X) * CellPxW,
		Top:    float64(r.Y) * CellPxH,
		Width:  float64(r.W) * CellPxW,
		Height: float64(r.H) * CellPxH,
	}
}

// SampleAt converts a pointer cell into a pixel sample at the cell centre.
func SampleAt(x, y int) fx.PointerSample {
	return fx.PointerSample{
		X: (float64(x) + 0.5) * CellPxW,
		Y: (float64(y) + 0.5) * CellPxH,
	}
}

package registry

import (
	"testing"

	"github.com/vovakirdan/tui-folio/internal/core"
)

type stubSection struct {
	id    string
	order int
}

func (s stubSection) ID() string { return s.id }
func (s stubSection) Title() string { return "Stub " + s.id }
func (s stubSection) Order() int { return s.order }
func (s stubSection) Height(RenderContext) int { return 1 }
func (s stubSection) Surfaces(RenderContext) []Surface { return nil }
func (s stubSection) Render(RenderContext, *core.Screen) {}

func TestRegisterListCreate(t *testing.T) {
	Register("stub-b", func() Section { return stubSection{id: "stub-b", order: 5} })
	Register("stub-a", func() Section { return stubSection{id: "stub-a", order: 5} })
	Register("stub-first", func() Section { return stubSection{id: "stub-first", order: -10} })

	list := List()
	if len(list) < 3 {
		t.Fatalf("List() returned %d sections, expected at least 3", len(list))
	}
	if list[0].ID != "stub-first" {
		t.Errorf("List()[0].ID = %q, expected stub-first", list[0].ID)
	}

	// Equal orders fall back to ID order.
	idx := map[string]int{}
	for i, info := range list {
		idx[info.ID] = i
	}
	if idx["stub-a"] > idx["stub-b"] {
		t.Error("stub-a should come before stub-b")
	}
	if list[idx["stub-a"]].Title != "Stub stub-a" {
		t.Errorf("Title = %q, expected %q", list[idx["stub-a"]].Title, "Stub stub-a")
	}

	s, err := Create("stub-a")
	if err != nil || s.ID() != "stub-a" {
		t.Errorf("Create(stub-a) = %v, %v", s, err)
	}
	if _, err := Create("nope"); err == nil {
		t.Error("Create(nope) should fail")
	}
	if !Exists("stub-b") || Exists("nope") {
		t.Error("Exists() reported the wrong result")
	}
	if got := len(All()); got != len(list) {
		t.Errorf("len(All()) = %d, expected %d", got, len(list))
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Section { return stubSection{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("stub-dup", func() Section { return stubSection{id: "stub-dup"} })
}

func TestPixelConversions(t *testing.T) {
	r := SurfaceRect(core.NewRect(2, 3, 10, 4))
	if r.Left != 16 || r.Top != 48 || r.Width != 80 || r.Height != 64 {
		t.Errorf("SurfaceRect() = %+v, expected {16 48 80 64}", r)
	}

	s := SampleAt(2, 3)
	if s.X != 20 || s.Y != 56 {
		t.Errorf("SampleAt(2, 3) = %+v, expected {20 56}", s)
	}
	if !r.Contains(s) {
		t.Error("a sample in the first cell should be inside the rect")
	}
}

func TestMotionOfDefaultsFlat(t *testing.T) {
	ctx := RenderContext{}
	m := ctx.MotionOf("missing")
	if m.Scale != 1 || m.Opacity != 1 || m.Tilt.RotationX != 0 {
		t.Errorf("MotionOf(missing) = %+v, expected flat", m)
	}
}

package sections

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-folio/internal/content"
	"github.com/vovakirdan/tui-folio/internal/core"
	"github.com/vovakirdan/tui-folio/internal/fx"
	"github.com/vovakirdan/tui-folio/internal/registry"
)

func testContext(t *testing.T, width int) registry.RenderContext {
	t.Helper()
	p, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default() failed: %v", err)
	}
	return registry.RenderContext{Width: width, Portfolio: p, HeroOpacity: 1}
}

func TestRegisteredOrder(t *testing.T) {
	expected := []string{"home", "projects", "journey", "skills", "about", "contact", "footer"}

	list := registry.List()
	if len(list) != len(expected) {
		t.Fatalf("List() returned %d sections, expected %d", len(list), len(expected))
	}
	for i, info := range list {
		if info.ID != expected[i] {
			t.Errorf("List()[%d].ID = %q, expected %q", i, info.ID, expected[i])
		}
	}
}

func TestTypedRole(t *testing.T) {
	roles := []string{"ab", "xyz"}
	// "ab" spans 2*2+12 = 16 steps, "xyz" 2*3+12 = 18.
	tests := []struct {
		step     int
		expected string
	}{
		{0, "a"},
		{1, "ab"},
		{13, "ab"},
		{14, "a"},
		{15, ""},
		{16, "x"},
		{18, "xyz"},
		{33, ""},
		{34, "a"}, // wraps around
	}

	for _, tc := range tests {
		got := TypedRole(roles, tc.step*framesPerChar)
		if got != tc.expected {
			t.Errorf("TypedRole(step %d) = %q, expected %q", tc.step, got, tc.expected)
		}
	}

	if got := TypedRole(nil, 10); got != "" {
		t.Errorf("TypedRole(nil) = %q, expected empty", got)
	}
}

func TestLevelBar(t *testing.T) {
	tests := []struct {
		level, width int
		expected     string
	}{
		{0, 4, "░░░░"},
		{50, 4, "██░░"},
		{100, 4, "████"},
		{150, 4, "████"},
		{-5, 4, "░░░░"},
		{50, 0, ""},
	}
	for _, tc := range tests {
		if got := LevelBar(tc.level, tc.width); got != tc.expected {
			t.Errorf("LevelBar(%d, %d) = %q, expected %q", tc.level, tc.width, got, tc.expected)
		}
	}
}

func TestInitials(t *testing.T) {
	tests := map[string]string{
		"Alex Morgan":        "A M",
		"ada":                "A",
		"jean luc picard":    "J L",
		"":                   "",
		"  élodie  dupont  ": "É D",
	}
	for in, expected := range tests {
		if got := Initials(in); got != expected {
			t.Errorf("Initials(%q) = %q, expected %q", in, got, expected)
		}
	}
}

func TestCardGridColumns(t *testing.T) {
	tests := []struct {
		width    int
		expected int // cards on the first row
	}{
		{100, 3},
		{70, 2},
		{40, 1},
	}
	for _, tc := range tests {
		rects := CardGrid(core.NewRect(0, 0, tc.width, 0), 4)
		row0 := 0
		for _, r := range rects {
			if r.Y == 0 {
				row0++
			}
			if r.Right() > tc.width {
				t.Errorf("width %d: card %+v overflows", tc.width, r)
			}
		}
		if row0 != tc.expected {
			t.Errorf("width %d: %d cards on first row, expected %d", tc.width, row0, tc.expected)
		}
	}
}

func TestComposePage(t *testing.T) {
	for _, width := range []int{120, 80, 50} {
		ctx := testContext(t, width)
		page := Compose(ctx, registry.All())

		if len(page.Sections) != 7 {
			t.Fatalf("width %d: %d sections, expected 7", width, len(page.Sections))
		}
		y := 0
		for _, pl := range page.Sections {
			if pl.Top != y {
				t.Errorf("width %d: %s top = %d, expected %d", width, pl.Section.ID(), pl.Top, y)
			}
			if pl.Height <= 0 {
				t.Errorf("width %d: %s height = %d", width, pl.Section.ID(), pl.Height)
			}
			y += pl.Height
		}
		if page.Height != y {
			t.Errorf("width %d: page height = %d, expected %d", width, page.Height, y)
		}

		// 3 featured cards + 10 skills + profile.
		if len(page.Surfaces) != 14 {
			t.Errorf("width %d: %d surfaces, expected 14", width, len(page.Surfaces))
		}
		for _, sf := range page.Surfaces {
			if sf.Rect.X < 0 || sf.Rect.Right() > width {
				t.Errorf("width %d: surface %s at %+v leaves the page", width, sf.ID, sf.Rect)
			}
		}

		scr := page.Render(ctx)
		if scr.Height() != page.Height || scr.Width() != width {
			t.Errorf("width %d: screen %dx%d, expected %dx%d", width, scr.Width(), scr.Height(), width, page.Height)
		}
		text := scr.String()
		for _, want := range []string{ctx.Portfolio.Profile.Name, "Featured Projects", "My Journey", "Skills", "About Me", "Get In Touch"} {
			if !strings.Contains(text, want) {
				t.Errorf("width %d: page does not contain %q", width, want)
			}
		}
	}
}

func TestPageLookups(t *testing.T) {
	ctx := testContext(t, 100)
	page := Compose(ctx, registry.All())

	top, ok := page.Anchor("about")
	if !ok {
		t.Fatal("Anchor(about) not found")
	}
	if got := page.SectionAt(top); got != "about" {
		t.Errorf("SectionAt(%d) = %q, expected about", top, got)
	}
	if _, ok := page.Anchor("missing"); ok {
		t.Error("Anchor(missing) should not be found")
	}

	var profile registry.Surface
	for _, sf := range page.Surfaces {
		if sf.ID == ProfileSurfaceID {
			profile = sf
		}
	}
	if profile.Rect.Y < top {
		t.Errorf("profile rect %+v should sit inside the about section at %d", profile.Rect, top)
	}
	got, ok := page.SurfaceAt(profile.Rect.X+1, profile.Rect.Y+1)
	if !ok || got.ID != ProfileSurfaceID || got.Kind != registry.SurfaceProfile {
		t.Errorf("SurfaceAt(inside profile) = %+v, %v", got, ok)
	}
	if _, ok := page.SurfaceAt(0, 0); ok {
		t.Error("SurfaceAt(0, 0) should be empty")
	}
}

func TestDrawTilted(t *testing.T) {
	r := core.NewRect(5, 2, 20, 8)

	flat := core.NewScreen(40, 14)
	drawTilted(flat, r, registry.Motion{Scale: 1, Opacity: 1}, core.ColorWhite)
	if flat.Get(5, 2) != '╭' || flat.Get(24, 9) != '╯' {
		t.Errorf("flat card corners = %q %q, expected a plain box", flat.Get(5, 2), flat.Get(24, 9))
	}

	tilted := core.NewScreen(40, 14)
	m := registry.Motion{
		Tilt:    fx.TiltResult{RotationX: 15, RotationY: -15, PerspectivePx: 400},
		Scale:   1,
		Opacity: 1,
	}
	drawTilted(tilted, r, m, core.ColorWhite)
	if tilted.String() == flat.String() {
		t.Error("a tilted card should not draw like a flat one")
	}
}

func TestHeroFades(t *testing.T) {
	ctx := testContext(t, 80)
	hero := &Hero{}

	bright := core.NewScreen(80, hero.Height(ctx))
	hero.Render(ctx, bright)

	ctx.HeroOpacity = 0.25
	dim := core.NewScreen(80, hero.Height(ctx))
	hero.Render(ctx, dim)

	if bright.String() != dim.String() {
		t.Error("fading should not change the hero text")
	}
	found := false
	for x := 0; x < 80; x++ {
		if c := dim.GetCell(x, 3); c.Rune != ' ' {
			found = true
			if c.Color != core.Fade(0.25) {
				t.Errorf("faded cell color = %v, expected %v", c.Color, core.Fade(0.25))
			}
		}
	}
	if !found {
		t.Error("hero name row is empty")
	}
}

func TestHeroParallaxShiftsDown(t *testing.T) {
	ctx := testContext(t, 80)
	hero := &Hero{}

	base := core.NewScreen(80, hero.Height(ctx))
	hero.Render(ctx, base)

	ctx.HeroOffset = 2
	shifted := core.NewScreen(80, hero.Height(ctx))
	hero.Render(ctx, shifted)

	if base.Row(3) != shifted.Row(5) {
		t.Errorf("shifted row 5 = %q, expected %q", shifted.Row(5), base.Row(3))
	}
}

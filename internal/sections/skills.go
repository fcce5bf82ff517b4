package sections

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-folio/internal/content"
	"github.com/vovakirdan/tui-folio/internal/core"
	"github.com/vovakirdan/tui-folio/internal/registry"
)

func init() {
	registry.Register("skills", func() registry.Section { return &Skills{} })
}

// Icon tile size in cells.
const (
	iconW = 14
	iconH = 5
)

// SkillSurfaceID returns the surface ID of a skill icon.
func SkillSurfaceID(name string) string {
	return "skill:" + name
}

// Skills shows the skill areas and an icon grid where every icon tilts on
// its own.
type Skills struct{}

func (s *Skills) ID() string    { return "skills" }
func (s *Skills) Title() string { return "Skills" }
func (s *Skills) Order() int    { return 30 }

func (s *Skills) Height(ctx registry.RenderContext) int {
	areas := s.areas(ctx)
	rects := iconGrid(frameOf(ctx).rect(headingRows+areas.height()), len(ctx.Portfolio.Skills))
	return gridBottom(rects, headingRows+areas.height()) + 1
}

func (s *Skills) Surfaces(ctx registry.RenderContext) []registry.Surface {
	skills := ctx.Portfolio.Skills
	rects := iconGrid(frameOf(ctx).rect(headingRows+s.areas(ctx).height()), len(skills))
	out := make([]registry.Surface, len(skills))
	for i, sk := range skills {
		out[i] = registry.Surface{ID: SkillSurfaceID(sk.Name), Kind: registry.SurfaceIcon, Rect: rects[i]}
	}
	return out
}

func (s *Skills) Render(ctx registry.RenderContext, dst *core.Screen) {
	y := heading(dst, ctx, 0, "Skills")
	areas := s.areas(ctx)
	areas.draw(dst, y)

	skills := ctx.Portfolio.Skills
	rects := iconGrid(frameOf(ctx).rect(y+areas.height()), len(skills))
	for i, sk := range skills {
		id := SkillSurfaceID(sk.Name)
		drawIcon(dst, rects[i], sk, ctx.MotionOf(id), ctx.Hovered == id)
	}
}

func (s *Skills) areas(ctx registry.RenderContext) *lineBuf {
	f := frameOf(ctx)
	var b lineBuf
	for _, a := range ctx.Portfolio.SkillAreas {
		line := fmt.Sprintf("%s: %s", a.Title, a.Description)
		b.add(f.x, truncate(line, f.w), core.ColorGray)
	}
	if b.height() > 0 {
		b.blank()
	}
	return &b
}

func drawIcon(dst *core.Screen, r core.Rect, sk content.Skill, m registry.Motion, hovered bool) {
	border := core.ColorDim
	if hovered {
		border = core.ColorTeal
	}
	dx, dy := drawTilted(dst, r, m, border)
	area := core.NewRect(r.X+1+dx, 0, r.W-2, 1)
	op := opacityOf(m)

	dst.DrawTextCentered(area, r.Y+1+dy, sk.Icon, tinted(core.ColorPurple, op))
	dst.DrawTextCentered(area, r.Y+2+dy, truncate(sk.Name, r.W-2), tinted(core.ColorWhite, op))
	dst.DrawTextCentered(area, r.Y+3+dy, LevelBar(sk.Level, r.W-4), tinted(core.ColorGreen, op))
}

// LevelBar renders a 0-100 level as a bar of width cells.
func LevelBar(level, width int) string {
	if width <= 0 {
		return ""
	}
	filled := core.Clamp(level, 0, 100) * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func iconGrid(area core.Rect, n int) []core.Rect {
	const gap = 2
	cols := max((area.W+gap)/(iconW+gap), 1)
	used := cols*(iconW+gap) - gap
	left := area.X + max((area.W-used)/2, 0)

	rects := make([]core.Rect, n)
	for i := range rects {
		col, row := i%cols, i/cols
		rects[i] = core.NewRect(left+col*(iconW+gap), area.Y+row*(iconH+1), iconW, iconH)
	}
	return rects
}

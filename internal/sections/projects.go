package sections

import (
	"strings"

	"github.com/vovakirdan/tui-folio/internal/content"
	"github.com/vovakirdan/tui-folio/internal/core"
	"github.com/vovakirdan/tui-folio/internal/registry"
)

func init() {
	registry.Register("projects", func() registry.Section { return &Projects{} })
}

// CardHeight is the row count of a project card.
const CardHeight = 8

// ProjectSurfaceID returns the surface ID of a project card.
func ProjectSurfaceID(id string) string {
	return "project:" + id
}

// Projects shows the featured project cards.
type Projects struct{}

func (p *Projects) ID() string    { return "projects" }
func (p *Projects) Title() string { return "Projects" }
func (p *Projects) Order() int    { return 10 }

func (p *Projects) Height(ctx registry.RenderContext) int {
	rects := CardGrid(frameOf(ctx).rect(headingRows), len(ctx.Portfolio.Featured()))
	return gridBottom(rects, headingRows) + 2
}

func (p *Projects) Surfaces(ctx registry.RenderContext) []registry.Surface {
	featured := ctx.Portfolio.Featured()
	rects := CardGrid(frameOf(ctx).rect(headingRows), len(featured))
	out := make([]registry.Surface, len(featured))
	for i, pr := range featured {
		out[i] = registry.Surface{ID: ProjectSurfaceID(pr.ID), Kind: registry.SurfaceCard, Rect: rects[i]}
	}
	return out
}

func (p *Projects) Render(ctx registry.RenderContext, dst *core.Screen) {
	heading(dst, ctx, 0, "Featured Projects")
	featured := ctx.Portfolio.Featured()
	rects := CardGrid(frameOf(ctx).rect(headingRows), len(featured))
	for i, pr := range featured {
		id := ProjectSurfaceID(pr.ID)
		DrawProjectCard(dst, rects[i], pr, ctx.MotionOf(id), ctx.Hovered == id)
	}

	f := frameOf(ctx)
	dst.DrawTextCentered(core.NewRect(f.x, 0, f.w, 1), gridBottom(rects, headingRows), "press p to see all projects", core.ColorDim)
}

// DrawProjectCard draws one project card under a motion.
func DrawProjectCard(dst *core.Screen, r core.Rect, pr content.Project, m registry.Motion, hovered bool) {
	border := core.ColorIndigo
	if hovered {
		border = core.ColorPink
	}
	dx, dy := drawTilted(dst, r, m, border)

	inner := r.W - 4
	x := r.X + 2 + dx
	y := r.Y + 1 + dy
	op := opacityOf(m)

	dst.DrawText(x, y, truncate(pr.Title, inner), tinted(core.ColorWhite, op))
	dst.DrawText(x, y+1, truncate(pr.Category, inner), tinted(core.ColorTeal, op))
	for i, l := range wrap(pr.Description, inner) {
		if i == 3 {
			break
		}
		dst.DrawText(x, y+2+i, l, tinted(core.ColorGray, op))
	}
	if len(pr.Tech) > 0 {
		dst.DrawText(x, y+5, truncate(strings.Join(pr.Tech, " · "), inner), tinted(core.ColorDim, op))
	}
}

// CardGrid lays out n cards of CardHeight in area, using as many columns as
// fit (up to three).
func CardGrid(area core.Rect, n int) []core.Rect {
	cols := 1
	switch {
	case area.W >= 90:
		cols = 3
	case area.W >= 60:
		cols = 2
	}
	const gap = 2
	w := (area.W - gap*(cols-1)) / cols

	rects := make([]core.Rect, n)
	for i := range rects {
		col, row := i%cols, i/cols
		rects[i] = core.NewRect(area.X+col*(w+gap), area.Y+row*(CardHeight+1), w, CardHeight)
	}
	return rects
}

func gridBottom(rects []core.Rect, top int) int {
	bottom := top
	for _, r := range rects {
		bottom = max(bottom, r.Bottom()+1)
	}
	return bottom
}

func (f frame) rect(y int) core.Rect {
	return core.NewRect(f.x, y, f.w, 0)
}

// Package sections implements the home page sections. Each section
// registers itself with the registry in init() and draws into a
// core.Screen without knowing about the terminal.
package sections

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-folio/internal/core"
	"github.com/vovakirdan/tui-folio/internal/fx"
	"github.com/vovakirdan/tui-folio/internal/registry"
)

// Layout limits.
const (
	maxContentWidth = 100
	sidePadding     = 2
)

// frame is the usable column span inside the terminal width.
type frame struct {
	x, w int
}

func frameOf(ctx registry.RenderContext) frame {
	w := min(max(ctx.Width-2*sidePadding, 1), maxContentWidth)
	return frame{x: max((ctx.Width-w)/2, 0), w: w}
}

// wrap breaks text into lines of at most width cells.
func wrap(text string, width int) []string {
	if width <= 0 || text == "" {
		return nil
	}
	wrapped := ansi.Wordwrap(text, width, "")
	lines := strings.Split(wrapped, "\n")
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "")
	}
	return lines
}

// truncate cuts text to width cells, marking the cut with an ellipsis.
func truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(text, width, "…")
}

// heading draws a centred section title with an underline and returns the
// next free row.
func heading(dst *core.Screen, ctx registry.RenderContext, y int, title string) int {
	f := frameOf(ctx)
	area := core.NewRect(f.x, 0, f.w, 1)
	dst.DrawTextCentered(area, y, title, core.ColorPurple)
	n := min(ansi.StringWidth(title)+4, f.w)
	dst.DrawTextCentered(area, y+1, strings.Repeat("━", n), core.ColorIndigo)
	return y + 3
}

// headingRows is the height used by heading.
const headingRows = 3

// tinted returns c faded by opacity.
func tinted(c core.Color, opacity float64) core.Color {
	if opacity >= 0.99 {
		return c
	}
	return core.Fade(opacity)
}

// drawTilted draws the outline of r as seen under m: every corner is
// projected through the tilt and the edges are joined with lines. It
// returns the projected shift of the centre so contents can follow.
func drawTilted(dst *core.Screen, r core.Rect, m registry.Motion, c core.Color) (int, int) {
	if r.W < 2 || r.H < 2 {
		return 0, 0
	}

	flat := m.Tilt.RotationX == 0 && m.Tilt.RotationY == 0 && m.Depth == 0 && (m.Scale == 0 || m.Scale == 1)
	c = tinted(c, opacityOf(m))
	if flat {
		dst.DrawBox(r, c)
		return 0, 0
	}

	scale := m.Scale
	if scale == 0 {
		scale = 1
	}
	cx := float64(r.X) + float64(r.W-1)/2
	cy := float64(r.Y) + float64(r.H-1)/2
	hw := float64(r.W-1) / 2 * registry.CellPxW * scale
	hh := float64(r.H-1) / 2 * registry.CellPxH * scale

	corner := func(x, y float64) (int, int) {
		px, py := fx.Project(x, y, m.Depth, m.Tilt)
		return int(math.Round(cx + px/registry.CellPxW)), int(math.Round(cy + py/registry.CellPxH))
	}
	tlx, tly := corner(-hw, -hh)
	trx, try := corner(hw, -hh)
	brx, bry := corner(hw, hh)
	blx, bly := corner(-hw, hh)

	dst.DrawLine(tlx, tly, trx, try, '─', c)
	dst.DrawLine(blx, bly, brx, bry, '─', c)
	dst.DrawLine(tlx, tly, blx, bly, '│', c)
	dst.DrawLine(trx, try, brx, bry, '│', c)
	dst.Set(tlx, tly, '╭', c)
	dst.Set(trx, try, '╮', c)
	dst.Set(blx, bly, '╰', c)
	dst.Set(brx, bry, '╯', c)

	ox, oy := corner(0, 0)
	return ox - int(math.Round(cx)), oy - int(math.Round(cy))
}

func opacityOf(m registry.Motion) float64 {
	if m.Opacity == 0 && m.Scale == 0 {
		return 1
	}
	return m.Opacity
}

// lineBuf collects rows for sections that are plain text flows.
type lineBuf struct {
	rows []row
}

type row struct {
	x     int
	text  string
	color core.Color
}

func (b *lineBuf) add(x int, text string, c core.Color) {
	b.rows = append(b.rows, row{x: x, text: text, color: c})
}

func (b *lineBuf) blank() {
	b.rows = append(b.rows, row{})
}

func (b *lineBuf) paragraph(x, width int, text string, c core.Color) {
	for _, l := range wrap(text, width) {
		b.add(x, l, c)
	}
}

func (b *lineBuf) height() int {
	return len(b.rows)
}

func (b *lineBuf) draw(dst *core.Screen, y0 int) {
	for i, r := range b.rows {
		if r.text != "" {
			dst.DrawText(r.x, y0+i, r.text, r.color)
		}
	}
}

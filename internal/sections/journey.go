package sections

import (
	"github.com/vovakirdan/tui-folio/internal/content"
	"github.com/vovakirdan/tui-folio/internal/core"
	"github.com/vovakirdan/tui-folio/internal/registry"
)

func init() {
	registry.Register("journey", func() registry.Section { return &Journey{} })
}

// Journey is the education and experience timeline.
type Journey struct{}

func (j *Journey) ID() string    { return "journey" }
func (j *Journey) Title() string { return "Journey" }
func (j *Journey) Order() int    { return 20 }

func (j *Journey) Height(ctx registry.RenderContext) int {
	left, right := j.columns(ctx)
	if right == nil {
		return headingRows + left.height()
	}
	return headingRows + max(left.height(), right.height())
}

func (j *Journey) Surfaces(ctx registry.RenderContext) []registry.Surface { return nil }

func (j *Journey) Render(ctx registry.RenderContext, dst *core.Screen) {
	y := heading(dst, ctx, 0, "My Journey")
	left, right := j.columns(ctx)
	left.draw(dst, y)
	if right != nil {
		right.draw(dst, y)
	}
}

// columns returns education and experience side by side, or stacked in
// the first buffer when the terminal is narrow.
func (j *Journey) columns(ctx registry.RenderContext) (*lineBuf, *lineBuf) {
	f := frameOf(ctx)
	p := ctx.Portfolio

	if f.w < 70 {
		var b lineBuf
		timeline(&b, f.x, f.w, "Education", p.JourneyOf(content.KindEducation))
		timeline(&b, f.x, f.w, "Experience", p.JourneyOf(content.KindExperience))
		return &b, nil
	}

	colW := (f.w - 4) / 2
	var left, right lineBuf
	timeline(&left, f.x, colW, "Education", p.JourneyOf(content.KindEducation))
	timeline(&right, f.x+colW+4, colW, "Experience", p.JourneyOf(content.KindExperience))
	return &left, &right
}

func timeline(b *lineBuf, x, w int, title string, items []content.Milestone) {
	b.add(x, title, core.ColorPink)
	b.blank()
	for _, m := range items {
		b.add(x, "● "+truncate(m.Year, w-2), core.ColorTeal)
		b.add(x, "│ "+truncate(m.Title, w-2), core.ColorWhite)
		b.add(x, "│ "+truncate(m.Institution, w-2), core.ColorGray)
		for _, d := range m.Description {
			for _, l := range wrap(d, w-4) {
				b.add(x, "│   "+l, core.ColorDim)
			}
		}
		b.add(x, "│", core.ColorDim)
	}
	b.blank()
}

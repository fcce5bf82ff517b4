package sections

import (
	"github.com/vovakirdan/tui-folio/internal/core"
	"github.com/vovakirdan/tui-folio/internal/registry"
)

func init() {
	registry.Register("contact", func() registry.Section { return &Contact{} })
}

// Contact lists the ways to get in touch and points at the form.
type Contact struct{}

func (c *Contact) ID() string    { return "contact" }
func (c *Contact) Title() string { return "Contact" }
func (c *Contact) Order() int    { return 50 }

func (c *Contact) Height(ctx registry.RenderContext) int {
	return headingRows + c.lines(ctx).height()
}

func (c *Contact) Surfaces(ctx registry.RenderContext) []registry.Surface { return nil }

func (c *Contact) Render(ctx registry.RenderContext, dst *core.Screen) {
	y := heading(dst, ctx, 0, "Get In Touch")
	c.lines(ctx).draw(dst, y)
}

func (c *Contact) lines(ctx registry.RenderContext) *lineBuf {
	f := frameOf(ctx)
	p := ctx.Portfolio.Profile
	var b lineBuf

	b.paragraph(f.x, f.w, "Have a project in mind or just want to say hello? My inbox is open.", core.ColorWhite)
	b.blank()
	for _, item := range []struct{ label, value string }{
		{"Email", p.Email},
		{"Phone", p.Phone},
		{"Location", p.Location},
	} {
		if item.value == "" {
			continue
		}
		b.add(f.x, truncate(item.label+": "+item.value, f.w), core.ColorGray)
	}
	b.blank()
	b.add(f.x, "press c to write a message", core.ColorTeal)
	b.blank()
	return &b
}

package sections

import (
	"github.com/vovakirdan/tui-folio/internal/core"
	"github.com/vovakirdan/tui-folio/internal/registry"
)

// Placed is a section at its vertical offset on the page.
type Placed struct {
	Section registry.Section
	Top     int
	Height  int
}

// Page is the home page laid out at one width.
type Page struct {
	Sections []Placed
	// Surfaces are in page coordinates.
	Surfaces []registry.Surface
	Height   int
}

// Compose stacks sections top to bottom in the given order.
func Compose(ctx registry.RenderContext, secs []registry.Section) Page {
	var page Page
	y := 0
	for _, s := range secs {
		h := s.Height(ctx)
		page.Sections = append(page.Sections, Placed{Section: s, Top: y, Height: h})
		for _, sf := range s.Surfaces(ctx) {
			sf.Rect = sf.Rect.Translate(0, y)
			page.Surfaces = append(page.Surfaces, sf)
		}
		y += h
	}
	page.Height = y
	return page
}

// Render draws the whole page.
func (p Page) Render(ctx registry.RenderContext) *core.Screen {
	dst := core.NewScreen(ctx.Width, p.Height)
	for _, pl := range p.Sections {
		sub := core.NewScreen(ctx.Width, pl.Height)
		pl.Section.Render(ctx, sub)
		dst.Blit(sub, 0, pl.Top)
	}
	return dst
}

// Anchor returns the top row of a section, or false when absent.
func (p Page) Anchor(id string) (int, bool) {
	for _, pl := range p.Sections {
		if pl.Section.ID() == id {
			return pl.Top, true
		}
	}
	return 0, false
}

// SurfaceAt returns the surface under the page cell (x, y).
func (p Page) SurfaceAt(x, y int) (registry.Surface, bool) {
	for _, sf := range p.Surfaces {
		if sf.Rect.Contains(x, y) {
			return sf, true
		}
	}
	return registry.Surface{}, false
}

// SectionAt returns the ID of the section covering row y.
func (p Page) SectionAt(y int) string {
	for _, pl := range p.Sections {
		if y >= pl.Top && y < pl.Top+pl.Height {
			return pl.Section.ID()
		}
	}
	return ""
}

package sections

import (
	"strings"

	"github.com/vovakirdan/tui-folio/internal/core"
	"github.com/vovakirdan/tui-folio/internal/registry"
)

func init() {
	registry.Register("footer", func() registry.Section { return &Footer{} })
}

// Footer closes the page with social links.
type Footer struct{}

func (ft *Footer) ID() string    { return "footer" }
func (ft *Footer) Title() string { return "Footer" }
func (ft *Footer) Order() int    { return 60 }

func (ft *Footer) Height(ctx registry.RenderContext) int { return 5 }

func (ft *Footer) Surfaces(ctx registry.RenderContext) []registry.Surface { return nil }

func (ft *Footer) Render(ctx registry.RenderContext, dst *core.Screen) {
	f := frameOf(ctx)
	area := core.NewRect(f.x, 0, f.w, 1)

	dst.DrawText(f.x, 0, strings.Repeat("─", f.w), core.ColorDim)

	names := make([]string, len(ctx.Portfolio.Socials))
	for i, s := range ctx.Portfolio.Socials {
		names[i] = s.Name
	}
	dst.DrawTextCentered(area, 2, truncate(strings.Join(names, "  ·  "), f.w), core.ColorTeal)
	dst.DrawTextCentered(area, 3, truncate("© "+ctx.Portfolio.Profile.Name, f.w), core.ColorDim)
}

package sections

import (
	"strings"

	"github.com/vovakirdan/tui-folio/internal/core"
	"github.com/vovakirdan/tui-folio/internal/registry"
)

func init() {
	registry.Register("about", func() registry.Section { return &About{} })
}

// ProfileSurfaceID is the surface ID of the profile card.
const ProfileSurfaceID = "profile"

// Profile card size in cells.
const (
	profileW = 28
	profileH = 11
)

// About shows the tilting profile card next to the about text.
type About struct{}

func (a *About) ID() string    { return "about" }
func (a *About) Title() string { return "About" }
func (a *About) Order() int    { return 40 }

func (a *About) Height(ctx registry.RenderContext) int {
	card, text := a.layout(ctx)
	return max(card.Bottom(), headingRows+text.height()) + 1
}

func (a *About) Surfaces(ctx registry.RenderContext) []registry.Surface {
	card, _ := a.layout(ctx)
	return []registry.Surface{{ID: ProfileSurfaceID, Kind: registry.SurfaceProfile, Rect: card}}
}

func (a *About) Render(ctx registry.RenderContext, dst *core.Screen) {
	heading(dst, ctx, 0, "About Me")
	card, text := a.layout(ctx)

	m := ctx.MotionOf(ProfileSurfaceID)
	border := core.ColorPurple
	if ctx.Hovered == ProfileSurfaceID {
		border = core.ColorPink
	}
	dx, dy := drawTilted(dst, card, m, border)

	p := ctx.Portfolio.Profile
	inner := core.NewRect(card.X+1+dx, 0, card.W-2, 1)
	op := opacityOf(m)
	top := card.Y + dy

	dst.DrawTextCentered(inner, top+2, Initials(p.Name), tinted(core.ColorPink, op))
	dst.DrawTextCentered(inner, top+4, truncate(p.Name, card.W-4), tinted(core.ColorWhite, op))
	dst.DrawTextCentered(inner, top+5, truncate(p.Role, card.W-4), tinted(core.ColorTeal, op))
	dst.DrawTextCentered(inner, top+7, truncate(p.Location, card.W-4), tinted(core.ColorGray, op))
	dst.DrawTextCentered(inner, top+8, truncate(p.Email, card.W-4), tinted(core.ColorDim, op))

	text.draw(dst, headingRows)
}

// layout returns the card rect and the text flow. Wide terminals put the
// text beside the card, narrow ones below it.
func (a *About) layout(ctx registry.RenderContext) (core.Rect, *lineBuf) {
	f := frameOf(ctx)
	p := ctx.Portfolio.Profile
	var b lineBuf

	if f.w >= profileW+30 {
		card := core.NewRect(f.x, headingRows, profileW, profileH)
		x := f.x + profileW + 4
		for _, para := range p.About {
			b.paragraph(x, f.w-profileW-4, para, core.ColorWhite)
			b.blank()
		}
		return card, &b
	}

	w := min(profileW, f.w)
	card := core.NewRect(f.x+(f.w-w)/2, headingRows, w, profileH)
	for range profileH + 1 {
		b.blank()
	}
	for _, para := range p.About {
		b.paragraph(f.x, f.w, para, core.ColorWhite)
		b.blank()
	}
	return card, &b
}

// Initials returns up to two upper-case initials of a name, spaced for
// the card.
func Initials(name string) string {
	var out []string
	for _, w := range strings.Fields(name) {
		out = append(out, strings.ToUpper(string([]rune(w)[0])))
		if len(out) == 2 {
			break
		}
	}
	return strings.Join(out, " ")
}

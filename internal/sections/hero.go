package sections

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-folio/internal/core"
	"github.com/vovakirdan/tui-folio/internal/registry"
)

func init() {
	registry.Register("home", func() registry.Section { return &Hero{} })
}

// Typing speed of the rotating role line.
const (
	framesPerChar = 3
	holdSteps     = 12
)

// Hero is the landing block. It drifts down and fades out as the page
// scrolls, through RenderContext.HeroOffset and HeroOpacity.
type Hero struct{}

func (h *Hero) ID() string    { return "home" }
func (h *Hero) Title() string { return "Home" }
func (h *Hero) Order() int    { return 0 }

func (h *Hero) Height(ctx registry.RenderContext) int { return 12 }

func (h *Hero) Surfaces(ctx registry.RenderContext) []registry.Surface { return nil }

func (h *Hero) Render(ctx registry.RenderContext, dst *core.Screen) {
	f := frameOf(ctx)
	area := core.NewRect(f.x, 0, f.w, 1)
	p := ctx.Portfolio.Profile
	op := ctx.HeroOpacity
	y := 2 + ctx.HeroOffset

	dst.DrawTextCentered(area, y, "Hi, I'm", tinted(core.ColorGray, op))
	dst.DrawTextCentered(area, y+1, p.Name, tinted(core.ColorPurple, op))

	roles := p.Roles
	if len(roles) == 0 && p.Role != "" {
		roles = []string{p.Role}
	}
	cursor := " "
	if (ctx.Frame/15)%2 == 0 {
		cursor = "▌"
	}
	dst.DrawTextCentered(area, y+3, TypedRole(roles, ctx.Frame)+cursor, tinted(core.ColorPink, op))

	for i, l := range wrap(p.Tagline, min(f.w, 60)) {
		dst.DrawTextCentered(area, y+5+i, l, tinted(core.ColorWhite, op))
	}
	dst.DrawTextCentered(area, y+8, fmt.Sprintf("[ %s ]   [ %s ]", "View Projects", "Contact Me"), tinted(core.ColorTeal, op))
	dst.DrawTextCentered(area, y+10, "↓ scroll", tinted(core.ColorDim, op))
}

// TypedRole returns the visible part of the rotating role line at frame:
// each role is typed out, held, then erased before the next one starts.
func TypedRole(roles []string, frame int) string {
	if len(roles) == 0 {
		return ""
	}

	total := 0
	for _, r := range roles {
		total += cycleSteps(r)
	}
	step := (max(frame, 0) / framesPerChar) % total

	for _, r := range roles {
		n := cycleSteps(r)
		if step >= n {
			step -= n
			continue
		}
		length := utf8.RuneCountInString(r)
		switch {
		case step < length:
			return prefix(r, step+1)
		case step < length+holdSteps:
			return r
		default:
			return prefix(r, length-(step-length-holdSteps)-1)
		}
	}
	return ""
}

func cycleSteps(role string) int {
	return 2*utf8.RuneCountInString(role) + holdSteps
}

func prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-folio/internal/core"
)

// colorStyles maps every 256-color code to a style. It is filled once and
// only read afterwards, so concurrent SSH sessions can share it.
var colorStyles [256]lipgloss.Style

func init() {
	for i := range colorStyles {
		colorStyles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(i)))
	}
}

func styleFor(c core.Color) lipgloss.Style {
	if c < 0 || int(c) >= len(colorStyles) {
		return lipgloss.NewStyle()
	}
	return colorStyles[c]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderRows(s, 0, s.Height())
}

// renderRows renders rows [from, to) of s.
func renderRows(s *core.Screen, from, to int) string {
	from = max(from, 0)
	to = min(to, s.Height())

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*(to-from)*2 + (to - from))

	for y := from; y < to; y++ {
		if y > from {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

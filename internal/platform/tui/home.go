package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-folio/internal/config"
	"github.com/vovakirdan/tui-folio/internal/content"
	"github.com/vovakirdan/tui-folio/internal/ratelimit"
	"github.com/vovakirdan/tui-folio/internal/registry"
	"github.com/vovakirdan/tui-folio/internal/sections"
)

// Rows outside the scrolling area: navbar on top, help below.
const (
	headerRows = 1
	footerRows = 1
)

// navigateMsg switches pages.
type navigateMsg struct{ route Route }

// openFormMsg opens the contact form.
type openFormMsg struct{}

func navigate(r Route) tea.Cmd {
	return func() tea.Msg { return navigateMsg{route: r} }
}

func openForm() tea.Msg { return openFormMsg{} }

// HomeModel is the scrolling one-page portfolio.
type HomeModel struct {
	scroll    config.ScrollConfig
	portfolio content.Portfolio
	nav       []registry.SectionInfo
	layout    func(int) sections.Page
	page      sections.Page
	tracker   *tracker
	viewport  viewport.Model
	keys      KeyMap
	help      help.Model
	width     int
	height    int
	frame     int
}

// NewHomeModel creates the home page. Layouts are memoized per width.
func NewHomeModel(cfg config.Config, portfolio content.Portfolio, fps int) HomeModel {
	secs := registry.All()
	layout := ratelimit.Memoize(func(width int) sections.Page {
		return sections.Compose(registry.RenderContext{Width: width, Portfolio: portfolio}, secs)
	}, cfg.Input.MemoSize)

	return HomeModel{
		scroll:    cfg.Scroll,
		portfolio: portfolio,
		nav:       registry.List(),
		layout:    layout,
		tracker:   newTracker(cfg.Tilt, fps, false),
		viewport:  viewport.New(0, 0),
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}
}

// resize adapts the viewport at once; the page itself is rebuilt by relayout.
func (m *HomeModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-headerRows-footerRows, 1)
	m.help.Width = width
}

// relayout rebuilds the page for the current width.
func (m *HomeModel) relayout() {
	m.page = m.layout(m.width)
	m.tracker.setSurfaces(m.page.Surfaces)
	m.render()
}

// heroEffect returns the hero parallax shift in rows and its opacity for a
// scroll position in lines.
func heroEffect(sc config.ScrollConfig, yOffset int) (int, float64) {
	px := float64(yOffset) * sc.PxPerLine
	shift := sc.Parallax.Map(px) / sc.PxPerLine
	return int(math.Round(shift)), sc.Fade.Map(px)
}

func (m *HomeModel) render() {
	if m.width <= 0 {
		return
	}
	shift, opacity := heroEffect(m.scroll, m.viewport.YOffset)
	ctx := registry.RenderContext{
		Width:       m.width,
		Portfolio:   m.portfolio,
		Motions:     m.tracker.motions(),
		Hovered:     m.tracker.hovered,
		HeroOffset:  shift,
		HeroOpacity: opacity,
		Frame:       m.frame,
	}
	m.viewport.SetContent(RenderScreen(m.page.Render(ctx)))
}

// Update handles messages routed to the home page.
func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Projects):
			return m, navigate(RouteAllProjects)
		case key.Matches(msg, m.keys.Contact):
			return m, openForm
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.SectionKey):
			m.jumpTo(int(msg.Runes[0]-'1'))
			return m, nil
		case key.Matches(msg, m.keys.NextTab):
			m.jumpTo(m.currentSection() + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.jumpTo(m.currentSection() - 1)
			return m, nil
		}

	case pointerMsg:
		y := msg.Y - headerRows
		if y < 0 || y >= m.viewport.Height {
			m.tracker.leave()
			return m, nil
		}
		m.tracker.point(msg.X, y+m.viewport.YOffset)
		return m, nil

	case TickMsg:
		m.frame++
		top := m.viewport.YOffset
		m.tracker.reveal(top, top+m.viewport.Height)
		m.tracker.step()
		m.render()
		return m, nil
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// hoverAt returns the surface under screen cell (x, y), or "".
func (m HomeModel) hoverAt(x, y int) string {
	y -= headerRows
	if y < 0 || y >= m.viewport.Height {
		return ""
	}
	return m.tracker.hit(x, y+m.viewport.YOffset)
}

// jumpTo scrolls to the i-th section in navbar order.
func (m *HomeModel) jumpTo(i int) {
	if i < 0 || i >= len(m.nav) {
		return
	}
	if top, ok := m.page.Anchor(m.nav[i].ID); ok {
		m.viewport.SetYOffset(top)
	}
}

// currentSection returns the navbar index of the section at the top of the
// viewport.
func (m HomeModel) currentSection() int {
	id := m.page.SectionAt(m.viewport.YOffset)
	for i, info := range m.nav {
		if info.ID == id {
			return i
		}
	}
	return 0
}

var (
	navStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	navActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (m HomeModel) navbar() string {
	current := m.currentSection()
	items := make([]string, 0, len(m.nav))
	for i, info := range m.nav {
		if info.ID == "footer" {
			continue
		}
		label := string(rune('1'+i)) + " " + info.Title
		if i == current {
			items = append(items, navActiveStyle.Render(label))
			continue
		}
		items = append(items, navStyle.Render(label))
	}
	brand := navActiveStyle.Render(m.portfolio.Profile.Name)
	return lipgloss.NewStyle().MaxWidth(m.width).Render(brand + "   " + strings.Join(items, "  "))
}

// View renders the home page.
func (m HomeModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.navbar(),
		m.viewport.View(),
		helpStyle.Render(m.help.View(homeHelp{m.keys})),
	)
}

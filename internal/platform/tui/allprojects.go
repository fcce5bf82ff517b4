package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-folio/internal/config"
	"github.com/vovakirdan/tui-folio/internal/content"
	"github.com/vovakirdan/tui-folio/internal/core"
	"github.com/vovakirdan/tui-folio/internal/fx"
	"github.com/vovakirdan/tui-folio/internal/ratelimit"
	"github.com/vovakirdan/tui-folio/internal/registry"
	"github.com/vovakirdan/tui-folio/internal/sections"
)

// Rows above the project grid: title and category tabs.
const projectsHeaderRows = 2

// cardKey identifies a rendered card tile. Angles are kept in half degrees
// so nearby spring positions share a cache entry.
type cardKey struct {
	ID      string
	Width   int
	HalfRX  int
	HalfRY  int
	Depth   int
	Hovered bool
}

// tileMargin leaves room for a tilted card to overhang its rect.
const tileMarginX, tileMarginY = 2, 1

// ProjectsModel is the all-projects page: a category filter over a grid
// of tilting cards, or a table.
type ProjectsModel struct {
	portfolio  content.Portfolio
	perspect   float64
	categories []string
	cursor     int
	filter     func(string) []content.Project
	cards      *ratelimit.Memo[cardKey, cardKey, *core.Screen]
	tracker    *tracker
	rects      []core.Rect
	shown      []content.Project
	viewport   viewport.Model
	table      table.Model
	showTable  bool
	keys       KeyMap
	help       help.Model
	width      int
	height     int
}

// NewProjectsModel creates the all-projects page. Category filtering and
// card rendering are memoized.
func NewProjectsModel(cfg config.Config, portfolio content.Portfolio, fps int) ProjectsModel {
	size := cfg.Input.MemoSize
	if size <= 0 {
		size = ratelimit.DefaultCacheSize
	}

	m := ProjectsModel{
		portfolio:  portfolio,
		perspect:   fx.NewTiltCalculator(cfg.Tilt.Card).Options().BasePerspective,
		categories: portfolio.Categories(),
		filter:     ratelimit.Memoize(portfolio.ProjectsIn, size),
		tracker:    newTracker(cfg.Tilt, fps, true),
		viewport:   viewport.New(0, 0),
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}

	identity := func(k cardKey) cardKey { return k }
	cards, err := ratelimit.NewMemo(m.renderCard, identity, size)
	if err != nil {
		// size is positive here, so this cannot happen.
		panic(err)
	}
	m.cards = cards
	m.table = m.createTable()
	return m
}

// Category returns the selected category.
func (m ProjectsModel) Category() string {
	return m.categories[m.cursor]
}

func (m *ProjectsModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-projectsHeaderRows-footerRows, 1)
	m.help.Width = width
}

// relayout recomputes the grid for the width and the selected category.
func (m *ProjectsModel) relayout() {
	m.shown = m.filter(m.Category())

	area := core.NewRect(2, 1, max(m.width-4, 1), 0)
	m.rects = sections.CardGrid(area, len(m.shown))

	surfaces := make([]registry.Surface, len(m.shown))
	for i, pr := range m.shown {
		surfaces[i] = registry.Surface{ID: sections.ProjectSurfaceID(pr.ID), Kind: registry.SurfaceCard, Rect: m.rects[i]}
	}
	m.tracker.setSurfaces(surfaces)

	m.table = m.createTable()
	m.updateTableRows()
	m.render()
}

func (m *ProjectsModel) selectCategory(delta int) {
	n := len(m.categories)
	m.cursor = ((m.cursor+delta)%n + n) % n
	m.viewport.GotoTop()
	m.relayout()
}

// renderCard draws one card tile for the cache.
func (m ProjectsModel) renderCard(k cardKey) *core.Screen {
	pr, _ := m.portfolio.Project(k.ID)
	tile := core.NewScreen(k.Width+2*tileMarginX, sections.CardHeight+2*tileMarginY)
	motion := registry.Motion{
		Tilt: fx.TiltResult{
			RotationX:     float64(k.HalfRX) / 2,
			RotationY:     float64(k.HalfRY) / 2,
			PerspectivePx: m.perspect,
		},
		Depth:   float64(k.Depth),
		Scale:   1,
		Opacity: 1,
	}
	sections.DrawProjectCard(tile, core.NewRect(tileMarginX, tileMarginY, k.Width, sections.CardHeight), pr, motion, k.Hovered)
	return tile
}

func (m *ProjectsModel) render() {
	if m.width <= 0 {
		return
	}

	bottom := 1
	for _, r := range m.rects {
		bottom = max(bottom, r.Bottom()+1)
	}
	if len(m.shown) == 0 {
		bottom = 3
	}
	scr := core.NewScreen(m.width, bottom+1)
	if len(m.shown) == 0 {
		scr.DrawTextCentered(scr.Bounds(), 1, "No projects in this category yet.", core.ColorDim)
	}

	motions := m.tracker.motions()
	for i, pr := range m.shown {
		id := sections.ProjectSurfaceID(pr.ID)
		mo := motions[id]
		k := cardKey{
			ID:      pr.ID,
			Width:   m.rects[i].W,
			HalfRX:  int(math.Round(mo.Tilt.RotationX * 2)),
			HalfRY:  int(math.Round(mo.Tilt.RotationY * 2)),
			Depth:   int(math.Round(mo.Depth)),
			Hovered: m.tracker.hovered == id,
		}
		scr.Overlay(m.cards.Call(k), m.rects[i].X-tileMarginX, m.rects[i].Y-tileMarginY)
	}
	m.viewport.SetContent(RenderScreen(scr))
}

// createTable creates the list view of the filtered projects.
func (m *ProjectsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Project", Width: 24},
		{Title: "Category", Width: 16},
		{Title: "Tech", Width: 30},
	}

	tableWidth := m.width - 8
	if tableWidth > 60 {
		columns[2].Width = min(tableWidth-44, 50)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-projectsHeaderRows-footerRows-3, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *ProjectsModel) updateTableRows() {
	rows := make([]table.Row, len(m.shown))
	for i, pr := range m.shown {
		rows[i] = table.Row{pr.Title, pr.Category, strings.Join(pr.Tech, ", ")}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Update handles messages routed to the all-projects page.
func (m ProjectsModel) Update(msg tea.Msg) (ProjectsModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, navigate(RouteHome)
		case key.Matches(msg, m.keys.Contact):
			return m, openForm
		case key.Matches(msg, m.keys.NextTab):
			m.selectCategory(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.selectCategory(-1)
			return m, nil
		case key.Matches(msg, m.keys.Table):
			m.showTable = !m.showTable
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if m.showTable {
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case pointerMsg:
		y := msg.Y - projectsHeaderRows
		if m.showTable || y < 0 || y >= m.viewport.Height {
			m.tracker.leave()
			return m, nil
		}
		m.tracker.point(msg.X, y+m.viewport.YOffset)
		return m, nil

	case TickMsg:
		if m.tracker.step() {
			m.render()
		}
		return m, nil
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// hoverAt returns the card under screen cell (x, y), or "".
func (m ProjectsModel) hoverAt(x, y int) string {
	y -= projectsHeaderRows
	if m.showTable || y < 0 || y >= m.viewport.Height {
		return ""
	}
	return m.tracker.hit(x, y+m.viewport.YOffset)
}

var (
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	pageTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
)

func (m ProjectsModel) tabs() string {
	tabs := make([]string, len(m.categories))
	for i, c := range m.categories {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(c)
			continue
		}
		tabs[i] = tabStyle.Render(" " + c + " ")
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width {
		// Just show current category with arrows
		line = fmt.Sprintf("< %s >", m.Category())
	}
	return line
}

// View renders the all-projects page.
func (m ProjectsModel) View() string {
	title := pageTitleStyle.Render(fmt.Sprintf("All Projects (%d)", len(m.shown)))

	body := m.viewport.View()
	if m.showTable {
		body = lipgloss.NewStyle().Height(m.viewport.Height).Padding(0, 2).Render(m.table.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.tabs(),
		body,
		helpStyle.Render(m.help.View(projectsHelp{m.keys})),
	)
}

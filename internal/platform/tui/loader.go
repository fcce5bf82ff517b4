package tui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-folio/internal/clock"
	sim "github.com/vovakirdan/tui-folio/internal/progress"
)

// progressMsg carries a new loader percentage.
type progressMsg int

// loaderDoneMsg hides the loader.
type loaderDoneMsg struct{}

// loaderControl owns the loader timers. It lives behind a pointer so the
// value-typed model can start and stop it from Init and Update.
type loaderControl struct {
	mu     sync.Mutex
	sim    *sim.Simulator
	handle sim.CancelHandle
	hide   clock.Timer
}

// start runs the progress simulation and the hide timer. Both report
// through post.
func (c *loaderControl) start(clk clock.Clock, post func(tea.Msg), step, hideAfter time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sim = sim.New(clk)
	h, err := c.sim.Start(func(v int) { post(progressMsg(v)) }, step)
	if err != nil {
		return err
	}
	c.handle = h
	c.hide = clk.AfterFunc(hideAfter, func() { post(loaderDoneMsg{}) })
	return nil
}

// stop cancels both timers. Safe to call more than once.
func (c *loaderControl) stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.handle.Cancel()
	if c.hide != nil {
		c.hide.Cancel()
	}
}

// LoaderModel renders the startup progress screen.
type LoaderModel struct {
	ctl     *loaderControl
	bar     progress.Model
	value   int
	visible bool
	width   int
	height  int
	name    string
}

func newLoaderModel(name string, width, height int) LoaderModel {
	bar := progress.New(progress.WithDefaultGradient())
	m := LoaderModel{
		ctl:     &loaderControl{},
		bar:     bar,
		visible: true,
		name:    name,
	}
	m.resize(width, height)
	return m
}

func (m *LoaderModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.bar.Width = min(max(width-20, 10), 60)
}

// Visible reports whether the loader still covers the app.
func (m LoaderModel) Visible() bool {
	return m.visible
}

// Value returns the current percentage.
func (m LoaderModel) Value() int {
	return m.value
}

func (m LoaderModel) View() string {
	title := lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	var b strings.Builder
	b.WriteString(title.Render(m.name))
	b.WriteString("\n\n")
	b.WriteString(m.bar.ViewAs(float64(m.value) / sim.Max))
	b.WriteString("\n\n")
	b.WriteString(dim.Render(fmt.Sprintf("loading %d%%  ·  any key to skip", m.value)))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

package tui

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-folio/internal/clock"
	"github.com/vovakirdan/tui-folio/internal/config"
	"github.com/vovakirdan/tui-folio/internal/contact"
	"github.com/vovakirdan/tui-folio/internal/content"
)

type fakeSubmitter struct {
	mu    sync.Mutex
	forms []contact.Form
	err   error
}

func (f *fakeSubmitter) Submit(_ context.Context, form contact.Form) (contact.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forms = append(f.forms, form)
	if f.err != nil {
		return contact.Result{}, f.err
	}
	return contact.Result{ID: "sub-1", Message: "ok"}, nil
}

func testPortfolio(t *testing.T) content.Portfolio {
	t.Helper()
	p, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default() error = %v", err)
	}
	return p
}

func newTestApp(t *testing.T, clk *clock.Virtual, skipLoader bool) App {
	t.Helper()
	app := NewApp(Options{
		Config:     config.DefaultConfig(),
		Portfolio:  testPortfolio(t),
		Width:      100,
		Height:     40,
		Clock:      clk,
		Submitter:  &fakeSubmitter{},
		SkipLoader: skipLoader,
	})
	t.Cleanup(app.Close)
	return app
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msg to the app and then every message its command produces
// that the app itself understands.
func send(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	next, cmd := a.Update(msg)
	a = next.(App)
	if cmd == nil {
		return a
	}
	switch out := cmd().(type) {
	case navigateMsg, openFormMsg, formClosedMsg:
		return send(t, a, out)
	}
	return a
}

func drain(b *timerBridge) []tea.Msg {
	var out []tea.Msg
	for {
		select {
		case m := <-b.ch:
			out = append(out, m)
		default:
			return out
		}
	}
}

func TestAppNavigation(t *testing.T) {
	clk := clock.NewVirtual(time.Unix(0, 0))
	a := newTestApp(t, clk, true)

	if a.Route() != RouteHome {
		t.Fatalf("Route() = %q, expected %q", a.Route(), RouteHome)
	}
	if !strings.Contains(a.View(), "Alex Morgan") {
		t.Error("home view should show the profile name")
	}

	a = send(t, a, runes("p"))
	if a.Route() != RouteAllProjects {
		t.Fatalf("Route() after p = %q, expected %q", a.Route(), RouteAllProjects)
	}
	if !strings.Contains(a.View(), "All Projects") {
		t.Error("all-projects view should show its title")
	}

	a = send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.Route() != RouteHome {
		t.Errorf("Route() after esc = %q, expected %q", a.Route(), RouteHome)
	}
}

func TestAppContactFormKeepsQ(t *testing.T) {
	clk := clock.NewVirtual(time.Unix(0, 0))
	a := newTestApp(t, clk, true)

	a = send(t, a, runes("c"))
	if !a.FormOpen() {
		t.Fatal("FormOpen() = false after c")
	}

	a = send(t, a, runes("q"))
	if a.quitting {
		t.Fatal("q inside the form should type, not quit")
	}
	if got := a.form.Form().Name; got != "q" {
		t.Errorf("name field = %q, expected %q", got, "q")
	}

	a = send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.FormOpen() {
		t.Fatal("FormOpen() = true after esc")
	}

	a = send(t, a, runes("q"))
	if !a.quitting {
		t.Error("q outside the form should quit")
	}
	if a.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestAppLoader(t *testing.T) {
	clk := clock.NewVirtual(time.Unix(0, 0))
	a := newTestApp(t, clk, false)

	if !a.loader.Visible() {
		t.Fatal("loader should be visible at start")
	}
	a.Init()

	clk.Advance(3 * time.Second)
	msgs := drain(a.bridge)
	if len(msgs) != 101 {
		t.Fatalf("bridged messages = %d, expected 100 progress and 1 done", len(msgs))
	}

	for _, m := range msgs {
		next, cmd := a.Update(m)
		a = next.(App)
		if cmd == nil {
			t.Fatalf("Update(%T) returned no command, expected the bridge to be re-armed", m)
		}
	}
	if a.loader.Value() != 100 {
		t.Errorf("loader value = %d, expected 100", a.loader.Value())
	}
	if a.loader.Visible() {
		t.Error("loader still visible after the hide timer")
	}
}

func TestAppKeySkipsLoader(t *testing.T) {
	clk := clock.NewVirtual(time.Unix(0, 0))
	a := newTestApp(t, clk, false)
	a.Init()

	a = send(t, a, runes("x"))
	if a.loader.Visible() {
		t.Fatal("a key should skip the loader")
	}

	clk.Advance(5 * time.Second)
	if n := len(drain(a.bridge)); n != 0 {
		t.Errorf("bridged messages after skip = %d, expected 0", n)
	}
}

func TestAppResizeIsDebounced(t *testing.T) {
	clk := clock.NewVirtual(time.Unix(0, 0))
	a := newTestApp(t, clk, true)

	for _, w := range []int{90, 80, 70} {
		next, _ := a.Update(tea.WindowSizeMsg{Width: w, Height: 30})
		a = next.(App)
	}
	if a.width != 70 {
		t.Errorf("width = %d, expected 70 right away", a.width)
	}
	if n := len(drain(a.bridge)); n != 0 {
		t.Fatalf("relayouts before the delay = %d, expected 0", n)
	}

	clk.Advance(100 * time.Millisecond)
	msgs := drain(a.bridge)
	if len(msgs) != 1 {
		t.Fatalf("relayouts after the delay = %d, expected 1", len(msgs))
	}
	if got := msgs[0].(relayoutMsg); got.Width != 70 {
		t.Errorf("relayout width = %d, expected 70", got.Width)
	}
}

func TestAppPointerIsThrottled(t *testing.T) {
	clk := clock.NewVirtual(time.Unix(0, 0))
	a := newTestApp(t, clk, true)

	move := func(x, y int) {
		next, _ := a.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion})
		a = next.(App)
	}

	// Row 0 is the header, so no move crosses a surface edge.
	move(10, 0)
	move(11, 0)
	move(12, 0)
	if n := len(drain(a.bridge)); n != 1 {
		t.Fatalf("pointer messages = %d, expected 1 inside the window", n)
	}

	clk.Advance(16 * time.Millisecond)
	move(13, 0)
	msgs := drain(a.bridge)
	if len(msgs) != 1 {
		t.Fatalf("pointer messages = %d, expected 1 after the window", len(msgs))
	}
	if got := msgs[0].(pointerMsg); got.X != 13 {
		t.Errorf("pointer x = %d, expected 13", got.X)
	}
}

func TestAppPointerLeaveInsideThrottleWindow(t *testing.T) {
	clk := clock.NewVirtual(time.Unix(0, 0))
	a := newTestApp(t, clk, true)
	a = send(t, a, runes("p"))

	move := func(x, y int) {
		next, _ := a.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion})
		a = next.(App)
	}
	deliver := func() {
		for _, m := range drain(a.bridge) {
			next, _ := a.Update(m)
			a = next.(App)
		}
	}

	r := a.projects.rects[0]
	x, y := r.X+1, r.Y+projectsHeaderRows
	move(x, y)
	deliver()
	card := a.projects.tracker.hovered
	if card == "" {
		t.Fatalf("no card hovered at (%d, %d)", x, y)
	}

	// Moving within the card inside the window is still dropped.
	move(x+1, y)
	if n := len(drain(a.bridge)); n != 0 {
		t.Errorf("pointer messages = %d, expected 0 for a move within the card", n)
	}

	clk.Advance(5 * time.Millisecond)
	move(x, 0)
	clk.Advance(time.Second)
	deliver()

	if got := a.projects.tracker.hovered; got != "" {
		t.Errorf("hovered = %q after leaving %q, expected none", got, card)
	}
	for id, target := range a.projects.tracker.targets {
		if target.RotationX != 0 || target.RotationY != 0 {
			t.Errorf("target %s = %+v, expected neutral after leaving", id, target)
		}
	}
}

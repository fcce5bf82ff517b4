package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-folio/internal/clock"
	"github.com/vovakirdan/tui-folio/internal/config"
	"github.com/vovakirdan/tui-folio/internal/contact"
	"github.com/vovakirdan/tui-folio/internal/content"
	"github.com/vovakirdan/tui-folio/internal/ratelimit"
)

// DefaultFPS is the animation frame rate when none is set.
const DefaultFPS = 30

// pointerMsg is a throttled pointer movement.
type pointerMsg tea.MouseMsg

// relayoutMsg is a debounced window resize.
type relayoutMsg tea.WindowSizeMsg

// Options configures an App.
type Options struct {
	Config    config.Config
	Portfolio content.Portfolio
	Route     Route
	FPS       int

	// Width and Height are the initial terminal size, when known up front
	// as for SSH sessions.
	Width  int
	Height int

	Clock     clock.Clock
	Logger    *log.Logger
	Submitter contact.Submitter

	// SkipLoader starts on the page right away.
	SkipLoader bool
}

// App is the root model: the startup loader, the routed pages and the
// contact form.
type App struct {
	opts    Options
	clk     clock.Clock
	logger  *log.Logger
	bridge  *timerBridge
	pointer *ratelimit.Throttler[tea.MouseMsg]
	resizer *ratelimit.Debouncer[tea.WindowSizeMsg]

	loader   LoaderModel
	route    Route
	home     HomeModel
	projects ProjectsModel
	form     ContactModel
	formOpen bool
	keys     KeyMap

	sized    bool
	width    int
	height   int
	hover    string // surface under the last forwarded pointer event
	quitting bool
}

// NewApp creates the root model. Zero options get defaults: the real
// clock, a discarding logger and a throttled client for the configured
// endpoint.
func NewApp(opts Options) App {
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Route == "" {
		opts.Route = RouteHome
	}
	cfg := opts.Config
	if opts.Submitter == nil {
		client := contact.NewClient(contact.Options{
			Endpoint:  cfg.Contact.Endpoint,
			AccessKey: cfg.Contact.AccessKey,
			Timeout:   cfg.Contact.Timeout(),
			Logger:    opts.Logger,
		})
		opts.Submitter = contact.NewGuard(client, opts.Clock, cfg.Input.SubmitThrottle())
	}

	bridge := newTimerBridge()
	a := App{
		opts:     opts,
		clk:      opts.Clock,
		logger:   opts.Logger,
		bridge:   bridge,
		loader:   newLoaderModel(opts.Portfolio.Profile.Name, opts.Width, opts.Height),
		route:    opts.Route,
		home:     NewHomeModel(cfg, opts.Portfolio, opts.FPS),
		projects: NewProjectsModel(cfg, opts.Portfolio, opts.FPS),
		form:     NewContactModel(opts.Submitter, cfg.Contact.Timeout(), opts.Portfolio.Profile.Email),
		keys:     DefaultKeyMap(),
	}
	a.pointer = ratelimit.NewThrottler(opts.Clock, cfg.Input.PointerThrottle(), func(ev tea.MouseMsg) {
		bridge.post(pointerMsg(ev))
	})
	a.resizer = ratelimit.NewDebouncer(opts.Clock, cfg.Input.ResizeDebounce(), func(ev tea.WindowSizeMsg) {
		bridge.post(relayoutMsg(ev))
	})
	if opts.SkipLoader {
		a.loader.visible = false
	}
	if opts.Width > 0 && opts.Height > 0 {
		a.setSize(opts.Width, opts.Height)
		a.relayout()
	}
	return a
}

// Route returns the current page.
func (a App) Route() Route {
	return a.route
}

// FormOpen reports whether the contact form is shown.
func (a App) FormOpen() bool {
	return a.formOpen
}

// Init starts the frame ticker, the loader timers and the bridge.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(a.opts.FPS), a.bridge.wait(), a.form.Init()}
	if a.loader.Visible() {
		cfg := a.opts.Config.Loader
		if err := a.loader.ctl.start(a.clk, a.bridge.post, cfg.Step(), cfg.HideAfter()); err != nil {
			a.logger.Warn("loader did not start", "error", err)
			a.bridge.post(loaderDoneMsg{})
		}
	}
	return tea.Batch(cmds...)
}

// Close stops every timer the app owns. Safe to call more than once.
func (a App) Close() {
	a.loader.ctl.stop()
	a.resizer.Cancel()
	a.bridge.close()
}

// fromBridge reports whether msg was delivered by the timer bridge, which
// then needs a fresh wait.
func fromBridge(msg tea.Msg) bool {
	switch msg.(type) {
	case progressMsg, loaderDoneMsg, pointerMsg, relayoutMsg:
		return true
	}
	return false
}

// Update handles messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.update(msg)
	if fromBridge(msg) && !next.quitting {
		cmd = tea.Batch(cmd, a.bridge.wait())
	}
	return next, cmd
}

func (a App) update(msg tea.Msg) (App, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.setSize(msg.Width, msg.Height)
		if !a.sized {
			a.relayout()
			return a, nil
		}
		a.resizer.Call(msg)
		return a, nil

	case relayoutMsg:
		a.relayout()
		return a, nil

	case progressMsg:
		a.loader.value = int(msg)
		return a, nil

	case loaderDoneMsg:
		a.loader.visible = false
		return a, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion {
			target := a.hoverAt(msg.X, msg.Y)
			if !a.pointer.Call(msg) && target != a.hover {
				// Crossing a surface edge is never throttled away, or a
				// card would keep its tilt after the pointer left it.
				a.bridge.post(pointerMsg(msg))
			}
			a.hover = target
			return a, nil
		}
		return a.toPage(msg)

	case tea.KeyMsg:
		if a.quitKey(msg) {
			a.quitting = true
			a.Close()
			return a, tea.Quit
		}
		if a.loader.Visible() {
			a.loader.visible = false
			a.loader.ctl.stop()
			return a, nil
		}
		if a.formOpen {
			var cmd tea.Cmd
			a.form, cmd = a.form.Update(msg)
			return a, cmd
		}
		return a.toPage(msg)

	case navigateMsg:
		a.logger.Debug("navigate", "from", a.route, "to", msg.route)
		a.route = msg.route
		a.hover = ""
		return a, nil

	case openFormMsg:
		a.formOpen = true
		return a, a.form.focusField(a.form.focus)

	case formClosedMsg:
		a.formOpen = false
		return a, nil

	case submitResultMsg:
		if msg.err != nil {
			a.logger.Warn("contact submission failed", "error", msg.err)
		} else {
			a.logger.Info("contact submission sent", "id", msg.result.ID)
		}
		var cmd tea.Cmd
		a.form, cmd = a.form.Update(msg)
		return a, cmd

	case TickMsg:
		next, _ := a.toPage(msg)
		return next, tickCmd(a.opts.FPS)
	}

	if a.formOpen {
		var cmd tea.Cmd
		a.form, cmd = a.form.Update(msg)
		return a, cmd
	}
	return a.toPage(msg)
}

// quitKey reports whether msg quits. Inside the form only ctrl+c does, so
// visitors can type a "q".
func (a App) quitKey(msg tea.KeyMsg) bool {
	if a.formOpen {
		return msg.String() == "ctrl+c"
	}
	return key.Matches(msg, a.keys.Quit)
}

// toPage forwards msg to the current page.
func (a App) toPage(msg tea.Msg) (App, tea.Cmd) {
	var cmd tea.Cmd
	switch a.route {
	case RouteAllProjects:
		a.projects, cmd = a.projects.Update(msg)
	default:
		a.home, cmd = a.home.Update(msg)
	}
	return a, cmd
}

// hoverAt returns the surface of the current page under screen cell (x, y).
func (a App) hoverAt(x, y int) string {
	if a.route == RouteAllProjects {
		return a.projects.hoverAt(x, y)
	}
	return a.home.hoverAt(x, y)
}

func (a *App) setSize(width, height int) {
	a.width = width
	a.height = height
	a.loader.resize(width, height)
	a.home.resize(width, height)
	a.projects.resize(width, height)
	a.form.resize(width, height)
}

// relayout rebuilds both pages for the current width.
func (a *App) relayout() {
	if a.width <= 0 {
		return
	}
	a.sized = true
	a.home.relayout()
	a.projects.relayout()
}

// View renders the app.
func (a App) View() string {
	switch {
	case a.quitting:
		return ""
	case !a.sized:
		return "\n  Loading..."
	case a.loader.Visible():
		return a.loader.View()
	case a.formOpen:
		return a.form.View()
	case a.route == RouteAllProjects:
		return a.projects.View()
	default:
		return a.home.View()
	}
}

// Run starts the app on the local terminal and blocks until it exits.
func Run(opts Options) error {
	app := NewApp(opts)
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

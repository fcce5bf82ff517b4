package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds every binding of the portfolio. Pages pick the subset they
// show in their help bar.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Projects   key.Binding
	Contact    key.Binding
	Table      key.Binding
	Back       key.Binding
	Submit     key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Help       key.Binding
	Quit       key.Binding
	SectionKey key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " ", "f"),
			key.WithHelp("pgdn", "page down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev"),
		),
		Projects: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "all projects"),
		),
		Contact: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "contact"),
		),
		Table: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cards/table"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "send"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev field"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		SectionKey: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to section"),
		),
	}
}

// homeHelp is the help view of the home page.
type homeHelp struct{ k KeyMap }

func (h homeHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Up, h.k.Down, h.k.SectionKey, h.k.Projects, h.k.Contact, h.k.Quit}
}

func (h homeHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Up, h.k.Down, h.k.PageUp, h.k.PageDown},
		{h.k.SectionKey, h.k.NextTab, h.k.PrevTab},
		{h.k.Projects, h.k.Contact, h.k.Help, h.k.Quit},
	}
}

// projectsHelp is the help view of the all-projects page.
type projectsHelp struct{ k KeyMap }

func (h projectsHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.NextTab, h.k.PrevTab, h.k.Table, h.k.Back, h.k.Quit}
}

func (h projectsHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Up, h.k.Down, h.k.PageUp, h.k.PageDown},
		{h.k.NextTab, h.k.PrevTab, h.k.Table},
		{h.k.Back, h.k.Help, h.k.Quit},
	}
}

// formHelp is the help view of the contact form.
type formHelp struct{ k KeyMap }

func (h formHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.NextField, h.k.PrevField, h.k.Submit, h.k.Back}
}

func (h formHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{{h.k.NextField, h.k.PrevField, h.k.Submit, h.k.Back}}
}

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-folio/internal/contact"
)

// formState is the submission state of the contact form.
type formState int

const (
	formIdle formState = iota
	formSubmitting
	formSent
	formFailed
)

// submitResultMsg carries the outcome of a submission.
type submitResultMsg struct {
	result contact.Result
	err    error
}

// formClosedMsg closes the contact form.
type formClosedMsg struct{}

func closeForm() tea.Msg { return formClosedMsg{} }

// Field order: the text inputs come first, the message is last.
const (
	fieldName = iota
	fieldEmail
	fieldPhone
	fieldSubject
	fieldMessage
	fieldCount
)

// ContactModel is the contact form overlay.
type ContactModel struct {
	submitter contact.Submitter
	timeout   time.Duration
	fallback  string
	inputs    []textinput.Model
	message   textarea.Model
	focus     int
	spinner   spinner.Model
	state     formState
	status    string
	keys      KeyMap
	help      help.Model
	width     int
	height    int
}

// NewContactModel creates the form. fallback is the address shown when the
// form cannot be sent.
func NewContactModel(submitter contact.Submitter, timeout time.Duration, fallback string) ContactModel {
	placeholders := []struct {
		label string
		limit int
	}{
		{"Your name *", 80},
		{"you@example.com *", 120},
		{"Phone", 32},
		{"Subject", 120},
	}

	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p.label
		ti.CharLimit = p.limit
		ti.Prompt = "  "
		inputs[i] = ti
	}

	msg := textarea.New()
	msg.Placeholder = "Tell me about your project *"
	msg.ShowLineNumbers = false
	msg.CharLimit = 2000
	msg.SetHeight(5)

	m := ContactModel{
		submitter: submitter,
		timeout:   timeout,
		fallback:  fallback,
		inputs:    inputs,
		message:   msg,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}
	m.focusField(fieldName)
	return m
}

func (m *ContactModel) resize(width, height int) {
	m.width = width
	m.height = height
	w := min(max(width-12, 20), 70)
	for i := range m.inputs {
		m.inputs[i].Width = w
	}
	m.message.SetWidth(w + 2)
	m.help.Width = width
}

// focusField moves the cursor to field i and returns the blink command.
func (m *ContactModel) focusField(i int) tea.Cmd {
	m.focus = (i%fieldCount + fieldCount) % fieldCount
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.message.Blur()

	if m.focus == fieldMessage {
		return m.message.Focus()
	}
	return m.inputs[m.focus].Focus()
}

// Form returns the current field values.
func (m ContactModel) Form() contact.Form {
	return contact.Form{
		Name:    m.inputs[fieldName].Value(),
		Email:   m.inputs[fieldEmail].Value(),
		Phone:   m.inputs[fieldPhone].Value(),
		Subject: m.inputs[fieldSubject].Value(),
		Message: m.message.Value(),
	}
}

func (m *ContactModel) reset() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.message.Reset()
	m.focusField(fieldName)
}

// Submitting reports whether a submission is in flight.
func (m ContactModel) Submitting() bool {
	return m.state == formSubmitting
}

// submitCmd sends f in the background, bounded by timeout.
func submitCmd(s contact.Submitter, timeout time.Duration, f contact.Form) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		res, err := s.Submit(ctx, f)
		return submitResultMsg{result: res, err: err}
	}
}

// failureText turns a submission error into a message for the visitor.
func failureText(err error, fallback string) string {
	switch {
	case errors.Is(err, contact.ErrMissingField):
		return "Please fill in your name, email and message."
	case errors.Is(err, contact.ErrThrottled):
		return "Please wait a moment before sending again."
	case errors.Is(err, contact.ErrNotConfigured):
		return fmt.Sprintf("The form is offline. Write to %s instead.", fallback)
	case errors.Is(err, context.DeadlineExceeded):
		return "The request timed out. Please try again."
	default:
		return "Something went wrong. Please try again later."
	}
}

// Init starts the cursor blink.
func (m ContactModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages routed to the form.
func (m ContactModel) Update(msg tea.Msg) (ContactModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, closeForm
		case key.Matches(msg, m.keys.Submit):
			if m.state == formSubmitting {
				return m, nil
			}
			m.state = formSubmitting
			m.status = ""
			return m, tea.Batch(m.spinner.Tick, submitCmd(m.submitter, m.timeout, m.Form()))
		case key.Matches(msg, m.keys.NextField):
			return m, m.focusField(m.focus + 1)
		case key.Matches(msg, m.keys.PrevField):
			return m, m.focusField(m.focus - 1)
		}

	case submitResultMsg:
		if msg.err != nil {
			m.state = formFailed
			m.status = failureText(msg.err, m.fallback)
			return m, nil
		}
		m.state = formSent
		m.status = "Thanks! Your message has been sent."
		m.reset()
		return m, nil

	case spinner.TickMsg:
		if m.state != formSubmitting {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.focus == fieldMessage {
		m.message, cmd = m.message.Update(msg)
		return m, cmd
	}
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

var (
	formTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	formLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	formFocusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	formOKStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	formErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	formBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(1, 2)
)

var fieldLabels = [fieldCount]string{"Name", "Email", "Phone", "Subject", "Message"}

// View renders the form centred on the screen.
func (m ContactModel) View() string {
	var b strings.Builder
	b.WriteString(formTitleStyle.Render("Get In Touch"))
	b.WriteString("\n\n")

	for i := 0; i < fieldCount; i++ {
		label := formLabelStyle
		if i == m.focus {
			label = formFocusStyle
		}
		b.WriteString(label.Render(fieldLabels[i]))
		b.WriteString("\n")
		if i == fieldMessage {
			b.WriteString(m.message.View())
		} else {
			b.WriteString(m.inputs[i].View())
		}
		b.WriteString("\n\n")
	}

	switch m.state {
	case formSubmitting:
		b.WriteString(m.spinner.View() + " Sending...")
	case formSent:
		b.WriteString(formOKStyle.Render(m.status))
	case formFailed:
		b.WriteString(formErrStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(formHelp{m.keys})))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, formBoxStyle.Render(b.String()))
}

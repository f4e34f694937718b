package styles

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModel is a yes/no question. It starts on "No".
type ConfirmModel struct {
	Message   string
	Yes       bool // Current selection
	Confirmed bool // Enter pressed
	Canceled  bool // Escape pressed
	theme     *Theme
	keys      confirmKeys
}

type confirmKeys struct {
	yes, no, confirm, cancel key.Binding
}

func defaultConfirmKeys() confirmKeys {
	return confirmKeys{
		yes:     key.NewBinding(key.WithKeys("y", "right", "l"), key.WithHelp("y/→", "yes")),
		no:      key.NewBinding(key.WithKeys("n", "left", "h"), key.WithHelp("n/←", "no")),
		confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// NewConfirm creates a confirmation question.
func NewConfirm(theme *Theme, message string) ConfirmModel {
	return ConfirmModel{Message: message, theme: theme, keys: defaultConfirmKeys()}
}

// Init implements tea.Model.
func (ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update handles the selection keys; everything else is ignored.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || m.Done() {
		return m, nil
	}

	switch {
	case key.Matches(k, m.keys.yes):
		m.Yes = true
	case key.Matches(k, m.keys.no):
		m.Yes = false
	case key.Matches(k, m.keys.confirm):
		m.Confirmed = true
	case key.Matches(k, m.keys.cancel):
		m.Canceled = true
	}
	return m, nil
}

// View renders the question, both buttons and a key hint in a box.
func (m ConfirmModel) View() string {
	t := m.theme

	yes, no := t.InactiveTab, t.ActiveTab
	if m.Yes {
		yes, no = t.ActiveTab, t.InactiveTab
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, no.Render(" No "), "  ", yes.Render(" Yes "))

	hint := ""
	for i, b := range []key.Binding{m.keys.no, m.keys.yes, m.keys.confirm, m.keys.cancel} {
		if i > 0 {
			hint += " • "
		}
		hint += b.Help().Key + " " + b.Help().Desc
	}

	return t.Box.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		t.Title.Render(m.Message),
		"",
		buttons,
		"",
		t.Subtle.Render(hint),
	))
}

// Done reports whether the question was answered or dismissed.
func (m ConfirmModel) Done() bool {
	return m.Confirmed || m.Canceled
}

// Result reports whether the answer was "Yes".
func (m ConfirmModel) Result() bool {
	return m.Confirmed && !m.Canceled && m.Yes
}

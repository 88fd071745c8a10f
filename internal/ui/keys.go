package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap holds every binding the screens react to.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Select      key.Binding
	Refresh     key.Binding
	Back        key.Binding
	ChangeRoute key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open seller"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", "ctrl+r"),
			key.WithHelp("r", "refresh"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "backspace"),
			key.WithHelp("esc", "back"),
		),
		ChangeRoute: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open…"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Keys is the process-wide key map.
var Keys = DefaultKeyMap()

// helpProvider is implemented by screens that advertise their bindings.
type helpProvider interface {
	ShortHelp() []key.Binding
}

// newHelpModel returns a bubbles/help model styled for the footer.
func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	h.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	return h
}

// RenderHelp renders the footer for the given screen bindings plus quit.
func RenderHelp(h help.Model, bindings []key.Binding) string {
	all := make([]key.Binding, 0, len(bindings)+1)
	for _, b := range bindings {
		if b.Enabled() {
			all = append(all, b)
		}
	}
	all = append(all, Keys.Quit)
	return h.ShortHelpView(all)
}

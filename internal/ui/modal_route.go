package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RoutePromptModal asks for a new identifying parameter (an order code or a
// driver name) and emits SetRouteMsg for the current screen.
type RoutePromptModal struct {
	title string
	input textinput.Model
	build func(string) Route
}

// Ensure RoutePromptModal implements View.
var _ View = (*RoutePromptModal)(nil)

// routePrompter is implemented by screens whose route can be changed in place.
type routePrompter interface {
	RoutePrompt() *RoutePromptModal
}

// NewRoutePromptModal creates a prompt prefilled with current. build turns
// the entered value into the route to switch to.
func NewRoutePromptModal(title, placeholder, current string, build func(string) Route) *RoutePromptModal {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Width = 40
	ti.SetValue(current)
	ti.Focus()
	return &RoutePromptModal{title: title, input: ti, build: build}
}

// Init implements View.
func (m *RoutePromptModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *RoutePromptModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				return m, nil
			}
			route := m.build(value)
			return m, func() tea.Msg { return SetRouteMsg{Route: route} }
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *RoutePromptModal) View() string {
	content := Styles.Title.Render(m.title) + "\n\n"
	content += m.input.View() + "\n\n"
	content += Styles.Hint.Render("Enter: open  Esc: cancel")
	return Styles.Modal.Render(content)
}

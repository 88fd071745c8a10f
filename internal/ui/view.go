package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View represents a screen or modal with its own model, update, and view.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Screen is a View opened by the navigator. Screens are identified so that
// asynchronous results reach the instance that asked for them, and disposed
// when popped so late results are discarded.
type Screen interface {
	View
	ID() int
	Route() Route
	// SetRoute switches the screen to new identifying parameters. It returns
	// false if the route belongs to a different kind of screen.
	SetRoute(Route) (tea.Cmd, bool)
	Dispose()
}

package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// handleNavigate handles NavigateMsg by pushing a new screen for the route.
// Routes with missing parameters are rejected with a status message.
func (a *appModelAdapter) handleNavigate(msg NavigateMsg) (tea.Model, tea.Cmd) {
	s, err := a.newScreen(msg.Route)
	if err != nil {
		a.Status = fmt.Sprintf("Open screen: %v", err)
		a.StatusIsError = true
		return a, nil
	}
	a.Status = ""
	a.StatusIsError = false
	a.Stack.Push(s)
	return a, s.Init()
}

// handleBack handles BackMsg by popping the current screen. The root screen
// stays; there is nothing to go back to.
func (a *appModelAdapter) handleBack() (tea.Model, tea.Cmd) {
	if a.Stack.Len() <= 1 {
		return a, nil
	}
	a.Stack.Pop()
	a.Status = ""
	a.StatusIsError = false
	return a, nil
}

// handleSetRoute handles SetRouteMsg by switching the current screen to new
// identifying parameters, which restarts its fetch cycle.
func (a *appModelAdapter) handleSetRoute(msg SetRouteMsg) (tea.Model, tea.Cmd) {
	a.Prompt = nil
	s := a.Current()
	if s == nil {
		return a, nil
	}
	if err := msg.Route.Validate(); err != nil {
		a.Status = fmt.Sprintf("Change route: %v", err)
		a.StatusIsError = true
		return a, nil
	}
	cmd, ok := s.SetRoute(msg.Route)
	if !ok {
		a.Status = "Change route: not supported on this screen"
		a.StatusIsError = true
		return a, nil
	}
	a.Status = ""
	a.StatusIsError = false
	return a, cmd
}

// handleShowRoutePrompt opens the route prompt of the current screen, if it has one.
func (a *appModelAdapter) handleShowRoutePrompt() (tea.Model, tea.Cmd) {
	rp, ok := a.Current().(routePrompter)
	if !ok {
		return a, nil
	}
	prompt := rp.RoutePrompt()
	if prompt == nil {
		return a, nil
	}
	a.Prompt = prompt
	return a, prompt.Init()
}

// handleWindowSize records the terminal size and resizes every screen.
func (a *appModelAdapter) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.width = msg.Width
	a.height = msg.Height
	return a, a.broadcast(a.screenSize())
}

package ui

import (
	"pickupdeck/internal/api"
	"pickupdeck/internal/screen"
)

// NavigateMsg opens a new screen for Route on top of the stack.
type NavigateMsg struct {
	Route Route
}

// BackMsg pops the current screen (the "← Back" button).
type BackMsg struct{}

// SetRouteMsg changes the identifying parameters of the current screen.
type SetRouteMsg struct {
	Route Route
}

// RefreshMsg triggers a pull-to-refresh on the current screen.
type RefreshMsg struct{}

// ShowRoutePromptMsg opens the prompt for changing the current route.
type ShowRoutePromptMsg struct{}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}

// targetedMsg is implemented by results that belong to one screen instance.
type targetedMsg interface {
	targetScreen() int
}

// productsLoadedMsg carries the outcome of a product fetch.
type productsLoadedMsg struct {
	ScreenID int
	Ticket   screen.Ticket
	Products []api.Product
	Err      error
}

func (m productsLoadedMsg) targetScreen() int { return m.ScreenID }

// sellersLoadedMsg carries the outcome of a not-picked sellers fetch.
type sellersLoadedMsg struct {
	ScreenID int
	Ticket   screen.Ticket
	Sellers  []api.Seller
	Err      error
}

func (m sellersLoadedMsg) targetScreen() int { return m.ScreenID }

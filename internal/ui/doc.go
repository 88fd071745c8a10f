// Package ui is the Bubble Tea front end of pickupdeck.
//
// Core abstractions:
//   - View: a screen with its own model, update and view (Elm-style)
//   - ViewStack: stack-based navigation; the top view receives input
//   - Route: the identifying parameters a screen is opened with
//   - RoutePromptModal: prompt drawn under the current screen to change its route
//
// Screens own a screen.State and follow the same lifecycle: fetch on open,
// render loading/error/data, refresh on demand without re-entering loading.
package ui

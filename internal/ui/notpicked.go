package ui

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"pickupdeck/internal/api"
	"pickupdeck/internal/screen"
)

const sellersFailMessage = "Error fetching pickup sellers"

// sellerItem implements list.Item for api.Seller.
type sellerItem struct {
	api.Seller
}

func (s sellerItem) FilterValue() string { return s.SellerName }

// sellerDelegate draws each seller as a bordered tile.
type sellerDelegate struct{}

func (sellerDelegate) Height() int                         { return 3 }
func (sellerDelegate) Spacing() int                        { return 1 }
func (sellerDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (sellerDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(sellerItem)
	if !ok {
		return
	}
	fmt.Fprint(w, RenderSellerTile(it.Seller, m.Width(), index == m.Index()))
}

// NotPickedView lists the sellers a driver still has to pick up from.
type NotPickedView struct {
	id         int
	driverName string
	fetcher    SellerFetcher
	state      *screen.State[[]api.Seller]
	list       list.Model
	spinner    spinner.Model
}

// Ensure NotPickedView implements Screen.
var _ Screen = (*NotPickedView)(nil)

// NewNotPickedView creates the seller list for a driver. Nothing is fetched
// until Init.
func NewNotPickedView(id int, driverName string, fetcher SellerFetcher) *NotPickedView {
	l := list.New(nil, sellerDelegate{}, defaultWidth, defaultHeight-2)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title

	v := &NotPickedView{
		id:      id,
		fetcher: fetcher,
		state:   screen.New[[]api.Seller](sellersFailMessage),
		list:    l,
		spinner: newSpinner(),
	}
	v.setDriver(driverName)
	return v
}

// ID implements Screen.
func (v *NotPickedView) ID() int { return v.id }

// Route implements Screen.
func (v *NotPickedView) Route() Route { return NotPickedRoute{DriverName: v.driverName} }

// State exposes the lifecycle for inspection.
func (v *NotPickedView) State() *screen.State[[]api.Seller] { return v.state }

// Init implements View. It starts the initial fetch.
func (v *NotPickedView) Init() tea.Cmd {
	return tea.Batch(v.spinner.Tick, v.fetch(v.state.Begin()))
}

// SetRoute implements Screen. A different driver restarts the lifecycle.
func (v *NotPickedView) SetRoute(r Route) (tea.Cmd, bool) {
	nr, ok := r.(NotPickedRoute)
	if !ok {
		return nil, false
	}
	if nr.DriverName == v.driverName {
		return nil, true
	}
	v.setDriver(nr.DriverName)
	ticket := v.state.Reset()
	v.list.SetItems(nil)
	return tea.Batch(v.spinner.Tick, v.fetch(ticket)), true
}

// Refresh re-fetches the sellers. The list stays attached after the first
// fetch completes, so refresh works from both the data and the error state.
func (v *NotPickedView) Refresh() tea.Cmd {
	if v.state.Loading() {
		return nil
	}
	return tea.Batch(v.spinner.Tick, v.fetch(v.state.BeginRefresh()))
}

// Dispose implements Screen.
func (v *NotPickedView) Dispose() {
	v.state.Dispose()
}

func (v *NotPickedView) setDriver(name string) {
	v.driverName = name
	v.list.Title = "Not picked: " + name
}

func (v *NotPickedView) fetch(t screen.Ticket) tea.Cmd {
	return fetchSellersCmd(v.fetcher, v.id, v.driverName, t)
}

// SelectedSeller returns the seller under the cursor, or nil.
func (v *NotPickedView) SelectedSeller() *api.Seller {
	it, ok := v.list.SelectedItem().(sellerItem)
	if !ok {
		return nil
	}
	return &it.Seller
}

// Update implements View.
func (v *NotPickedView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case sellersLoadedMsg:
		if msg.ScreenID != v.id || !v.state.Resolve(msg.Ticket, msg.Sellers, msg.Err) {
			return v, nil
		}
		if msg.Err != nil {
			log.Printf("ui: error fetching pickup sellers for %s: %v", v.driverName, msg.Err)
			return v, v.list.SetItems(nil)
		}
		return v, v.list.SetItems(sellerItems(msg.Sellers))
	case tea.WindowSizeMsg:
		v.list.SetSize(msg.Width, max(msg.Height-2, 1))
		return v, nil
	case spinner.TickMsg:
		if v.state.Loading() || v.state.Refreshing() {
			var cmd tea.Cmd
			v.spinner, cmd = v.spinner.Update(msg)
			return v, cmd
		}
		return v, nil
	case RefreshMsg:
		return v, v.Refresh()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, Keys.Back):
			return v, func() tea.Msg { return BackMsg{} }
		case key.Matches(msg, Keys.Refresh):
			return v, func() tea.Msg { return RefreshMsg{} }
		case key.Matches(msg, Keys.Select):
			if s := v.SelectedSeller(); s != nil && v.state.Phase() == screen.PhaseSuccess {
				route := sellerRoute(v.driverName, s.SellerName)
				return v, func() tea.Msg { return NavigateMsg{Route: route} }
			}
			return v, nil
		}
	}

	if v.state.Phase() == screen.PhaseSuccess {
		var cmd tea.Cmd
		v.list, cmd = v.list.Update(msg)
		return v, cmd
	}
	return v, nil
}

// View implements View.
func (v *NotPickedView) View() string {
	switch v.state.Phase() {
	case screen.PhaseLoading:
		return v.spinner.View()
	case screen.PhaseFailed:
		msg, _ := v.state.Error()
		out := Styles.Error.Render(msg)
		if v.state.Refreshing() {
			out = v.spinner.View() + " " + out
		}
		return out
	}

	var b strings.Builder
	if v.state.Refreshing() {
		b.WriteString(v.spinner.View() + " " + Styles.Hint.Render("Refreshing…"))
	}
	b.WriteString("\n")
	if len(v.list.Items()) == 0 {
		b.WriteString(Styles.Title.Render(v.list.Title) + "\n\n")
		b.WriteString(Styles.Empty.Render("No sellers waiting for pickup"))
		return b.String()
	}
	b.WriteString(v.list.View())
	return b.String()
}

// ShortHelp lists the bindings active in the current phase.
func (v *NotPickedView) ShortHelp() []key.Binding {
	switch v.state.Phase() {
	case screen.PhaseSuccess:
		return []key.Binding{Keys.Up, Keys.Down, Keys.Select, Keys.Refresh, Keys.ChangeRoute}
	case screen.PhaseFailed:
		return []key.Binding{Keys.Refresh, Keys.ChangeRoute}
	}
	return []key.Binding{Keys.ChangeRoute}
}

// RoutePrompt returns a prompt for switching to another driver.
func (v *NotPickedView) RoutePrompt() *RoutePromptModal {
	return NewRoutePromptModal("Switch driver", "driver name", v.driverName, func(name string) Route {
		return NotPickedRoute{DriverName: name}
	})
}

func sellerItems(sellers []api.Seller) []list.Item {
	items := make([]list.Item, len(sellers))
	for i, s := range sellers {
		items[i] = sellerItem{Seller: s}
	}
	return items
}

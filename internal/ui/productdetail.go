package ui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"pickupdeck/internal/api"
	"pickupdeck/internal/screen"
)

const (
	productsFailMessage = "Error fetching product details"

	defaultWidth  = 80
	defaultHeight = 24
	// productHeaderLines is the space above the scroll area: back button,
	// its margin and the refresh line.
	productHeaderLines = 3
)

// ProductDetailsView shows the items of one order, or of one seller for a
// driver, as a scrollable list of cards.
type ProductDetailsView struct {
	id       int
	route    Route
	fetcher  ProductFetcher
	state    *screen.State[[]api.Product]
	spinner  spinner.Model
	viewport viewport.Model
	width    int
}

// Ensure ProductDetailsView implements Screen.
var _ Screen = (*ProductDetailsView)(nil)

// NewProductDetailsView creates a product screen for a ProductRoute or a
// SellerProductsRoute. Nothing is fetched until Init.
func NewProductDetailsView(id int, route Route, fetcher ProductFetcher) *ProductDetailsView {
	return &ProductDetailsView{
		id:       id,
		route:    route,
		fetcher:  fetcher,
		state:    screen.New[[]api.Product](productsFailMessage),
		spinner:  newSpinner(),
		viewport: viewport.New(defaultWidth, defaultHeight-productHeaderLines),
		width:    defaultWidth,
	}
}

// ID implements Screen.
func (v *ProductDetailsView) ID() int { return v.id }

// Route implements Screen.
func (v *ProductDetailsView) Route() Route { return v.route }

// State exposes the lifecycle for inspection.
func (v *ProductDetailsView) State() *screen.State[[]api.Product] { return v.state }

// Init implements View. It starts the initial fetch.
func (v *ProductDetailsView) Init() tea.Cmd {
	return tea.Batch(v.spinner.Tick, v.fetch(v.state.Begin()))
}

// SetRoute implements Screen. A route with a new key restarts the lifecycle
// from Loading with exactly one fetch; the same key is a no-op.
func (v *ProductDetailsView) SetRoute(r Route) (tea.Cmd, bool) {
	switch r.(type) {
	case ProductRoute, SellerProductsRoute:
	default:
		return nil, false
	}
	if r.Key() == v.route.Key() {
		return nil, true
	}
	v.route = r
	ticket := v.state.Reset()
	v.viewport.SetContent("")
	v.viewport.GotoTop()
	return tea.Batch(v.spinner.Tick, v.fetch(ticket)), true
}

// Refresh re-fetches without showing the loading indicator. Only available
// once the list has rendered; the error state has no list to pull.
func (v *ProductDetailsView) Refresh() tea.Cmd {
	if v.state.Phase() != screen.PhaseSuccess {
		return nil
	}
	return tea.Batch(v.spinner.Tick, v.fetch(v.state.BeginRefresh()))
}

// Dispose implements Screen.
func (v *ProductDetailsView) Dispose() {
	v.state.Dispose()
}

func (v *ProductDetailsView) fetch(t screen.Ticket) tea.Cmd {
	return fetchProductsCmd(v.fetcher, v.id, v.route, t)
}

// Update implements View.
func (v *ProductDetailsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case productsLoadedMsg:
		if msg.ScreenID != v.id || !v.state.Resolve(msg.Ticket, msg.Products, msg.Err) {
			return v, nil
		}
		if msg.Err != nil {
			log.Printf("ui: product fetch for %s failed: %v", v.route.Key(), msg.Err)
		}
		v.syncContent()
		return v, nil
	case tea.WindowSizeMsg:
		v.setSize(msg.Width, msg.Height)
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
		}
	}

	if v.state.Phase() == screen.PhaseSuccess {
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *ProductDetailsView) setSize(w, h int) {
	v.width = w
	v.viewport.Width = w
	v.viewport.Height = max(h-productHeaderLines, 1)
	v.syncContent()
}

// syncContent re-renders the cards into the viewport.
func (v *ProductDetailsView) syncContent() {
	products, ok := v.state.Data()
	if !ok {
		v.viewport.SetContent("")
		return
	}
	if len(products) == 0 {
		v.viewport.SetContent(Styles.Empty.Render("No products"))
		return
	}
	v.viewport.SetContent(RenderProductList(products, v.width))
}

// View implements View.
func (v *ProductDetailsView) View() string {
	switch v.state.Phase() {
	case screen.PhaseLoading:
		return v.spinner.View()
	case screen.PhaseFailed:
		msg, _ := v.state.Error()
		return Styles.Error.Render(msg)
	}

	var b strings.Builder
	b.WriteString(Styles.BackButton.Render("← Back") + "\n")
	if v.state.Refreshing() {
		b.WriteString(v.spinner.View() + " " + Styles.Hint.Render("Refreshing…"))
	}
	b.WriteString("\n")
	b.WriteString(v.viewport.View())
	return b.String()
}

// ShortHelp lists the bindings active in the current phase.
func (v *ProductDetailsView) ShortHelp() []key.Binding {
	bindings := []key.Binding{Keys.Back}
	if v.state.Phase() == screen.PhaseSuccess {
		bindings = append(bindings, Keys.Up, Keys.Down, Keys.Refresh)
	}
	if _, ok := v.route.(ProductRoute); ok {
		bindings = append(bindings, Keys.ChangeRoute)
	}
	return bindings
}

// RoutePrompt returns a prompt for switching to another order, or nil for
// seller product lists.
func (v *ProductDetailsView) RoutePrompt() *RoutePromptModal {
	r, ok := v.route.(ProductRoute)
	if !ok {
		return nil
	}
	return NewRoutePromptModal("Open order", "order code", r.OrderCode, func(code string) Route {
		return ProductRoute{OrderCode: code, OrderType: r.OrderType}
	})
}

// newSpinner returns the loading indicator shared by all screens.
func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Spinner
	return s
}

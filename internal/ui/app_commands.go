package ui

import (
	"context"

	"pickupdeck/internal/api"
	"pickupdeck/internal/screen"

	tea "github.com/charmbracelet/bubbletea"
)

// ProductFetcher loads product lists. *api.Client implements it.
type ProductFetcher interface {
	ProductDetails(ctx context.Context, q api.ProductQuery) ([]api.Product, error)
	SellerProducts(ctx context.Context, q api.SellerQuery) ([]api.Product, error)
}

// SellerFetcher loads the not-picked seller list. *api.Client implements it.
type SellerFetcher interface {
	NotPickedSellers(ctx context.Context, driverName string) ([]api.Seller, error)
}

// Backend is everything the screens fetch from.
type Backend interface {
	ProductFetcher
	SellerFetcher
}

var _ Backend = (*api.Client)(nil)

// fetchProductsCmd returns a command that loads the products for route and
// reports them to the screen with the given id. The request is never
// cancelled; a superseded result is dropped by the screen's ticket check.
func fetchProductsCmd(f ProductFetcher, screenID int, route Route, ticket screen.Ticket) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var (
			products []api.Product
			err      error
		)
		switch r := route.(type) {
		case ProductRoute:
			products, err = f.ProductDetails(ctx, api.ProductQuery{
				OrderCode: r.OrderCode,
				OrderType: r.OrderType,
			})
		case SellerProductsRoute:
			products, err = f.SellerProducts(ctx, api.SellerQuery{
				Endpoint:   r.Endpoint,
				DriverName: r.DriverName,
				SellerName: r.SellerName,
			})
		default:
			err = api.ErrFetchFailed
		}
		return productsLoadedMsg{ScreenID: screenID, Ticket: ticket, Products: products, Err: err}
	}
}

// fetchSellersCmd returns a command that loads the sellers a driver has not
// picked from yet.
func fetchSellersCmd(f SellerFetcher, screenID int, driverName string, ticket screen.Ticket) tea.Cmd {
	return func() tea.Msg {
		sellers, err := f.NotPickedSellers(context.Background(), driverName)
		return sellersLoadedMsg{ScreenID: screenID, Ticket: ticket, Sellers: sellers, Err: err}
	}
}

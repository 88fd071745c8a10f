package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"pickupdeck/internal/api"
	"pickupdeck/internal/jsonutil"
)

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// collect runs cmd and any batched commands it expands to, returning the
// produced messages. Only use it on commands that return immediately.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// only returns the messages of type T.
func only[T any](msgs []tea.Msg) []T {
	var out []T
	for _, m := range msgs {
		if t, ok := m.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// fakeBackend answers every fetch synchronously from its fields and records
// the calls it received.
type fakeBackend struct {
	products []api.Product
	sellers  []api.Seller
	err      error

	productCalls       []api.ProductQuery
	sellerProductCalls []api.SellerQuery
	sellerCalls        []string
}

func (f *fakeBackend) ProductDetails(_ context.Context, q api.ProductQuery) ([]api.Product, error) {
	f.productCalls = append(f.productCalls, q)
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeBackend) SellerProducts(_ context.Context, q api.SellerQuery) ([]api.Product, error) {
	f.sellerProductCalls = append(f.sellerProductCalls, q)
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeBackend) NotPickedSellers(_ context.Context, driverName string) ([]api.Seller, error) {
	f.sellerCalls = append(f.sellerCalls, driverName)
	if f.err != nil {
		return nil, f.err
	}
	return f.sellers, nil
}

func quantity(n int) *jsonutil.FlexInt {
	q := jsonutil.FlexInt(n)
	return &q
}

func testProducts() []api.Product {
	return []api.Product{
		{LineItemName: "Green Tea", LineItemSKU: "GT-1", TotalItemQuantity: quantity(2), PickupStatus: "Picked", Image1: "http://img/gt.png"},
		{LineItemName: "Plum Jam", LineItemSKU: "PJ-7", TotalItemQuantity: quantity(1), PickupStatus: "Not Picked"},
	}
}

func testSellers() []api.Seller {
	return []api.Seller{
		{SellerName: "Acme", ProductCount: 1},
		{SellerName: "Beta", ProductCount: 3},
	}
}

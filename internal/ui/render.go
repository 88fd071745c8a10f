package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"pickupdeck/internal/api"
)

const (
	// minContentWidth keeps cards readable on very narrow terminals.
	minContentWidth = 20
	// boxChrome is the horizontal space taken by a rounded border plus one
	// column of padding on each side.
	boxChrome = 4
	ellipsis  = "…"
)

// StatusStyle returns the style of a product's pickup status label: the
// picked style for exactly "Picked", the not-picked style otherwise.
func StatusStyle(p api.Product) lipgloss.Style {
	if p.IsPicked() {
		return Styles.Picked
	}
	return Styles.NotPicked
}

// RenderProductCard renders one product as a bordered card width columns wide.
func RenderProductCard(p api.Product, width int) string {
	inner := max(width-boxChrome, minContentWidth)

	image := Styles.Empty.Render("(no image)")
	if p.Image1 != "" {
		image = Styles.Image.Render(truncate.StringWithTail(p.Image1, uint(inner), ellipsis))
	}

	lines := []string{
		image,
		field("Name", p.LineItemName, inner),
		field("SKU", p.LineItemSKU, inner),
		field("Quantity", p.QuantityLabel(), inner),
		StatusStyle(p).Render(p.PickupStatus),
	}
	return Styles.Card.Width(inner + 2).Render(strings.Join(lines, "\n"))
}

// RenderProductList renders every product as a card, in order. An empty
// slice renders nothing.
func RenderProductList(products []api.Product, width int) string {
	if len(products) == 0 {
		return ""
	}
	cards := make([]string, len(products))
	for i, p := range products {
		cards[i] = RenderProductCard(p, width)
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// RenderSellerTile renders a seller as a one-line tile: name on the left,
// pluralized item count on the right.
func RenderSellerTile(s api.Seller, width int, selected bool) string {
	inner := max(width-boxChrome, minContentWidth)
	count := s.CountLabel()

	nameWidth := max(inner-lipgloss.Width(count)-1, 1)
	name := truncate.StringWithTail(s.SellerName, uint(nameWidth), ellipsis)
	gap := max(inner-lipgloss.Width(name)-lipgloss.Width(count), 1)
	line := Styles.SellerName.Render(name) + strings.Repeat(" ", gap) + Styles.ItemCount.Render(count)

	style := Styles.Tile
	if selected {
		style = Styles.TileSelected
	}
	return style.Width(inner + 2).Render(line)
}

// field renders "Label: value", wrapped to width.
func field(label, value string, width int) string {
	return wordwrap.String(Styles.Label.Render(label+":")+" "+value, width)
}

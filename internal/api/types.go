package api

import (
	"fmt"
	"strconv"

	"pickupdeck/internal/jsonutil"
)

// StatusPicked is the only pickup status that counts as picked.
const StatusPicked = "Picked"

// Product is one line item of an order as returned by the product endpoints.
type Product struct {
	LineItemName      string            `json:"line_item_name"`
	LineItemSKU       string            `json:"line_item_sku"`
	TotalItemQuantity *jsonutil.FlexInt `json:"total_item_quantity"`
	PickupStatus      string            `json:"pickup_status"`
	Image1            string            `json:"image1"`
}

// IsPicked reports whether the item has been physically picked.
// Only the exact string "Picked" matches; there is no third category.
func (p Product) IsPicked() bool {
	return p.PickupStatus == StatusPicked
}

// QuantityLabel renders the item quantity, or "" when the backend sent none.
func (p Product) QuantityLabel() string {
	if p.TotalItemQuantity == nil {
		return ""
	}
	return strconv.Itoa(int(*p.TotalItemQuantity))
}

// Key identifies a product card within one order.
func (p Product) Key() string {
	return p.LineItemName + "-" + p.LineItemSKU
}

// Seller is a pickup location with items still waiting to be picked.
type Seller struct {
	SellerName   string           `json:"sellerName"`
	ProductCount jsonutil.FlexInt `json:"productCount"`
}

// CountLabel renders the item count, singular at exactly one.
func (s Seller) CountLabel() string {
	if s.ProductCount == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", s.ProductCount)
}

// notPickedResponse is the envelope of the not-picked endpoint.
type notPickedResponse struct {
	Sellers []Seller `json:"sellers"`
}

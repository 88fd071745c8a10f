package ui

import (
	"errors"
	"fmt"

	"pickupdeck/internal/api"
)

// Route carries the identifying parameters a screen is opened with. Routes
// are immutable; a screen re-fetches only when its route's Key changes.
type Route interface {
	// Key identifies the data the route points at.
	Key() string
	// Validate checks that required parameters are present.
	Validate() error
}

// ErrMissingParam is returned by Route.Validate.
var ErrMissingParam = errors.New("missing route parameter")

// ProductRoute opens the product details of one order.
type ProductRoute struct {
	OrderCode string // order_code
	OrderType string // metafield_order_type
}

// Key implements Route.
func (r ProductRoute) Key() string {
	return "order:" + r.OrderCode + "|" + r.OrderType
}

// Validate implements Route.
func (r ProductRoute) Validate() error {
	if r.OrderCode == "" {
		return fmt.Errorf("%w: order_code", ErrMissingParam)
	}
	return nil
}

// SellerProductsRoute opens the product list of one seller for a driver.
type SellerProductsRoute struct {
	DriverName string
	SellerName string
	Endpoint   string
}

// Key implements Route.
func (r SellerProductsRoute) Key() string {
	return "seller:" + r.Endpoint + "|" + r.DriverName + "|" + r.SellerName
}

// Validate implements Route.
func (r SellerProductsRoute) Validate() error {
	switch {
	case r.DriverName == "":
		return fmt.Errorf("%w: driverName", ErrMissingParam)
	case r.SellerName == "":
		return fmt.Errorf("%w: sellerName", ErrMissingParam)
	case r.Endpoint == "":
		return fmt.Errorf("%w: endpoint", ErrMissingParam)
	}
	return nil
}

// NotPickedRoute opens the list of sellers a driver still has to visit.
type NotPickedRoute struct {
	DriverName string
}

// Key implements Route.
func (r NotPickedRoute) Key() string {
	return "driver:" + r.DriverName
}

// Validate implements Route.
func (r NotPickedRoute) Validate() error {
	if r.DriverName == "" {
		return fmt.Errorf("%w: driverName", ErrMissingParam)
	}
	return nil
}

// sellerRoute builds the route opened by selecting a seller tile.
func sellerRoute(driverName, sellerName string) SellerProductsRoute {
	return SellerProductsRoute{
		DriverName: driverName,
		SellerName: sellerName,
		Endpoint:   api.NotPickedProductsEndpoint,
	}
}

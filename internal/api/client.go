// Package api is the data-access layer for the delivery backend.
//
// Every call is a single GET with transport defaults: no retry, no timeout
// beyond what the injected HTTP client applies, and no cancellation of a
// request that a later one supersedes. Callers decide which response wins.
package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"pickupdeck/internal/jsonutil"
)

const (
	// ProductDetailsPath serves the items of one order.
	ProductDetailsPath = "/deliveryscreen/product-details"
	// NotPickedProductsEndpoint lists a seller's unpicked items for a driver.
	NotPickedProductsEndpoint = "/api/not-picked-products"

	tracerName      = "pickupdeck/api"
	requestIDHeader = "X-Request-ID"
)

// ErrFetchFailed is the single failure kind of this package. Network errors,
// non-2xx statuses and undecodable bodies all wrap it.
var ErrFetchFailed = errors.New("fetch failed")

// HTTPClient executes HTTP requests. *http.Client implements it; tests can
// substitute a fake.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the delivery backend rooted at a fixed base URL.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	tracer     oteltrace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc HTTPClient) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTracer replaces the tracer obtained from the global provider.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// New creates a client for baseURL, e.g. "https://api.example.com".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend root this client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ProductQuery identifies an order on the product-details endpoint.
type ProductQuery struct {
	OrderCode string
	OrderType string // metafield_order_type
}

// SellerQuery identifies a seller's product list for a driver.
type SellerQuery struct {
	Endpoint   string // path relative to the base URL
	DriverName string
	SellerName string
}

// ProductDetails fetches the items of one order. The endpoint answers with a
// bare JSON array.
func (c *Client) ProductDetails(ctx context.Context, q ProductQuery) ([]Product, error) {
	params := url.Values{}
	params.Set("order_code", q.OrderCode)
	params.Set("metafield_order_type", q.OrderType)

	var products []Product
	err := c.get(ctx, "api.ProductDetails", ProductDetailsPath, params, func(body io.Reader) error {
		var err error
		products, err = jsonutil.DecodeArrayAllowEmpty[Product](body, "decode product details")
		return err
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// NotPickedSellers fetches the sellers a driver still has to visit. Unlike
// the product endpoints the payload is an object with a "sellers" array.
func (c *Client) NotPickedSellers(ctx context.Context, driverName string) ([]Seller, error) {
	path := "/api/drivers/" + url.PathEscape(driverName) + "/not-picked"

	var resp notPickedResponse
	err := c.get(ctx, "api.NotPickedSellers", path, nil, func(body io.Reader) error {
		return jsonutil.DecodeWithContext(body, &resp, "decode not-picked sellers")
	})
	if err != nil {
		return nil, err
	}
	if resp.Sellers == nil {
		resp.Sellers = []Seller{}
	}
	return resp.Sellers, nil
}

// SellerProducts fetches a seller's product list from q.Endpoint. The payload
// is a bare array of products, same as ProductDetails.
func (c *Client) SellerProducts(ctx context.Context, q SellerQuery) ([]Product, error) {
	endpoint := q.Endpoint
	if endpoint == "" {
		endpoint = NotPickedProductsEndpoint
	}
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	params := url.Values{}
	params.Set("driverName", q.DriverName)
	params.Set("sellerName", q.SellerName)

	var products []Product
	err := c.get(ctx, "api.SellerProducts", endpoint, params, func(body io.Reader) error {
		var err error
		products, err = jsonutil.DecodeArrayAllowEmpty[Product](body, "decode seller products")
		return err
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// get performs one traced GET and hands a 2xx body to decode. Every failure
// is wrapped in ErrFetchFailed.
func (c *Client) get(ctx context.Context, spanName, path string, params url.Values, decode func(io.Reader) error) (err error) {
	requestID := uuid.NewString()
	ctx, span := c.tracer.Start(ctx, spanName, oteltrace.WithSpanKind(oteltrace.SpanKindClient))
	span.SetAttributes(
		attribute.String("pickupdeck.http.path", path),
		attribute.String("pickupdeck.request.id", requestID),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logFailure(spanName+" "+requestID, err)
		}
		span.End()
	}()

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %v", ErrFetchFailed, path, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("pickupdeck.http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: GET %s: status %d", ErrFetchFailed, path, resp.StatusCode)
	}
	if err := decode(resp.Body); err != nil {
		return fmt.Errorf("%w: GET %s: %v", ErrFetchFailed, path, err)
	}
	return nil
}

// logFailure writes a fetch failure to the process log with its context.
func logFailure(what string, err error) {
	log.Printf("api: %s: %v", what, err)
}

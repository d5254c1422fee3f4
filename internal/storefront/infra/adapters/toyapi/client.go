// Package toyapi is the HTTP adapter for the remote toy-shop API. The API is
// a fixed collaborator: GET /api/toys lists products, GET /api/seed populates
// sample data, POST /api/orders places an order. The adapter implements the
// core ports against that contract and maps failures to LoadError and
// CheckoutError.
package toyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/jcuriel/toyshop-storefront/internal/storefront/core/domain/entity"
	"github.com/jcuriel/toyshop-storefront/internal/storefront/core/ports"
)

// Ensure Client implements both ports at compile time.
var (
	_ ports.Catalog      = (*Client)(nil)
	_ ports.OrderGateway = (*Client)(nil)
)

// Client talks to the remote toy-shop API over HTTP. Requests carry the
// caller's context; no retries, no explicit cancellation beyond it.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the API at baseURL. Outgoing requests are
// traced via otelhttp so catalog loads and order submissions show up as
// spans under the handler that triggered them.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// List fetches the products matching the filter. Only non-empty filter
// fields become query parameters.
func (c *Client) List(ctx context.Context, f ports.Filter) ([]entity.Product, error) {
	endpoint := c.baseURL + "/api/toys"
	params := url.Values{}
	if f.Category != "" {
		params.Set("category", f.Category)
	}
	if f.Query != "" {
		params.Set("q", f.Query)
	}
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &LoadError{Message: "failed to load toys", Err: err}
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, &LoadError{Message: "failed to load toys", Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &LoadError{Message: fmt.Sprintf("failed to load toys: status %d", res.StatusCode)}
	}

	var toys []entity.Product
	if err := json.NewDecoder(res.Body).Decode(&toys); err != nil {
		return nil, &LoadError{Message: "failed to decode toys", Err: err}
	}
	return toys, nil
}

// Seed triggers server-side population of sample products. The response body
// is drained and discarded; callers reload the catalog afterwards.
func (c *Client) Seed(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/seed", nil)
	if err != nil {
		return &LoadError{Message: "failed to seed catalog", Err: err}
	}

	res, err := c.http.Do(req)
	if err != nil {
		return &LoadError{Message: "failed to seed catalog", Err: err}
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &LoadError{Message: fmt.Sprintf("failed to seed catalog: status %d", res.StatusCode)}
	}
	return nil
}

// Submit posts the order and returns the server-assigned order ID. On a
// non-success response the server's `detail` field, when present, becomes the
// CheckoutError message.
func (c *Client) Submit(ctx context.Context, order entity.Order) (string, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return "", &CheckoutError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return "", &CheckoutError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return "", &CheckoutError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var failure struct {
			Detail string `json:"detail"`
		}
		_ = json.NewDecoder(res.Body).Decode(&failure)
		return "", &CheckoutError{Detail: failure.Detail}
	}

	var placed struct {
		OrderID string `json:"order_id"`
	}
	if err := json.NewDecoder(res.Body).Decode(&placed); err != nil {
		return "", &CheckoutError{Err: err}
	}
	return placed.OrderID, nil
}

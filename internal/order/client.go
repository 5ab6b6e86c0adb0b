package order

import (
	"context"
	"fmt"

	"github.com/wichananm65/topup-storefront/internal/backend"
)

// Client covers the order endpoints of the backend contract.
type Client interface {
	Create(ctx context.Context, req CreateRequest) (CreateResponse, error)
	Get(ctx context.Context, orderID int) (Order, error)
	ListByCustomer(ctx context.Context, customerID int) ([]Order, error)
}

type HTTPClient struct {
	api *backend.API
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(api *backend.API) *HTTPClient {
	return &HTTPClient{api: api}
}

func (c *HTTPClient) Create(ctx context.Context, req CreateRequest) (CreateResponse, error) {
	var resp CreateResponse
	if err := c.api.Post(ctx, "/api/orders", req, &resp); err != nil {
		return CreateResponse{}, err
	}
	return resp, nil
}

func (c *HTTPClient) Get(ctx context.Context, orderID int) (Order, error) {
	var ord Order
	if err := c.api.Get(ctx, fmt.Sprintf("/api/orders/%d", orderID), nil, &ord); err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (c *HTTPClient) ListByCustomer(ctx context.Context, customerID int) ([]Order, error) {
	var orders []Order
	if err := c.api.Get(ctx, fmt.Sprintf("/api/orders/customer/%d", customerID), nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

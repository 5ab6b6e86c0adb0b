package balance

import (
	"context"

	"github.com/wichananm65/topup-storefront/internal/backend"
)

// Balance is the customer's prepaid spending capacity. The backend is the
// authoritative source; this layer never computes it.
type Balance struct {
	Balance float64 `json:"balance"`
}

// Client fetches the current balance.
type Client interface {
	FetchBalance(ctx context.Context) (Balance, error)
}

type HTTPClient struct {
	api *backend.API
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(api *backend.API) *HTTPClient {
	return &HTTPClient{api: api}
}

func (c *HTTPClient) FetchBalance(ctx context.Context) (Balance, error) {
	var b Balance
	if err := c.api.Get(ctx, "/api/balance", nil, &b); err != nil {
		return Balance{}, err
	}
	return b, nil
}

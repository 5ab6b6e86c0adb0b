package catalog

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"github.com/wichananm65/topup-storefront/internal/backend"
)

var ErrNotFound = errors.New("product not found")

// Client fetches catalog pages. The live implementation talks to the
// backend; internal/mock provides the offline substitute.
type Client interface {
	FetchProducts(ctx context.Context, page int) (ProductsResponse, error)
}

type HTTPClient struct {
	api *backend.API
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(api *backend.API) *HTTPClient {
	return &HTTPClient{api: api}
}

func (c *HTTPClient) FetchProducts(ctx context.Context, page int) (ProductsResponse, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))

	var resp ProductsResponse
	if err := c.api.Get(ctx, "/products", q, &resp); err != nil {
		return ProductsResponse{}, err
	}
	return resp, nil
}

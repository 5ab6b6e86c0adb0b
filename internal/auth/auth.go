package auth

import (
	"context"

	"github.com/wichananm65/topup-storefront/internal/backend"
)

// SignUpRequest is the payload forwarded to the auth backend.
type SignUpRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Client forwards sign-up requests. Account creation and credential checks
// are entirely backend-owned; this layer only passes the form along.
type Client interface {
	SignUp(ctx context.Context, req SignUpRequest) error
}

type HTTPClient struct {
	api *backend.API
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(api *backend.API) *HTTPClient {
	return &HTTPClient{api: api}
}

func (c *HTTPClient) SignUp(ctx context.Context, req SignUpRequest) error {
	return c.api.Post(ctx, "/auth/signup", req, nil)
}

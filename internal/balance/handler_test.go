package balance

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/topup-storefront/internal/backend"
)

type fakeClient struct {
	bal Balance
	err error
}

func (f *fakeClient) FetchBalance(_ context.Context) (Balance, error) {
	return f.bal, f.err
}

func TestGetBalance(t *testing.T) {
	app := fiber.New()
	NewHandler(&fakeClient{bal: Balance{Balance: 5000}}).RegisterProtectedRoutes(app)

	res, err := app.Test(httptest.NewRequest("GET", "/api/balance", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	var b Balance
	if err := json.NewDecoder(res.Body).Decode(&b); err != nil {
		t.Fatal(err)
	}
	if b.Balance != 5000 {
		t.Fatalf("expected 5000, got %v", b.Balance)
	}
}

func TestGetBalanceUpstreamError(t *testing.T) {
	app := fiber.New()
	NewHandler(&fakeClient{err: &backend.APIError{Status: fiber.StatusUnauthorized, Message: "unauthorized"}}).RegisterProtectedRoutes(app)

	res, err := app.Test(httptest.NewRequest("GET", "/api/balance", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected upstream 401 to pass through, got %d", res.StatusCode)
	}
}

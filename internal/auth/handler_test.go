package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/topup-storefront/internal/backend"
)

type fakeClient struct {
	err  error
	last *SignUpRequest
}

func (f *fakeClient) SignUp(_ context.Context, req SignUpRequest) error {
	f.last = &req
	return f.err
}

func signUp(t *testing.T, app *fiber.App, body string) (int, map[string]string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/auth/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	var out map[string]string
	_ = json.NewDecoder(res.Body).Decode(&out)
	return res.StatusCode, out
}

func TestSignUpForwardsPayload(t *testing.T) {
	client := &fakeClient{}
	app := fiber.New()
	NewHandler(client).RegisterPublicRoutes(app)

	status, _ := signUp(t, app, `{"name":"Jenny","username":"jenny","email":"j@example.com","password":"secret"}`)
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201 got %d", status)
	}
	if client.last == nil || client.last.Email != "j@example.com" || client.last.Username != "jenny" {
		t.Fatalf("unexpected forwarded payload %+v", client.last)
	}
}

func TestSignUpMissingFields(t *testing.T) {
	client := &fakeClient{}
	app := fiber.New()
	NewHandler(client).RegisterPublicRoutes(app)

	status, body := signUp(t, app, `{"email":"j@example.com"}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 got %d", status)
	}
	if body["message"] != "Missing required fields" {
		t.Fatalf("unexpected message %q", body["message"])
	}
	if client.last != nil {
		t.Fatal("incomplete payloads must not be forwarded")
	}
}

func TestSignUpBackendConflict(t *testing.T) {
	client := &fakeClient{err: &backend.APIError{Status: fiber.StatusConflict, Message: "Email already exists"}}
	app := fiber.New()
	NewHandler(client).RegisterPublicRoutes(app)

	status, body := signUp(t, app, `{"name":"Jenny","username":"jenny","email":"j@example.com","password":"secret"}`)
	if status != fiber.StatusConflict {
		t.Fatalf("expected 409 got %d", status)
	}
	if body["message"] != "Email already exists" {
		t.Fatalf("unexpected message %q", body["message"])
	}
}

func TestSignUpNetworkError(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	app := fiber.New()
	NewHandler(client).RegisterPublicRoutes(app)

	status, body := signUp(t, app, `{"name":"Jenny","username":"jenny","email":"j@example.com","password":"secret"}`)
	if status != fiber.StatusBadGateway {
		t.Fatalf("expected 502 got %d", status)
	}
	if body["message"] != "Network error. Please try again." {
		t.Fatalf("unexpected message %q", body["message"])
	}
}

package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestGetInjectsHeadersAndDecodes(t *testing.T) {
	var gotAuth, gotRequestID, gotAccept string
	var gotURL *url.URL
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotAccept = r.Header.Get("Accept")
		gotURL = r.URL
		_ = json.NewEncoder(w).Encode(map[string]any{"balance": 5000})
	}))
	defer srv.Close()

	api := New(srv.URL+"/", 5*time.Second)
	ctx := WithToken(context.Background(), "tok-123")

	q := url.Values{}
	q.Set("page", "2")
	var out struct {
		Balance float64 `json:"balance"`
	}
	if err := api.Get(ctx, "/api/balance", q, &out); err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if out.Balance != 5000 {
		t.Fatalf("expected 5000, got %v", out.Balance)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer injection, got %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Fatal("expected an X-Request-ID header")
	}
	if gotAccept != "application/json" {
		t.Fatalf("unexpected Accept header %q", gotAccept)
	}
	if gotURL.Path != "/api/balance" || gotURL.Query().Get("page") != "2" {
		t.Fatalf("unexpected request URL %v", gotURL)
	}
}

func TestGetWithoutTokenOmitsAuthHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	api := New(srv.URL, 5*time.Second)
	if err := api.Get(context.Background(), "/products", nil, nil); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestPostSendsJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"orderId":7}`))
	}))
	defer srv.Close()

	api := New(srv.URL, 5*time.Second)
	var out struct {
		OrderID int `json:"orderId"`
	}
	err := api.Post(context.Background(), "/api/orders", map[string]any{"total": 300}, &out)
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}
	if gotContentType != "application/json" {
		t.Fatalf("unexpected content type %q", gotContentType)
	}
	if gotBody["total"] != 300.0 {
		t.Fatalf("unexpected body %v", gotBody)
	}
	if out.OrderID != 7 {
		t.Fatalf("expected orderId 7, got %d", out.OrderID)
	}
}

func TestErrorResponseDecodesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"message":"Insufficient balance"}`))
	}))
	defer srv.Close()

	api := New(srv.URL, 5*time.Second)
	err := api.Post(context.Background(), "/api/orders", map[string]any{}, nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusPaymentRequired || apiErr.Message != "Insufficient balance" {
		t.Fatalf("unexpected APIError %+v", apiErr)
	}
	if apiErr.Error() != "Insufficient balance" {
		t.Fatalf("unexpected error string %q", apiErr.Error())
	}
}

func TestErrorResponseWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`oops`))
	}))
	defer srv.Close()

	api := New(srv.URL, 5*time.Second)
	err := api.Get(context.Background(), "/products", nil, nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Message != "" {
		t.Fatalf("expected no message, got %q", apiErr.Message)
	}
	if apiErr.Error() != "backend responded 500" {
		t.Fatalf("unexpected error string %q", apiErr.Error())
	}
}

func TestStatusOf(t *testing.T) {
	if got := StatusOf(&APIError{Status: 404}); got != 404 {
		t.Fatalf("expected 404, got %d", got)
	}
	if got := StatusOf(errors.New("dial tcp: refused")); got != http.StatusBadGateway {
		t.Fatalf("expected 502 for transport errors, got %d", got)
	}
}

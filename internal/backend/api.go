package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "backend").Logger()

// API is the shared outbound core every feature client is built on. It owns
// the base URL, the bearer-token and request-id headers and the JSON codec,
// so feature clients only describe paths and shapes.
type API struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string, timeout time.Duration) *API {
	return &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// APIError is a non-2xx backend response. Message holds the server-supplied
// "message" field when the payload carried one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend responded %d", e.Status)
}

type ctxKey int

const tokenKey ctxKey = 0

// WithToken attaches the caller's bearer token so it is forwarded on every
// request issued with that context.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func tokenFrom(ctx context.Context) string {
	if v, ok := ctx.Value(tokenKey).(string); ok {
		return v
	}
	return ""
}

func (a *API) Get(ctx context.Context, path string, query url.Values, out any) error {
	return a.do(ctx, http.MethodGet, path, query, nil, out)
}

func (a *API) Post(ctx context.Context, path string, body, out any) error {
	return a.do(ctx, http.MethodPost, path, nil, body, out)
}

func (a *API) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := a.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := tokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.httpc.Do(req)
	if err != nil {
		logger.Error().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			apiErr.Message = payload.Message
		}
		logger.Warn().Int("status", resp.StatusCode).Str("method", method).Str("path", path).Msg("backend error")
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

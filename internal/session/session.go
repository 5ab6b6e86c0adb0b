package session

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
)

// ErrUnauthenticated is returned when no signed-in customer is available.
var ErrUnauthenticated = errors.New("unauthenticated")

// Identity is the authenticated customer as supplied by the auth backend.
type Identity struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Provider supplies the current authenticated identity. Handlers build one
// per request from JWT claims; tests substitute fixed values.
type Provider interface {
	CurrentUser() (Identity, error)
}

// Static is a Provider that always returns the same identity.
type Static struct {
	Identity Identity
}

func (s Static) CurrentUser() (Identity, error) { return s.Identity, nil }

// Unauthenticated is a Provider with no signed-in customer.
type Unauthenticated struct{}

func (Unauthenticated) CurrentUser() (Identity, error) {
	return Identity{}, ErrUnauthenticated
}

// NewMiddleware gates protected routes on a valid bearer token signed with
// the shared secret. Unauthenticated requests get a 401; redirecting to a
// sign-in flow is the caller's policy, not this layer's.
func NewMiddleware(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: []byte(secret),
	})
}

// CurrentUser reads the identity out of the JWT claims that the middleware
// stored on the request.
func CurrentUser(c *fiber.Ctx) (Identity, error) {
	claims, err := claimsFromCtx(c)
	if err != nil {
		return Identity{}, err
	}

	id, ok := intClaim(claims, "user_id")
	if !ok {
		return Identity{}, ErrUnauthenticated
	}

	ident := Identity{ID: id}
	if v, ok := claims["name"].(string); ok {
		ident.Name = v
	}
	if v, ok := claims["email"].(string); ok {
		ident.Email = v
	}
	return ident, nil
}

// Token returns the raw bearer token of the current request so it can be
// forwarded to the backend.
func Token(c *fiber.Ctx) string {
	tok, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return ""
	}
	return tok.Raw
}

func claimsFromCtx(c *fiber.Ctx) (jwt.MapClaims, error) {
	u := c.Locals("user")
	if u == nil {
		return nil, ErrUnauthenticated
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return nil, ErrUnauthenticated
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrUnauthenticated
	}
	return claims, nil
}

// intClaim tolerates the numeric representations jwt decoding can produce.
func intClaim(claims jwt.MapClaims, key string) (int, bool) {
	raw, ok := claims[key]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case string:
		id, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return id, true
	}
	return 0, false
}

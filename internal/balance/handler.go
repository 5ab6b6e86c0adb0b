package balance

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/wichananm65/topup-storefront/internal/backend"
	"github.com/wichananm65/topup-storefront/internal/session"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "balance").Logger()

// Handler serves the balance view. Every request issues exactly one fetch;
// nothing is cached here.
type Handler struct {
	client Client
}

func NewHandler(client Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/balance", h.getBalance)
}

func (h *Handler) getBalance(c *fiber.Ctx) error {
	ctx := backend.WithToken(c.Context(), session.Token(c))
	b, err := h.client.FetchBalance(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("could not fetch balance")
		return c.Status(backend.StatusOf(err)).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(b)
}

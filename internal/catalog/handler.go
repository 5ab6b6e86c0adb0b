package catalog

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/wichananm65/topup-storefront/internal/backend"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "catalog").Logger()

// Handler serves the product browsing view.
type Handler struct {
	client Client
}

func NewHandler(client Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/products", h.getProducts)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	resp, err := h.client.FetchProducts(c.Context(), page)
	if err != nil {
		logger.Error().Err(err).Int("page", page).Msg("could not load products")
		return c.Status(backend.StatusOf(err)).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(resp)
}

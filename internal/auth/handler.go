package auth

import (
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/wichananm65/topup-storefront/internal/backend"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "auth").Logger()

type Handler struct {
	client Client
}

func NewHandler(client Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/auth/signup", h.signUp)
}

func (h *Handler) signUp(c *fiber.Ctx) error {
	payload := new(SignUpRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Email == "" || payload.Password == "" || payload.Username == "" || payload.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required fields"})
	}

	if err := h.client.SignUp(c.Context(), *payload); err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			msg := apiErr.Message
			if msg == "" {
				msg = "Signup failed"
			}
			return c.Status(apiErr.Status).JSON(fiber.Map{"message": msg})
		}
		logger.Error().Err(err).Msg("signup request failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "Network error. Please try again."})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Account created successfully!"})
}

package main

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/wichananm65/topup-storefront/internal/auth"
	"github.com/wichananm65/topup-storefront/internal/backend"
	"github.com/wichananm65/topup-storefront/internal/balance"
	"github.com/wichananm65/topup-storefront/internal/catalog"
	"github.com/wichananm65/topup-storefront/internal/config"
	"github.com/wichananm65/topup-storefront/internal/mock"
	"github.com/wichananm65/topup-storefront/internal/order"
	"github.com/wichananm65/topup-storefront/internal/session"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "app").Logger()

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger)

	catalogClient, orderClient, balanceClient, authClient := buildClients(cfg)

	// public routes first; everything registered after the session gate
	// requires a signed-in customer
	catalog.NewHandler(catalogClient).RegisterPublicRoutes(app)
	auth.NewHandler(authClient).RegisterPublicRoutes(app)

	app.Use(session.NewMiddleware(cfg.JWTSecret))

	order.NewHandler(orderClient, catalogClient).RegisterProtectedRoutes(app)
	balance.NewHandler(balanceClient).RegisterProtectedRoutes(app)

	logger.Info().Str("addr", cfg.Addr).Bool("mock", cfg.UseMockBackend).Msg("starting storefront")
	if err := app.Listen(cfg.Addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

// buildClients picks the live HTTP backend or the in-memory mock provider.
// Handlers only ever see the client interfaces.
func buildClients(cfg config.Config) (catalog.Client, order.Client, balance.Client, auth.Client) {
	if cfg.UseMockBackend {
		p := mock.NewProvider()
		return p, p, p, p
	}
	api := backend.New(cfg.BackendBaseURL, cfg.RequestTimeout)
	return catalog.NewHTTPClient(api), order.NewHTTPClient(api), balance.NewHTTPClient(api), auth.NewHTTPClient(api)
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	logger.Info().
		Str("method", c.Method()).
		Str("path", c.OriginalURL()).
		Int("status", c.Response().StatusCode()).
		Dur("took", time.Since(start)).
		Msg("request")
	return err
}

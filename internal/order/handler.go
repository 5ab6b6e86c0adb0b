package order

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/wichananm65/topup-storefront/internal/backend"
	"github.com/wichananm65/topup-storefront/internal/catalog"
	"github.com/wichananm65/topup-storefront/internal/session"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "order").Logger()

// Handler serves order placement, order history and order detail. It needs
// the catalog client to resolve the submitted product id against the
// backend's paginated product list.
type Handler struct {
	orders  Client
	catalog catalog.Client
}

func NewHandler(orders Client, catalogClient catalog.Client) *Handler {
	return &Handler{orders: orders, catalog: catalogClient}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/orders", h.createOrder)
	app.Get("/api/orders", h.listOrders)
	app.Get("/api/orders/:id<[0-9]+>", h.getOrder)
}

type createOrderRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	payload := new(createOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	who, err := session.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ctx := backend.WithToken(c.Context(), session.Token(c))

	product, err := h.findProduct(ctx, payload.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		return c.Status(backend.StatusOf(err)).JSON(fiber.Map{"message": err.Error()})
	}

	wf := NewWorkflow(h.orders, session.Static{Identity: who})
	wf.SelectProduct(product)
	wf.SetQuantity(payload.Quantity)
	if msg := wf.ValidationError(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	res, err := wf.Submit(ctx)
	if err != nil {
		var se *SubmitError
		if errors.As(err, &se) {
			return c.Status(se.Status).JSON(fiber.Map{"message": se.Message})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(res)
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ctx := backend.WithToken(c.Context(), session.Token(c))
	ord, err := h.orders.Get(ctx, id)
	if err != nil {
		status := backend.StatusOf(err)
		if status == http.StatusNotFound {
			return c.Status(status).JSON(fiber.Map{"message": "Order not found"})
		}
		logger.Error().Err(err).Int("orderId", id).Msg("could not fetch order")
		return c.Status(status).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(ord)
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	who, err := session.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ctx := backend.WithToken(c.Context(), session.Token(c))
	orders, err := h.orders.ListByCustomer(ctx, who.ID)
	if err != nil {
		logger.Error().Err(err).Int("customerId", who.ID).Msg("could not fetch orders")
		return c.Status(backend.StatusOf(err)).JSON(fiber.Map{"message": "Failed to fetch orders"})
	}
	if orders == nil {
		orders = []Order{}
	}
	return c.JSON(orders)
}

// findProduct walks the paginated product list until the id shows up. The
// backend contract exposes no product-by-id endpoint.
func (h *Handler) findProduct(ctx context.Context, id int) (catalog.Product, error) {
	for page := 1; ; page++ {
		resp, err := h.catalog.FetchProducts(ctx, page)
		if err != nil {
			return catalog.Product{}, err
		}
		for _, p := range resp.Data {
			if p.ID == id {
				return p, nil
			}
		}
		if !resp.Meta.HasNextPage {
			return catalog.Product{}, catalog.ErrNotFound
		}
	}
}

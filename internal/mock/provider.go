// Package mock is the offline substitute for the live backend. It
// implements the same client interfaces as the HTTP clients and is selected
// via dependency injection in cmd/app, so nothing outside the wiring knows
// which one it is talking to.
package mock

import (
	"context"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/wichananm65/topup-storefront/internal/auth"
	"github.com/wichananm65/topup-storefront/internal/backend"
	"github.com/wichananm65/topup-storefront/internal/balance"
	"github.com/wichananm65/topup-storefront/internal/catalog"
	"github.com/wichananm65/topup-storefront/internal/order"
)

const pageLimit = 10

// Provider keeps an in-memory copy of the four backend shapes. Order ids
// are randomized and order status is re-randomized on every status read,
// for demonstration only; the live backend is not obligated to match.
type Provider struct {
	mu       sync.RWMutex
	products []catalog.Product
	balance  float64
	orders   map[int]order.Order
	accounts map[string]struct{}
}

var (
	_ catalog.Client = (*Provider)(nil)
	_ order.Client   = (*Provider)(nil)
	_ balance.Client = (*Provider)(nil)
	_ auth.Client    = (*Provider)(nil)
)

func NewProvider() *Provider {
	return &Provider{
		products: seedProducts(),
		balance:  5000,
		orders:   map[int]order.Order{},
		accounts: map[string]struct{}{},
	}
}

func (p *Provider) FetchProducts(ctx context.Context, page int) (catalog.ProductsResponse, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if page < 1 {
		page = 1
	}
	total := len(p.products)
	totalPages := (total + pageLimit - 1) / pageLimit
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * pageLimit
	end := start + pageLimit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]catalog.Product, end-start)
	copy(items, p.products[start:end])

	return catalog.ProductsResponse{
		Data: items,
		Meta: catalog.PaginationMeta{
			Page:            page,
			Limit:           pageLimit,
			Total:           total,
			TotalPages:      totalPages,
			HasNextPage:     page < totalPages,
			HasPreviousPage: page > 1,
		},
	}, nil
}

func (p *Provider) FetchBalance(ctx context.Context) (balance.Balance, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return balance.Balance{Balance: p.balance}, nil
}

func (p *Provider) Create(ctx context.Context, req order.CreateRequest) (order.CreateResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	orderID := rand.Intn(1000)
	for {
		if _, exists := p.orders[orderID]; !exists {
			break
		}
		orderID = rand.Intn(1000)
	}
	now := time.Now().UTC().Format(time.RFC3339)

	items := make([]order.Item, len(req.Items))
	for i, it := range req.Items {
		it.ID = i + 1
		it.OrderID = orderID
		items[i] = it
	}

	p.orders[orderID] = order.Order{
		ID:         orderID,
		CustomerID: req.CustomerID,
		Status:     order.StatusProcessing,
		Total:      req.Total,
		CreatedAt:  now,
		UpdatedAt:  now,
		Items:      items,
	}
	// debit so the optimistic-balance path is exercisable offline
	p.balance -= req.Total
	newBalance := p.balance

	return order.CreateResponse{
		OrderID: orderID,
		Status:  order.StatusProcessing,
		Items:   items,
		Balance: &newBalance,
	}, nil
}

func (p *Provider) Get(ctx context.Context, orderID int) (order.Order, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ord, ok := p.orders[orderID]
	if !ok {
		return order.Order{}, &backend.APIError{Status: http.StatusNotFound, Message: "Order not found"}
	}

	statuses := []order.Status{order.StatusProcessing, order.StatusCompleted, order.StatusFailed}
	ord.Status = statuses[rand.Intn(len(statuses))]
	ord.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	p.orders[orderID] = ord
	return ord, nil
}

func (p *Provider) ListByCustomer(ctx context.Context, customerID int) ([]order.Order, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := []order.Order{}
	for _, ord := range p.orders {
		if ord.CustomerID == customerID {
			out = append(out, ord)
		}
	}
	return out, nil
}

func (p *Provider) SignUp(ctx context.Context, req auth.SignUpRequest) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.accounts[req.Email]; exists {
		return &backend.APIError{Status: http.StatusConflict, Message: "Email already exists"}
	}
	p.accounts[req.Email] = struct{}{}
	return nil
}

func seedProducts() []catalog.Product {
	now := time.Now().UTC().Format(time.RFC3339)
	desc := func(s string) *string { return &s }

	return []catalog.Product{
		{
			ID:           1,
			Name:         "Game Card 100 coins",
			Price:        "100",
			Denomination: "100",
			ImageURL:     "/products/gacha.png",
			Description:  desc("Virtual currency card for gaming"),
			CreatedAt:    now,
			UpdatedAt:    now,
			Stocks: []catalog.Stock{
				{ID: 1, Code: "GC100-A7F3", Status: catalog.StockStatusInStock, ProductID: 1, Stock: 30, CreatedAt: now, UpdatedAt: now},
				{ID: 2, Code: "GC100-B2K9", Status: catalog.StockStatusInStock, ProductID: 1, Stock: 20, CreatedAt: now, UpdatedAt: now},
				{ID: 3, Code: "GC100-C5D1", Status: catalog.StockStatusSold, ProductID: 1, Stock: 15, CreatedAt: now, UpdatedAt: now},
			},
		},
		{
			ID:           2,
			Name:         "Game Card 300 coins",
			Price:        "300",
			Denomination: "300",
			ImageURL:     "/products/fortnite.png",
			Description:  desc("Virtual currency card for gaming"),
			CreatedAt:    now,
			UpdatedAt:    now,
			Stocks: []catalog.Stock{
				{ID: 4, Code: "GC300-E8M4", Status: catalog.StockStatusInStock, ProductID: 2, Stock: 30, CreatedAt: now, UpdatedAt: now},
				{ID: 5, Code: "GC300-F1Q7", Status: catalog.StockStatusReserved, ProductID: 2, Stock: 5, CreatedAt: now, UpdatedAt: now},
			},
		},
		{
			ID:           3,
			Name:         "Game Card 500 coins",
			Price:        "500",
			Denomination: "500",
			ImageURL:     "/products/freefire.png",
			Description:  desc("Virtual currency card for gaming"),
			CreatedAt:    now,
			UpdatedAt:    now,
			Stocks: []catalog.Stock{
				{ID: 6, Code: "GC500-H3T6", Status: catalog.StockStatusInStock, ProductID: 3, Stock: 20, CreatedAt: now, UpdatedAt: now},
			},
		},
		{
			ID:           4,
			Name:         "Game Card 1000 coins",
			Price:        "1000",
			Denomination: "1000",
			ImageURL:     "/products/pubg.png",
			Description:  desc("Premium virtual currency card"),
			CreatedAt:    now,
			UpdatedAt:    now,
			Stocks: []catalog.Stock{
				{ID: 7, Code: "GC1000-J9W2", Status: catalog.StockStatusInStock, ProductID: 4, Stock: 10, CreatedAt: now, UpdatedAt: now},
				{ID: 8, Code: "GC1000-K4N8", Status: catalog.StockStatusSold, ProductID: 4, Stock: 10, CreatedAt: now, UpdatedAt: now},
			},
		},
	}
}

package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

type StockStatus string

const (
	StockStatusInStock  StockStatus = "IN_STOCK"
	StockStatusReserved StockStatus = "RESERVED"
	StockStatusSold     StockStatus = "SOLD"
)

// Stock is one inventory lot of a product. A product's availability is the
// sum of its IN_STOCK lots, not a field of its own.
type Stock struct {
	ID        int         `json:"id"`
	Code      string      `json:"code"`
	Status    StockStatus `json:"status"`
	ProductID int         `json:"productId"`
	Stock     int         `json:"stock"`
	CreatedAt string      `json:"createdAt"`
	UpdatedAt string      `json:"updatedAt"`
}

// Product mirrors the backend product shape. Price is serialized as a
// string to avoid floating-point loss and must be parsed before arithmetic.
type Product struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Price        string  `json:"price"`
	Denomination string  `json:"denomination"`
	ImageURL     string  `json:"imageUrl"`
	Description  *string `json:"description"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
	Stocks       []Stock `json:"stocks"`
}

// PriceDecimal parses the string-encoded price.
func (p Product) PriceDecimal() (decimal.Decimal, error) {
	return decimal.NewFromString(p.Price)
}

// AvailableStock sums the quantity of the product's IN_STOCK lots. Lots in
// RESERVED or SOLD status do not count.
func AvailableStock(p Product) int {
	total := 0
	for _, s := range p.Stocks {
		if s.Status == StockStatusInStock {
			total += s.Stock
		}
	}
	return total
}

// StockCodes joins the codes of every lot with a single space, in lot
// order. Order submissions carry this as the item code.
func StockCodes(p Product) string {
	codes := make([]string, 0, len(p.Stocks))
	for _, s := range p.Stocks {
		codes = append(codes, s.Code)
	}
	return strings.Join(codes, " ")
}

// PaginationMeta is derived by the backend; this layer only reads it.
type PaginationMeta struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	Total           int  `json:"total"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// ProductsResponse is one page of the catalog.
type ProductsResponse struct {
	Data []Product      `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

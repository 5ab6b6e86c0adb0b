package order

// Status is the server-owned order lifecycle. PROCESSING moves to one of
// the terminal COMPLETED/FAILED states; this client only observes it.
type Status string

const (
	StatusProcessing Status = "PROCESSING"
	StatusCompleted  Status = "COMPLETED"
	StatusFailed     Status = "FAILED"
)

// Item is one order line. Price is snapshotted from the product at
// submission time; Code joins the product's stock lot codes with spaces.
// ID and OrderID are filled in by the backend on persisted orders.
type Item struct {
	ID        int     `json:"id,omitempty"`
	OrderID   int     `json:"orderId,omitempty"`
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Code      string  `json:"code,omitempty"`
}

// CreateRequest is the POST /api/orders payload. Total is the client-side
// figure for display; the backend computes the authoritative one.
type CreateRequest struct {
	Items      []Item  `json:"items"`
	CustomerID int     `json:"customerId"`
	Total      float64 `json:"total"`
}

// CreateResponse acknowledges an order creation. Balance is present only
// when the backend debited the customer's balance in the same call.
type CreateResponse struct {
	OrderID int      `json:"orderId"`
	Status  Status   `json:"status"`
	Items   []Item   `json:"items"`
	Balance *float64 `json:"balance,omitempty"`
}

// Order is the backend's order record; this layer holds read-only
// projections of it.
type Order struct {
	ID         int     `json:"id"`
	CustomerID int     `json:"customerId"`
	Status     Status  `json:"status"`
	Total      float64 `json:"total"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
	Items      []Item  `json:"items"`
}

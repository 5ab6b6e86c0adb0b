package order

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/wichananm65/topup-storefront/internal/backend"
	"github.com/wichananm65/topup-storefront/internal/catalog"
	"github.com/wichananm65/topup-storefront/internal/session"
)

var (
	// ErrNoSelection is returned by Submit when no product is selected.
	ErrNoSelection = errors.New("no product selected")
	// ErrSubmitInFlight is returned by Submit while a previous submission
	// is still outstanding.
	ErrSubmitInFlight = errors.New("submission already in flight")
)

const fallbackSubmitMessage = "Failed to place order"

// SubmitError carries the user-facing message for a failed submission,
// preferring whatever message the backend supplied.
type SubmitError struct {
	Status  int
	Message string
}

func (e *SubmitError) Error() string { return e.Message }

// Result is the outcome of one successful submission. Balance is set only
// when the backend included the post-debit balance in its response; the
// displayed balance is otherwise left as it was.
type Result struct {
	OrderID int      `json:"orderId"`
	Status  Status   `json:"status"`
	Balance *float64 `json:"balance,omitempty"`
}

// Workflow drives a single order form: product selection, quantity
// validation and submission. Each submission attempt runs
// Idle -> Submitting -> Succeeded/Failed; a new Submit always starts a
// fresh attempt. The loading flag disables the trigger but is not a
// mutual-exclusion lock.
type Workflow struct {
	client   Client
	sessions session.Provider

	mu            sync.Mutex
	selected      *catalog.Product
	quantity      int
	loading       bool
	validationErr string

	// OnOrderComplete, when set, receives the backend's post-order balance
	// so a hosting balance view can update optimistically.
	OnOrderComplete func(balance float64)
}

func NewWorkflow(client Client, sessions session.Provider) *Workflow {
	return &Workflow{client: client, sessions: sessions, quantity: 1}
}

// SelectProduct replaces the selection. The quantity deliberately survives
// a reselect and is not clamped here; callers re-validate against the new
// product with SetQuantity.
func (w *Workflow) SelectProduct(p catalog.Product) {
	w.mu.Lock()
	defer w.mu.Unlock()
	cp := p
	w.selected = &cp
}

// Selected returns the current selection, if any.
func (w *Workflow) Selected() (catalog.Product, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.selected == nil {
		return catalog.Product{}, false
	}
	return *w.selected, true
}

func (w *Workflow) Quantity() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.quantity
}

func (w *Workflow) Loading() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.loading
}

// ValidationError returns the inline message of the last SetQuantity, empty
// when the quantity was accepted as requested.
func (w *Workflow) ValidationError() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.validationErr
}

// SetQuantity clamps the requested quantity into [1, available stock] and
// records the matching inline message. A no-op without a selection.
// Idempotent: repeating a clamped-equivalent input leaves state unchanged.
func (w *Workflow) SetQuantity(requested int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.selected == nil {
		return
	}

	available := catalog.AvailableStock(*w.selected)
	switch {
	case requested < 1:
		w.quantity = 1
		w.validationErr = "Quantity must be at least 1"
	case requested > available:
		w.quantity = available
		w.validationErr = fmt.Sprintf("Only %d items available in stock", available)
	default:
		w.quantity = requested
		w.validationErr = ""
	}
}

// CanIncrement reports whether one more unit would still fit the selected
// product's available stock. It never mutates state.
func (w *Workflow) CanIncrement() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.selected == nil {
		return false
	}
	return w.quantity+1 <= catalog.AvailableStock(*w.selected)
}

// Submit issues exactly one order-creation call for the current selection
// and quantity. The price is snapshotted here; the backend's response is
// authoritative for the final balance. There is no retry and failed
// submissions leave selection and quantity untouched.
func (w *Workflow) Submit(ctx context.Context) (Result, error) {
	w.mu.Lock()
	if w.selected == nil {
		w.mu.Unlock()
		return Result{}, ErrNoSelection
	}
	if w.loading {
		w.mu.Unlock()
		return Result{}, ErrSubmitInFlight
	}
	product := *w.selected
	quantity := w.quantity
	w.mu.Unlock()

	who, err := w.sessions.CurrentUser()
	if err != nil {
		return Result{}, err
	}

	price, err := product.PriceDecimal()
	if err != nil {
		return Result{}, fmt.Errorf("product %d has unparseable price %q: %w", product.ID, product.Price, err)
	}
	total := price.Mul(decimal.NewFromInt(int64(quantity)))

	w.mu.Lock()
	w.loading = true
	w.mu.Unlock()
	defer func() {
		w.mu.Lock()
		w.loading = false
		w.mu.Unlock()
	}()

	req := CreateRequest{
		Items: []Item{{
			ProductID: product.ID,
			Quantity:  quantity,
			Price:     price.InexactFloat64(),
			Code:      catalog.StockCodes(product),
		}},
		CustomerID: who.ID,
		Total:      total.InexactFloat64(),
	}

	logger.Info().Int("productId", product.ID).Int("quantity", quantity).Int("customerId", who.ID).Msg("placing order")
	resp, err := w.client.Create(ctx, req)
	if err != nil {
		logger.Warn().Err(err).Int("productId", product.ID).Msg("order submission failed")
		return Result{}, submitError(err)
	}

	if resp.Balance != nil && w.OnOrderComplete != nil {
		w.OnOrderComplete(*resp.Balance)
	}
	return Result{OrderID: resp.OrderID, Status: resp.Status, Balance: resp.Balance}, nil
}

func submitError(err error) error {
	msg := fallbackSubmitMessage
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		msg = apiErr.Message
	}
	return &SubmitError{Status: backend.StatusOf(err), Message: msg}
}

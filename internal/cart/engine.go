// Package cart implements the shopping cart engine. The persisted cart
// collection is the single source of truth: every operation re-reads it
// through the store adapter before mutating, so any number of engines on
// the same store observe the same state.
package cart

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/abaixodezero/storefront/internal/catalog"
	"github.com/abaixodezero/storefront/internal/store"
)

// Line is one product's presence in the cart, flattened with the product
// snapshot taken when it was added so listings render without a refetch.
type Line struct {
	ProductID string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image,omitempty"`
	// Stock as known at the time of adding. Zero means unknown and
	// disables capping.
	Stock    int `json:"stock"`
	Quantity int `json:"quantity"`
}

func (l Line) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Engine struct {
	mu sync.Mutex
	st store.Store
}

func New(st store.Store) *Engine { return &Engine{st: st} }

func (e *Engine) load(ctx context.Context) ([]Line, error) {
	lines, err := store.ReadJSON[Line](ctx, e.st, store.Cart)
	if err != nil {
		return nil, err
	}
	// A stored line with a non-positive quantity is corrupt; drop it.
	out := lines[:0]
	for _, l := range lines {
		if l.Quantity > 0 {
			out = append(out, l)
		}
	}
	return out, nil
}

func (e *Engine) save(ctx context.Context, lines []Line) error {
	return store.WriteJSON(ctx, e.st, store.Cart, lines)
}

// Add merges qty into the product's line, creating it if absent. The
// resulting quantity is capped at the product's known stock; a stock of
// zero or less on the snapshot means unknown and is not capped.
func (e *Engine) Add(ctx context.Context, p catalog.Product, qty int) error {
	if qty < 1 {
		qty = 1
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	lines, err := e.load(ctx)
	if err != nil {
		return err
	}
	for i := range lines {
		if lines[i].ProductID == p.ID {
			next := lines[i].Quantity + qty
			if p.Stock > 0 && next > p.Stock {
				next = p.Stock
			}
			lines[i].Quantity = next
			lines[i].Stock = p.Stock
			return e.save(ctx, lines)
		}
	}
	if p.Stock > 0 && qty > p.Stock {
		qty = p.Stock
	}
	lines = append(lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Stock:     p.Stock,
		Quantity:  qty,
	})
	return e.save(ctx, lines)
}

// SetQuantity sets a line's quantity to an absolute value. Zero or less
// removes the line. The value is not re-capped against stock here; capping
// is enforced on Add only, callers that need a clamp do it themselves.
// Unknown ids are a no-op.
func (e *Engine) SetQuantity(ctx context.Context, productID string, qty int) error {
	if qty <= 0 {
		return e.Remove(ctx, productID)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	lines, err := e.load(ctx)
	if err != nil {
		return err
	}
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = qty
			return e.save(ctx, lines)
		}
	}
	return nil
}

// Remove deletes the line if present; no-op otherwise.
func (e *Engine) Remove(ctx context.Context, productID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	lines, err := e.load(ctx)
	if err != nil {
		return err
	}
	for i := range lines {
		if lines[i].ProductID == productID {
			lines = append(lines[:i], lines[i+1:]...)
			return e.save(ctx, lines)
		}
	}
	return nil
}

// Clear empties the cart unconditionally.
func (e *Engine) Clear(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.save(ctx, nil)
}

func (e *Engine) Items(ctx context.Context) ([]Line, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.load(ctx)
}

// ItemCount is the sum of quantities over all lines.
func (e *Engine) ItemCount(ctx context.Context) (int, error) {
	lines, err := e.Items(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, l := range lines {
		count += l.Quantity
	}
	return count, nil
}

// Total is the sum of price times quantity over all lines.
func (e *Engine) Total(ctx context.Context) (decimal.Decimal, error) {
	lines, err := e.Items(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Total())
	}
	return total, nil
}

// Subscribe exposes the cart change notification for consumers that render
// cart state and need to resynchronize on writes from elsewhere.
func (e *Engine) Subscribe() (<-chan struct{}, func()) {
	return e.st.Subscribe(store.Cart)
}

package order

import (
	"context"
	"errors"
	"strings"

	"github.com/abaixodezero/storefront/internal/store"
)

var (
	ErrNotFound      = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
)

// Filter selects orders by free-text match against customer name, phone or
// id, and/or by exact status. Zero values match everything.
type Filter struct {
	Query  string
	Status Status
}

func (f Filter) matches(o Order) bool {
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(o.CustomerName), q) ||
		strings.Contains(o.CustomerPhone, q) ||
		strings.Contains(o.ID, q)
}

type Registry interface {
	Append(ctx context.Context, o Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, f Filter) ([]Order, error)
	UpdateStatus(ctx context.Context, id string, s Status) error
	Delete(ctx context.Context, id string) error
}

type StoreRegistry struct{ st store.Store }

func NewStoreRegistry(st store.Store) *StoreRegistry { return &StoreRegistry{st: st} }

func (r *StoreRegistry) load(ctx context.Context) ([]Order, error) {
	return store.ReadJSON[Order](ctx, r.st, store.Orders)
}

func (r *StoreRegistry) save(ctx context.Context, orders []Order) error {
	return store.WriteJSON(ctx, r.st, store.Orders, orders)
}

// Append adds the order at the end; insertion order is creation order.
func (r *StoreRegistry) Append(ctx context.Context, o Order) error {
	all, err := r.load(ctx)
	if err != nil {
		return err
	}
	return r.save(ctx, append(all, o))
}

func (r *StoreRegistry) GetByID(ctx context.Context, id string) (*Order, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			o := all[i]
			return &o, nil
		}
	}
	return nil, ErrNotFound
}

// List returns matching orders in stable insertion order.
func (r *StoreRegistry) List(ctx context.Context, f Filter) ([]Order, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []Order
	for _, o := range all {
		if f.matches(o) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *StoreRegistry) UpdateStatus(ctx context.Context, id string, s Status) error {
	if !s.Valid() {
		return ErrInvalidStatus
	}
	all, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].ID == id {
			all[i].Status = s
			return r.save(ctx, all)
		}
	}
	return ErrNotFound
}

func (r *StoreRegistry) Delete(ctx context.Context, id string) error {
	all, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].ID == id {
			return r.save(ctx, append(all[:i], all[i+1:]...))
		}
	}
	return ErrNotFound
}

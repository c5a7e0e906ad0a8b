// Package catalog owns the persisted product collection: listings for the
// storefront, CRUD for the admin surface, and the stock write-back done at
// order time.
package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abaixodezero/storefront/internal/store"
)

var ErrNotFound = errors.New("product not found")

type Query struct {
	Q        string
	Category string
}

type Repository interface {
	List(ctx context.Context, q Query) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product, updatePrice bool) error
	Delete(ctx context.Context, id string) (bool, error)
	// SaveAll replaces the whole collection; used by the checkout stock commit.
	SaveAll(ctx context.Context, products []Product) error
}

type StoreRepo struct{ st store.Store }

func NewStoreRepo(st store.Store) *StoreRepo { return &StoreRepo{st: st} }

func (r *StoreRepo) load(ctx context.Context) ([]Product, error) {
	return store.ReadJSON[Product](ctx, r.st, store.Products)
}

func (r *StoreRepo) List(ctx context.Context, q Query) ([]Product, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	search := strings.ToLower(strings.TrimSpace(q.Q))
	var out []Product
	for _, p := range all {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *StoreRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			p := all[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *StoreRepo) Create(ctx context.Context, p *Product) error {
	all, err := r.load(ctx)
	if err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	all = append(all, *p)
	return store.WriteJSON(ctx, r.st, store.Products, all)
}

func (r *StoreRepo) Update(ctx context.Context, p *Product, updatePrice bool) error {
	all, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].ID != p.ID {
			continue
		}
		if p.Name != "" {
			all[i].Name = p.Name
		}
		if p.Description != "" {
			all[i].Description = p.Description
		}
		if p.Category != "" {
			all[i].Category = p.Category
		}
		if p.Image != "" {
			all[i].Image = p.Image
		}
		if updatePrice {
			all[i].Price = p.Price
		}
		all[i].Stock = p.Stock
		all[i].UpdatedAt = time.Now()
		return store.WriteJSON(ctx, r.st, store.Products, all)
	}
	return ErrNotFound
}

func (r *StoreRepo) Delete(ctx context.Context, id string) (bool, error) {
	all, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	for i := range all {
		if all[i].ID == id {
			all = append(all[:i], all[i+1:]...)
			return true, store.WriteJSON(ctx, r.st, store.Products, all)
		}
	}
	return false, nil
}

func (r *StoreRepo) SaveAll(ctx context.Context, products []Product) error {
	return store.WriteJSON(ctx, r.st, store.Products, products)
}

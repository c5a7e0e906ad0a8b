// Package checkout runs the order finalization sequence: validate the
// form, freeze the cart into an order, register it, commit the stock
// decrement and clear the cart, then hand back the relay link.
package checkout

import (
	"context"
	"log"
	"time"

	"github.com/abaixodezero/storefront/internal/cart"
	"github.com/abaixodezero/storefront/internal/catalog"
	"github.com/abaixodezero/storefront/internal/inventory"
	"github.com/abaixodezero/storefront/internal/order"
)

type Service struct {
	Cart        *cart.Engine
	Orders      order.Registry
	Products    catalog.Repository
	RelayNumber string
}

type Result struct {
	Order       order.Order `json:"order"`
	WhatsAppURL string      `json:"whatsapp_url"`
}

// Submit finalizes the current cart. Nothing is persisted until both the
// input and the cart have been validated; appending the order is the
// commit point. Stock decrement and cart clearing come after it, so a
// failure there leaves a placed order rather than a half-written one.
func (s *Service) Submit(ctx context.Context, in order.CheckoutInput) (*Result, error) {
	lines, err := s.Cart.Items(ctx)
	if err != nil {
		return nil, err
	}
	o, err := order.Assemble(lines, in, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.Orders.Append(ctx, o); err != nil {
		return nil, err
	}

	products, err := s.Products.List(ctx, catalog.Query{})
	if err == nil {
		err = s.Products.SaveAll(ctx, inventory.CommitDecrement(products, o))
	}
	if err != nil {
		log.Printf("[checkout] order %s placed but stock commit failed: %v", o.ID, err)
	}

	if err := s.Cart.Clear(ctx); err != nil {
		log.Printf("[checkout] order %s placed but cart clear failed: %v", o.ID, err)
	}

	log.Printf("[checkout] order %s placed total=%s delivery=%s",
		o.ID, o.Total.StringFixed(2), o.DeliveryType)
	return &Result{Order: o, WhatsAppURL: order.RelayURL(s.RelayNumber, o)}, nil
}

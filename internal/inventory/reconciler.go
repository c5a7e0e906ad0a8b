// Package inventory reconciles purchasable stock against cart contents and
// commits the durable stock decrement when an order is finalized. Adding to
// a cart never touches persisted stock; checkout is the only place stock is
// reduced.
package inventory

import (
	"github.com/abaixodezero/storefront/internal/cart"
	"github.com/abaixodezero/storefront/internal/catalog"
	"github.com/abaixodezero/storefront/internal/order"
)

// Remaining is the product's stock minus what the cart already holds. It
// may be negative when the cart over-commits against a stale snapshot;
// callers must treat anything <= 0 as "cannot add more".
func Remaining(p catalog.Product, lines []cart.Line) int {
	inCart := 0
	for _, l := range lines {
		if l.ProductID == p.ID {
			inCart = l.Quantity
			break
		}
	}
	return p.Stock - inCart
}

func IsOutOfStock(p catalog.Product, lines []cart.Line) bool {
	return Remaining(p, lines) <= 0
}

// CommitDecrement reduces each ordered product's stock by the ordered
// quantity, floored at zero, and returns the updated collection for
// persistence. Products not in the order pass through untouched.
func CommitDecrement(products []catalog.Product, o order.Order) []catalog.Product {
	ordered := make(map[string]int, len(o.Items))
	for _, it := range o.Items {
		ordered[it.ProductID] += it.Quantity
	}
	out := make([]catalog.Product, len(products))
	copy(out, products)
	for i := range out {
		qty, ok := ordered[out[i].ID]
		if !ok {
			continue
		}
		out[i].Stock -= qty
		if out[i].Stock < 0 {
			out[i].Stock = 0
		}
	}
	return out
}

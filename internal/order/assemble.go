package order

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/abaixodezero/storefront/internal/cart"
)

var ErrEmptyCart = errors.New("cart is empty")

// Validation categories, so the caller can point the customer at the right
// form section instead of a generic failure.
const (
	CategoryCustomer = "customer"
	CategoryAddress  = "address"
)

type ValidationError struct {
	Category string
	Message  string
}

func (e *ValidationError) Error() string { return e.Message }

// CheckoutInput is the raw checkout form.
type CheckoutInput struct {
	Name         string       `json:"name"`
	Phone        string       `json:"phone"`
	DeliveryType DeliveryType `json:"delivery_type"`
	Street       string       `json:"street"`
	Neighborhood string       `json:"neighborhood"`
	City         string       `json:"city"`
	Reference    string       `json:"reference"`
	Observations string       `json:"observations"`
}

// Validate checks required fields before anything is persisted. Name and
// phone are always required; street, neighborhood and city only for
// delivery. Reference and observations are always optional.
func Validate(in CheckoutInput) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Phone) == "" {
		return &ValidationError{Category: CategoryCustomer, Message: "name and phone are required"}
	}
	if in.DeliveryType == DeliveryDelivery {
		if strings.TrimSpace(in.Street) == "" ||
			strings.TrimSpace(in.Neighborhood) == "" ||
			strings.TrimSpace(in.City) == "" {
			return &ValidationError{Category: CategoryAddress, Message: "street, neighborhood and city are required for delivery"}
		}
	}
	return nil
}

func fullAddress(in CheckoutInput) string {
	addr := in.Street + ", " + in.Neighborhood + ", " + in.City
	if strings.TrimSpace(in.Reference) != "" {
		addr += " - Ref: " + in.Reference
	}
	return addr
}

// Assemble validates the input and freezes the cart into an immutable
// pending order: snapshotted items, subtotal, delivery fee and total, a
// fresh id and the creation timestamp. Nothing is persisted here.
func Assemble(lines []cart.Line, in CheckoutInput, now time.Time) (Order, error) {
	if err := Validate(in); err != nil {
		return Order{}, err
	}
	if len(lines) == 0 {
		return Order{}, ErrEmptyCart
	}
	if in.DeliveryType != DeliveryDelivery {
		in.DeliveryType = DeliveryPickup
	}

	items := make([]Item, 0, len(lines))
	subtotal := decimal.Zero
	for _, l := range lines {
		it := Item{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.Price,
			LineTotal: l.Total(),
		}
		items = append(items, it)
		subtotal = subtotal.Add(it.LineTotal)
	}

	fee := decimal.Zero
	address := ""
	if in.DeliveryType == DeliveryDelivery {
		fee = Fee
		address = fullAddress(in)
	}

	return Order{
		ID:            NewID(now),
		CustomerName:  strings.TrimSpace(in.Name),
		CustomerPhone: strings.TrimSpace(in.Phone),
		DeliveryType:  in.DeliveryType,
		Address:       address,
		Observations:  strings.TrimSpace(in.Observations),
		Items:         items,
		Subtotal:      subtotal,
		DeliveryFee:   fee,
		Total:         subtotal.Add(fee),
		Status:        StatusPending,
		CreatedAt:     now,
	}, nil
}

package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the four known statuses. Transitions
// themselves are unrestricted; the admin surface may move an order between
// any two statuses as an administrative override.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type DeliveryType string

const (
	DeliveryPickup   DeliveryType = "pickup"
	DeliveryDelivery DeliveryType = "delivery"
)

// Fee is the fixed surcharge for home delivery. Pickup is free.
var Fee = decimal.RequireFromString("10.00")

// Item is a cart line frozen at submission time. Later catalog edits must
// never change a stored order, so nothing here is re-derived from the live
// catalog.
type Item struct {
	ProductID string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"price"`
	LineTotal decimal.Decimal `json:"total"`
}

type Order struct {
	ID            string       `json:"id"`
	CustomerName  string       `json:"customer_name"`
	CustomerPhone string       `json:"customer_phone"`
	DeliveryType  DeliveryType `json:"delivery_type"`
	// Address is set iff DeliveryType is delivery.
	Address      string          `json:"address,omitempty"`
	Observations string          `json:"observations,omitempty"`
	Items        []Item          `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	DeliveryFee  decimal.Decimal `json:"delivery_fee"`
	Total        decimal.Decimal `json:"total"`
	Status       Status          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

// NewID builds an order id that sorts by creation time and cannot collide
// under rapid successive submissions: unix milliseconds plus a random
// suffix.
func NewID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}

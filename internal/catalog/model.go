package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceholderImage is served when a product was saved without a picture.
const PlaceholderImage = "/placeholder.svg"

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// Price is serialized as a two-decimal string to avoid float drift.
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image,omitempty"`
	Category  string          `json:"category,omitempty"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ImageOrPlaceholder is what listings render.
func (p Product) ImageOrPlaceholder() string {
	if p.Image == "" {
		return PlaceholderImage
	}
	return p.Image
}

// HTTPError represents a standard error in JSON.
type HTTPError struct {
	// Error message
	// example: not found
	Error string `json:"error"`
}

// ListResponse is the product listing payload.
type ListResponse struct {
	// search query applied
	Q string `json:"q,omitempty"`
	// category filter applied
	Category string    `json:"category,omitempty"`
	Items    []Product `json:"items"`
}

// CreateProductRequest payload of creation.
type CreateProductRequest struct {
	Name        string `json:"name"        example:"Vinho Tinto Seco"`
	Description string `json:"description" example:"Garrafa 750ml"`
	Price       string `json:"price"       example:"49.90"`
	Image       string `json:"image"`
	Category    string `json:"category"    example:"vinhos"`
	Stock       int    `json:"stock"       example:"12"`
}

// UpdateProductRequest payload of partial update. Empty fields keep the
// stored value; Price and Stock are pointers so zero is distinguishable
// from absent.
type UpdateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       *string `json:"price"`
	Image       *string `json:"image"`
	Category    string  `json:"category"`
	Stock       *int    `json:"stock"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// Product represents an item in the catalogue.
type Product struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Description   *string   `json:"description,omitempty" db:"description"`
	Price         float64   `json:"price" db:"price"`
	OriginalPrice *float64  `json:"original_price,omitempty" db:"original_price"`
	Discount      *float64  `json:"discount,omitempty" db:"discount"`
	ImageURL      *string   `json:"image_url,omitempty" db:"image_url"`
	IsNew         bool      `json:"is_new" db:"is_new"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// EffectivePrice is the price a buyer actually pays. When both a discount
// percentage and an original price are set, the discount applies to the
// original price; otherwise the listed price stands.
func (p *Product) EffectivePrice() float64 {
	if p.Discount != nil && p.OriginalPrice != nil {
		return *p.OriginalPrice * (1 - *p.Discount/100)
	}
	return p.Price
}

// ProductResponse is the public payload for a product, including the
// computed effective price.
type ProductResponse struct {
	Product
	EffectivePrice float64 `json:"effective_price"`
}

// NewProductResponse builds the response payload for a product.
func NewProductResponse(p Product) ProductResponse {
	return ProductResponse{Product: p, EffectivePrice: p.EffectivePrice()}
}

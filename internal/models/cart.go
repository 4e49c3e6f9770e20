package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem captures the product's unit price at the moment it is added, so a
// later catalog price change does not retroactively reprice the cart. At most
// one item exists per (cart, product) pair.
type CartItem struct {
	ProductID  uuid.UUID `json:"product_id"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unit_price"`
	TotalPrice float64   `json:"total_price"`
	AddedAt    time.Time `json:"added_at"`
}

type Cart struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CreateCartRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1,max=10000"`
}

// quantity 0 removes the item
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=0,max=10000"`
}

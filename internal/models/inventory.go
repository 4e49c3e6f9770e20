package models

import (
	"time"

	"github.com/google/uuid"
)

// Inventory tracks the stock counters for one product. Stock and Reserved
// never go negative; every mutation floors at zero.
type Inventory struct {
	ProductID uuid.UUID `json:"product_id"`
	Stock     int       `json:"stock"`
	Reserved  int       `json:"reserved"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InventoryAdjustment is the idempotency ledger entry recording that an order
// item has already been applied against the product's counters.
type InventoryAdjustment struct {
	OrderItemID uuid.UUID `json:"order_item_id"`
	ProductID   uuid.UUID `json:"product_id"`
	Quantity    int       `json:"quantity"`
	AppliedAt   time.Time `json:"applied_at"`
}

type AdjustInventoryRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

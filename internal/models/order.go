package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

// Forward-moving labels set by fulfillment and payment processes. No
// transition graph is enforced; only membership in this set is validated.
const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}

	return false
}

// RevenueBearingStatuses are the order states counted by revenue reports.
func RevenueBearingStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered}
}

// OrderItem is immutable once written; unit price and total are the values
// at time of purchase, decoupled from later product price changes.
type OrderItem struct {
	ID         uuid.UUID `json:"id"`
	OrderID    uuid.UUID `json:"order_id"`
	ProductID  uuid.UUID `json:"product_id"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unit_price"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

// Order's TotalAmount equals the sum of its items' TotalPrice, excluding
// shipping.
type Order struct {
	ID              uuid.UUID   `json:"id"`
	UserID          uuid.UUID   `json:"user_id"`
	Status          OrderStatus `json:"status"`
	TotalAmount     float64     `json:"total_amount"`
	ShippingAmount  float64     `json:"shipping_amount"`
	ShippingAddress string      `json:"shipping_address,omitempty"`
	Items           []OrderItem `json:"items,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type CheckoutRequest struct {
	CartID          uuid.UUID `json:"cart_id" validate:"required"`
	UserID          uuid.UUID `json:"user_id" validate:"required"`
	ShippingAmount  *float64  `json:"shipping_amount,omitempty" validate:"omitempty,gte=0"`
	ShippingAddress string    `json:"shipping_address,omitempty" validate:"omitempty,max=500"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required"`
}

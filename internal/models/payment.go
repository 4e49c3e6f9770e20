package models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Payment is a bookkeeping record; capture itself happens in an external
// system that reports back via TransactionRef.
type Payment struct {
	ID             uuid.UUID     `json:"id"`
	OrderID        uuid.UUID     `json:"order_id"`
	Amount         float64       `json:"amount"`
	Currency       string        `json:"currency"`
	Method         string        `json:"method"`
	Status         PaymentStatus `json:"status"`
	TransactionRef string        `json:"transaction_ref,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// Amount defaults to the order's total plus shipping when omitted.
type CreatePaymentRequest struct {
	Amount         *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Currency       string   `json:"currency" validate:"required,len=3,alpha"`
	Method         string   `json:"method" validate:"required,oneof=card upi netbanking wallet cod"`
	TransactionRef string   `json:"transaction_ref,omitempty" validate:"omitempty,max=200"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Behavioral log rows. Append-only, written with relaxed consistency; UserID
// is nil for anonymous traffic.

type ProductView struct {
	ID        int64      `json:"id"`
	ProductID uuid.UUID  `json:"product_id"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	ViewedAt  time.Time  `json:"viewed_at"`
}

type ProductSearchLog struct {
	ID           int64      `json:"id"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	Query        string     `json:"query"`
	ResultsCount int        `json:"results_count"`
	SearchedAt   time.Time  `json:"searched_at"`
}

type RecordViewRequest struct {
	UserID *uuid.UUID `json:"user_id,omitempty"`
}

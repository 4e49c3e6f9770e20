package models

import (
	"time"

	"github.com/google/uuid"
)

// Report rows for the read-only analytical queries. Revenue-bearing reports
// count only orders in processing, shipped or delivered states.

type BestSellerRow struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	UnitsSold   int       `json:"units_sold"`
	Revenue     float64   `json:"revenue"`
}

type CategoryRevenueRow struct {
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	OrdersCount  int       `json:"orders_count"`
	Revenue      float64   `json:"revenue"`
}

type MonthlyRevenueRow struct {
	Month       time.Time `json:"month"`
	OrdersCount int       `json:"orders_count"`
	Revenue     float64   `json:"revenue"`
}

type ProductRatingRow struct {
	ProductID     uuid.UUID `json:"product_id"`
	ProductName   string    `json:"product_name"`
	AverageRating float64   `json:"average_rating"`
	ReviewCount   int       `json:"review_count"`
}

type MostViewedRow struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Views       int       `json:"views"`
}

type TopSearchRow struct {
	Query    string `json:"query"`
	Searches int    `json:"searches"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "active"
	ProductStatusInactive     ProductStatus = "inactive"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Product struct {
	ID          uuid.UUID     `json:"id"`
	CategoryID  uuid.UUID     `json:"category_id"`
	SKU         string        `json:"sku"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Price       float64       `json:"price"`
	Status      ProductStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Category    *Category     `json:"category,omitempty"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000"`
}

type CreateProductRequest struct {
	CategoryID   uuid.UUID `json:"category_id" validate:"required"`
	SKU          string    `json:"sku" validate:"required,min=3,max=50"`
	Name         string    `json:"name" validate:"required,min=3,max=200"`
	Description  string    `json:"description,omitempty" validate:"omitempty,max=5000"`
	Price        float64   `json:"price" validate:"required,gte=0"`
	InitialStock int       `json:"initial_stock" validate:"gte=0"`
}

type UpdateProductRequest struct {
	CategoryID  *uuid.UUID     `json:"category_id,omitempty"`
	Name        *string        `json:"name,omitempty" validate:"omitempty,min=3,max=200"`
	Description *string        `json:"description,omitempty" validate:"omitempty,max=5000"`
	Price       *float64       `json:"price,omitempty" validate:"omitempty,gte=0"`
	Status      *ProductStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive discontinued"`
}

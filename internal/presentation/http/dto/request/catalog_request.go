package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NameRequest is the shared payload for categories and sizes
type NameRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateProductRequest represents the create product payload
type CreateProductRequest struct {
	Name       string          `json:"name" binding:"required"`
	CategoryID *uuid.UUID      `json:"category_id,omitempty"`
	SizeID     *uuid.UUID      `json:"size_id,omitempty"`
	CostPrice  decimal.Decimal `json:"cost_price"`
	SellPrice  decimal.Decimal `json:"sell_price"`
	Image      *string         `json:"image,omitempty"`
}

// UpdateProductRequest represents the update product payload. Omitted fields
// are left unchanged; ClearCategory and ClearSize drop the reference.
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty"`
	CategoryID    *uuid.UUID       `json:"category_id,omitempty"`
	ClearCategory bool             `json:"clear_category,omitempty"`
	SizeID        *uuid.UUID       `json:"size_id,omitempty"`
	ClearSize     bool             `json:"clear_size,omitempty"`
	CostPrice     *decimal.Decimal `json:"cost_price,omitempty"`
	SellPrice     *decimal.Decimal `json:"sell_price,omitempty"`
	Image         *string          `json:"image,omitempty"`
}

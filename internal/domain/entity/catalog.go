package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Category represents a product category
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Products []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// Size represents a product size variant (e.g. "250g", "Large")
type Size struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Products []Product `gorm:"foreignKey:SizeID;constraint:OnDelete:SET NULL" json:"-"`
}

// BeforeCreate generates a UUID before creating a new size
func (s *Size) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Size model
func (Size) TableName() string {
	return "sizes"
}

// Product represents a sellable item in the catalog.
// DisplayName is derived from Name and Size and recomputed on every save.
type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name        string          `gorm:"size:200;not null" json:"name"`
	DisplayName string          `gorm:"size:255" json:"display_name"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	SizeID      *uuid.UUID      `gorm:"type:uuid;index" json:"size_id,omitempty"`
	CostPrice   decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"cost_price"`
	SellPrice   decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"sell_price"`
	Image       *string         `gorm:"size:255" json:"image,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Size     *Size     `gorm:"foreignKey:SizeID" json:"size,omitempty"`
	Orders   []Order   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// ComputeDisplayName derives the human-readable label from a product name and an
// optional size name. It is idempotent: recomputing from the same inputs always
// yields the same label.
func ComputeDisplayName(name, sizeName string) string {
	if sizeName == "" {
		return name
	}
	return name + " - " + sizeName
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/chococroco/orders-api/internal/domain/enum"
)

// Payment is a ledger entry recorded against an order. Amounts are deliberately
// not reconciled against the order's totals; the ledger is display-only.
type Payment struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"order_id"`
	Amount      decimal.Decimal    `gorm:"type:decimal(10,2);not null" json:"amount"`
	Method      enum.PaymentMethod `gorm:"size:50;default:cash" json:"method"`
	PaymentDate time.Time          `gorm:"not null" json:"payment_date"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`

	// Relationships
	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}

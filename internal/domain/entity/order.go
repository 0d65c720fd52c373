package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/chococroco/orders-api/internal/domain/enum"
)

// Order ties a customer to a product with quantity, costs and the denormalized
// financial fields. Total, PendingAmount, ProfitAmount and PaymentStatus are
// part of the order's write contract: the order service recomputes them through
// the finance calculator before every persist, so reports can read them without
// recomputation.
type Order struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	ProductID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity       int                `gorm:"not null;default:1" json:"quantity"`
	DeliveryCost   decimal.Decimal    `gorm:"type:decimal(10,2);default:0" json:"delivery_cost"`
	OtherExpense   decimal.Decimal    `gorm:"type:decimal(10,2);default:0" json:"other_expense"`
	Total          decimal.Decimal    `gorm:"type:decimal(12,2);default:0" json:"total"`
	ReceivedAmount decimal.Decimal    `gorm:"type:decimal(10,2);default:0" json:"received_amount"`
	PendingAmount  decimal.Decimal    `gorm:"type:decimal(12,2);default:0" json:"pending_amount"`
	ProfitAmount   decimal.Decimal    `gorm:"type:decimal(10,2);default:0" json:"profit_amount"`
	OrderStatus    enum.OrderStatus   `gorm:"size:20;default:pending;index" json:"order_status"`
	PaymentStatus  enum.PaymentStatus `gorm:"size:20;default:pending" json:"payment_status"`
	Image          *string            `gorm:"size:255" json:"image,omitempty"`
	CreatedAt      time.Time          `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`

	// Relationships
	Customer Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Product  Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Payments []Payment `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

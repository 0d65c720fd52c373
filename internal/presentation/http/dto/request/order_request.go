package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest represents the create order payload
type CreateOrderRequest struct {
	CustomerID     uuid.UUID       `json:"customer_id" binding:"required"`
	ProductID      uuid.UUID       `json:"product_id" binding:"required"`
	Quantity       int             `json:"quantity" binding:"required,min=1"`
	DeliveryCost   decimal.Decimal `json:"delivery_cost"`
	OtherExpense   decimal.Decimal `json:"other_expense"`
	ReceivedAmount decimal.Decimal `json:"received_amount"`
	OrderStatus    *string         `json:"order_status,omitempty"`
	Image          *string         `json:"image,omitempty"`
}

// UpdateOrderRequest represents the update order payload. Omitted fields are
// left unchanged.
type UpdateOrderRequest struct {
	CustomerID     *uuid.UUID       `json:"customer_id,omitempty"`
	ProductID      *uuid.UUID       `json:"product_id,omitempty"`
	Quantity       *int             `json:"quantity,omitempty"`
	DeliveryCost   *decimal.Decimal `json:"delivery_cost,omitempty"`
	OtherExpense   *decimal.Decimal `json:"other_expense,omitempty"`
	ReceivedAmount *decimal.Decimal `json:"received_amount,omitempty"`
	OrderStatus    *string          `json:"order_status,omitempty"`
	Image          *string          `json:"image,omitempty"`
}

// UpdateOrderStatusRequest represents the status change payload
type UpdateOrderStatusRequest struct {
	OrderStatus   *string `json:"order_status,omitempty"`
	PaymentStatus *string `json:"payment_status,omitempty"`
}

// CreatePaymentRequest represents the record payment payload
type CreatePaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Method      *string         `json:"method,omitempty"`
	PaymentDate *time.Time      `json:"payment_date,omitempty"`
}

// BulkInvoiceRequest represents the invoice-from-selection payload
type BulkInvoiceRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

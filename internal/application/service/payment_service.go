package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chococroco/orders-api/internal/domain/entity"
	"github.com/chococroco/orders-api/internal/domain/enum"
	"github.com/chococroco/orders-api/internal/domain/repository"
	"github.com/chococroco/orders-api/pkg/apperror"
)

// PaymentService handles the payment ledger attached to orders. Ledger rows
// are display-only: recording or deleting a payment does not touch the
// order's received_amount or payment_status.
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(paymentRepo repository.PaymentRepository, orderRepo repository.OrderRepository) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
	}
}

// CreatePaymentInput represents the create payment input
type CreatePaymentInput struct {
	OrderID     uuid.UUID
	Amount      decimal.Decimal
	Method      *enum.PaymentMethod
	PaymentDate *time.Time
}

// CreatePayment records a payment against an order. Amounts are not
// reconciled against the order total.
func (s *PaymentService) CreatePayment(ctx context.Context, input *CreatePaymentInput) (*entity.Payment, error) {
	order, err := s.orderRepo.GetByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	payment := &entity.Payment{
		OrderID: input.OrderID,
		Amount:  input.Amount,
		Method:  enum.PaymentMethodCash,
	}
	if input.Method != nil {
		if !input.Method.IsValid() {
			return nil, apperror.NewBadRequestError("invalid payment method")
		}
		payment.Method = *input.Method
	}
	if input.PaymentDate != nil {
		payment.PaymentDate = *input.PaymentDate
	} else {
		payment.PaymentDate = time.Now()
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// ListByOrder lists the payments recorded against an order, oldest first
func (s *PaymentService) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]entity.Payment, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return s.paymentRepo.ListByOrder(ctx, orderID)
}

// DeletePayment removes a payment row
func (s *PaymentService) DeletePayment(ctx context.Context, id uuid.UUID) error {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if payment == nil {
		return apperror.NewNotFoundError("Payment")
	}
	return s.paymentRepo.Delete(ctx, id)
}

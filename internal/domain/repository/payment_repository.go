package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/chococroco/orders-api/internal/domain/entity"
)

// PaymentRepository defines the interface for payment ledger data access
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]entity.Payment, error)

	// ListForExport returns the selected payments, or every payment when ids is
	// empty, ordered by payment date.
	ListForExport(ctx context.Context, ids []uuid.UUID) ([]entity.Payment, error)
}

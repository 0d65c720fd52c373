package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/chococroco/orders-api/internal/domain/entity"
	"github.com/chococroco/orders-api/pkg/pagination"
)

// CustomerRepository defines the interface for customer data access
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)

	// ListForExport returns the selected customers, or every customer when ids
	// is empty, ordered by creation time.
	ListForExport(ctx context.Context, ids []uuid.UUID) ([]entity.Customer, error)
}

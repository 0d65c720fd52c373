package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/chococroco/orders-api/internal/domain/entity"
	"github.com/chococroco/orders-api/pkg/pagination"
)

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Category, error)
}

// SizeRepository defines the interface for size data access
type SizeRepository interface {
	Create(ctx context.Context, size *entity.Size) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Size, error)
	Update(ctx context.Context, size *entity.Size) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Size, error)
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Product, int64, error)

	// ListForExport returns the selected products, or every product when ids is
	// empty, ordered by creation time.
	ListForExport(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
}

package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/chococroco/orders-api/internal/domain/entity"
	"github.com/chococroco/orders-api/internal/domain/enum"
	"github.com/chococroco/orders-api/pkg/pagination"
)

// OrderFilterParams represents filtering options for order listing
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.OrderStatus
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// ReportFilter selects orders for the sales/profit report. Date bounds are
// half-open instants derived from inclusive calendar dates.
type ReportFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Status    *enum.OrderStatus
}

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// GetWithRefs loads an order together with its customer, product (and the
	// product's size) and payments.
	GetWithRefs(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)

	// ListByReportFilter returns every order matching the report filter with
	// customer and product preloaded, oldest first.
	ListByReportFilter(ctx context.Context, filter *ReportFilter) ([]entity.Order, error)

	// ListForExport returns the selected orders, or every order when ids is
	// empty, with customer and product preloaded, ordered by creation time.
	ListForExport(ctx context.Context, ids []uuid.UUID) ([]entity.Order, error)
}

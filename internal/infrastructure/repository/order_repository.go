package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chococroco/orders-api/internal/domain/entity"
	"github.com/chococroco/orders-api/internal/domain/enum"
	domainRepo "github.com/chococroco/orders-api/internal/domain/repository"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetWithRefs(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Product").
		Preload("Product.Size").
		Preload("Payments").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Order{}, "id = ?", id).Error
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{})
	query = applyOrderFilters(query, params.Status, params.StartDate, params.EndDate)
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Preload("Product").
		Order("created_at DESC").
		Find(&orders).Error

	return orders, total, err
}

func (r *orderRepository) ListByReportFilter(ctx context.Context, filter *domainRepo.ReportFilter) ([]entity.Order, error) {
	var orders []entity.Order
	query := r.db.WithContext(ctx).Model(&entity.Order{})
	query = applyOrderFilters(query, filter.Status, filter.StartDate, filter.EndDate)

	err := query.
		Preload("Customer").
		Preload("Product").
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) ListForExport(ctx context.Context, ids []uuid.UUID) ([]entity.Order, error) {
	var orders []entity.Order
	query := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Product").
		Order("created_at ASC")
	if len(ids) > 0 {
		query = query.Where("id IN ?", ids)
	}
	err := query.Find(&orders).Error
	return orders, err
}

// applyOrderFilters narrows an order query by status and creation instant.
// End bounds are exclusive; callers derive them from inclusive calendar dates.
func applyOrderFilters(query *gorm.DB, status *enum.OrderStatus, start, end *time.Time) *gorm.DB {
	if status != nil {
		query = query.Where("order_status = ?", *status)
	}
	if start != nil {
		query = query.Where("created_at >= ?", *start)
	}
	if end != nil {
		query = query.Where("created_at < ?", *end)
	}
	return query
}

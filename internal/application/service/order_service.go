package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chococroco/orders-api/internal/domain/entity"
	"github.com/chococroco/orders-api/internal/domain/enum"
	"github.com/chococroco/orders-api/internal/domain/finance"
	"github.com/chococroco/orders-api/internal/domain/repository"
	"github.com/chococroco/orders-api/pkg/apperror"
	"github.com/chococroco/orders-api/pkg/pagination"
)

// OrderService handles order business logic. Every write path runs the
// financial calculator before persisting so the denormalized money columns
// never go stale.
type OrderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	CustomerID     uuid.UUID
	ProductID      uuid.UUID
	Quantity       int
	DeliveryCost   decimal.Decimal
	OtherExpense   decimal.Decimal
	ReceivedAmount decimal.Decimal
	OrderStatus    *enum.OrderStatus
	Image          *string
}

// CreateOrder creates a new order with its money fields computed from the
// product's current prices.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if input.Quantity < 1 {
		return nil, apperror.NewBadRequestError("quantity must be at least 1")
	}
	if input.DeliveryCost.IsNegative() {
		return nil, apperror.NewBadRequestError("delivery_cost must not be negative")
	}
	if input.OtherExpense.IsNegative() {
		return nil, apperror.NewBadRequestError("other_expense must not be negative")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	order := &entity.Order{
		CustomerID:     input.CustomerID,
		ProductID:      input.ProductID,
		Quantity:       input.Quantity,
		DeliveryCost:   input.DeliveryCost,
		OtherExpense:   input.OtherExpense,
		ReceivedAmount: input.ReceivedAmount,
		OrderStatus:    enum.OrderStatusPending,
		Image:          input.Image,
	}
	if input.OrderStatus != nil {
		if !input.OrderStatus.IsValid() {
			return nil, apperror.NewBadRequestError("invalid order_status")
		}
		order.OrderStatus = *input.OrderStatus
	}

	finance.Recalculate(order, product)

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder retrieves an order with its customer, product and payments loaded
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithRefs(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// UpdateOrderInput represents the update order input. Nil pointers leave the
// field unchanged.
type UpdateOrderInput struct {
	ID             uuid.UUID
	CustomerID     *uuid.UUID
	ProductID      *uuid.UUID
	Quantity       *int
	DeliveryCost   *decimal.Decimal
	OtherExpense   *decimal.Decimal
	ReceivedAmount *decimal.Decimal
	OrderStatus    *enum.OrderStatus
	Image          *string
}

// UpdateOrder updates an order and recomputes its money fields. Changing the
// product reprices the order at the new product's current prices.
func (s *OrderService) UpdateOrder(ctx context.Context, input *UpdateOrderInput) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
		order.CustomerID = *input.CustomerID
	}
	if input.ProductID != nil {
		order.ProductID = *input.ProductID
	}
	if input.Quantity != nil {
		if *input.Quantity < 1 {
			return nil, apperror.NewBadRequestError("quantity must be at least 1")
		}
		order.Quantity = *input.Quantity
	}
	if input.DeliveryCost != nil {
		if input.DeliveryCost.IsNegative() {
			return nil, apperror.NewBadRequestError("delivery_cost must not be negative")
		}
		order.DeliveryCost = *input.DeliveryCost
	}
	if input.OtherExpense != nil {
		if input.OtherExpense.IsNegative() {
			return nil, apperror.NewBadRequestError("other_expense must not be negative")
		}
		order.OtherExpense = *input.OtherExpense
	}
	if input.ReceivedAmount != nil {
		order.ReceivedAmount = *input.ReceivedAmount
	}
	if input.OrderStatus != nil {
		if !input.OrderStatus.IsValid() {
			return nil, apperror.NewBadRequestError("invalid order_status")
		}
		order.OrderStatus = *input.OrderStatus
	}
	if input.Image != nil {
		order.Image = input.Image
	}

	product, err := s.productRepo.GetByID(ctx, order.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	finance.Recalculate(order, product)

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus changes the order status, or the payment status when a manual
// refund is recorded. Setting payment_status to refunded is the only manual
// payment-status transition; everything else is derived.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, orderStatus *enum.OrderStatus, paymentStatus *enum.PaymentStatus) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if orderStatus != nil {
		if !orderStatus.IsValid() {
			return nil, apperror.NewBadRequestError("invalid order_status")
		}
		order.OrderStatus = *orderStatus
	}
	if paymentStatus != nil {
		if *paymentStatus != enum.PaymentStatusRefunded {
			return nil, apperror.NewBadRequestError("payment_status can only be set to refunded")
		}
		order.PaymentStatus = enum.PaymentStatusRefunded
	}

	product, err := s.productRepo.GetByID(ctx, order.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	finance.Recalculate(order, product)

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteOrder deletes an order and its payments
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	return s.orderRepo.Delete(ctx, id)
}

// ListOrders lists orders with pagination and optional filters
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

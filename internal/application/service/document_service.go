package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/chococroco/orders-api/internal/domain/entity"
	"github.com/chococroco/orders-api/internal/domain/finance"
	"github.com/chococroco/orders-api/internal/domain/repository"
	"github.com/chococroco/orders-api/pkg/apperror"
	"github.com/chococroco/orders-api/pkg/document"
)

// RenderedDocument is a generated file ready to be sent as an attachment.
type RenderedDocument struct {
	Filename    string
	ContentType string
	Data        []byte
}

// DocumentService maps orders to their printable documents.
type DocumentService struct {
	orderRepo repository.OrderRepository
	company   document.CompanyInfo
}

// NewDocumentService creates a new document service
func NewDocumentService(orderRepo repository.OrderRepository, company document.CompanyInfo) *DocumentService {
	return &DocumentService{
		orderRepo: orderRepo,
		company:   company,
	}
}

// Invoice renders the invoice PDF for an order
func (s *DocumentService) Invoice(ctx context.Context, orderID uuid.UUID) (*RenderedDocument, error) {
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	inv := s.buildInvoice(order)
	data, err := inv.Render()
	if err != nil {
		return nil, err
	}

	return &RenderedDocument{
		Filename:    inv.Filename(),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

// BulkInvoice renders an invoice from a selection of order ids. Exactly one
// id must be selected.
func (s *DocumentService) BulkInvoice(ctx context.Context, orderIDs []uuid.UUID) (*RenderedDocument, error) {
	if len(orderIDs) != 1 {
		return nil, apperror.NewBadRequestError("Please select exactly one order")
	}
	return s.Invoice(ctx, orderIDs[0])
}

// DeliverySlip renders the plain-text delivery slip for an order
func (s *DocumentService) DeliverySlip(ctx context.Context, orderID uuid.UUID) (*RenderedDocument, error) {
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	slip := &document.DeliverySlip{
		Company:      s.company,
		OrderID:      order.ID.String(),
		CustomerName: order.Customer.Name,
	}
	if order.Customer.Address != nil {
		slip.CustomerAddress = *order.Customer.Address
	}
	if order.Customer.Phone != nil {
		slip.CustomerPhone = *order.Customer.Phone
	}

	return &RenderedDocument{
		Filename:    slip.Filename(),
		ContentType: "text/plain; charset=utf-8",
		Data:        slip.Render(),
	}, nil
}

func (s *DocumentService) loadOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithRefs(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

func (s *DocumentService) buildInvoice(order *entity.Order) *document.Invoice {
	inv := &document.Invoice{
		Company:      s.company,
		OrderID:      order.ID.String(),
		Date:         order.CreatedAt,
		CustomerName: order.Customer.Name,
		Lines: []document.LineItem{
			{
				Name:     order.Product.DisplayName,
				Quantity: order.Quantity,
				Rate:     order.Product.SellPrice,
				Total:    finance.ProductTotal(order, &order.Product),
			},
		},
		Subtotal:     finance.ProductTotal(order, &order.Product),
		DeliveryCost: order.DeliveryCost,
		OtherExpense: order.OtherExpense,
		GrandTotal:   order.Total,
		Profit:       order.ProfitAmount,
		GeneratedAt:  order.UpdatedAt,
	}
	if order.Customer.Address != nil {
		inv.CustomerAddress = *order.Customer.Address
	}
	return inv
}

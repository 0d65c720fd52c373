package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chococroco/orders-api/internal/application/service"
	"github.com/chococroco/orders-api/internal/domain/enum"
	"github.com/chococroco/orders-api/internal/domain/repository"
	"github.com/chococroco/orders-api/internal/presentation/http/dto/request"
	"github.com/chococroco/orders-api/internal/presentation/http/dto/response"
)

// OrderHandler handles order, payment and order-document HTTP requests
type OrderHandler struct {
	orderService    *service.OrderService
	paymentService  *service.PaymentService
	documentService *service.DocumentService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	orderService *service.OrderService,
	paymentService *service.PaymentService,
	documentService *service.DocumentService,
) *OrderHandler {
	return &OrderHandler{
		orderService:    orderService,
		paymentService:  paymentService,
		documentService: documentService,
	}
}

// List handles listing orders with pagination and filters
func (h *OrderHandler) List(c *gin.Context) {
	params := &repository.OrderFilterParams{
		Pagination: paginationParams(c),
	}

	if raw := c.Query("status"); raw != "" {
		status, err := enum.ParseOrderStatus(raw)
		if err != nil {
			response.BadRequest(c, "status must be one of pending, paid, cancelled")
			return
		}
		params.Status = &status
	}
	if raw := c.Query("customer_id"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "invalid customer_id")
			return
		}
		params.CustomerID = &customerID
	}
	filter, err := service.ParseFilter(c.Query("start_date"), c.Query("end_date"), "")
	if err != nil {
		response.Error(c, err)
		return
	}
	params.StartDate = filter.StartDate
	params.EndDate = filter.EndDate

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Get handles retrieving a single order with its customer, product and payments
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order retrieved successfully", order)
}

// Create handles creating an order
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateOrderInput{
		CustomerID:     req.CustomerID,
		ProductID:      req.ProductID,
		Quantity:       req.Quantity,
		DeliveryCost:   req.DeliveryCost,
		OtherExpense:   req.OtherExpense,
		ReceivedAmount: req.ReceivedAmount,
		Image:          req.Image,
	}
	if req.OrderStatus != nil {
		status, err := enum.ParseOrderStatus(*req.OrderStatus)
		if err != nil {
			response.BadRequest(c, "invalid order_status")
			return
		}
		input.OrderStatus = &status
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Order created successfully", order)
}

// Update handles updating an order
func (h *OrderHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateOrderInput{
		ID:             id,
		CustomerID:     req.CustomerID,
		ProductID:      req.ProductID,
		Quantity:       req.Quantity,
		DeliveryCost:   req.DeliveryCost,
		OtherExpense:   req.OtherExpense,
		ReceivedAmount: req.ReceivedAmount,
		Image:          req.Image,
	}
	if req.OrderStatus != nil {
		status, err := enum.ParseOrderStatus(*req.OrderStatus)
		if err != nil {
			response.BadRequest(c, "invalid order_status")
			return
		}
		input.OrderStatus = &status
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order updated successfully", order)
}

// UpdateStatus handles changing the order status or recording a refund
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var orderStatus *enum.OrderStatus
	if req.OrderStatus != nil {
		status, err := enum.ParseOrderStatus(*req.OrderStatus)
		if err != nil {
			response.BadRequest(c, "invalid order_status")
			return
		}
		orderStatus = &status
	}
	var paymentStatus *enum.PaymentStatus
	if req.PaymentStatus != nil {
		status, err := enum.ParsePaymentStatus(*req.PaymentStatus)
		if err != nil {
			response.BadRequest(c, "invalid payment_status")
			return
		}
		paymentStatus = &status
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), id, orderStatus, paymentStatus)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order status updated successfully", order)
}

// Delete handles deleting an order and its payments
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// --- Payments ---

// ListPayments handles listing the payments recorded against an order
func (h *OrderHandler) ListPayments(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	payments, err := h.paymentService.ListByOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payments retrieved successfully", payments)
}

// CreatePayment handles recording a payment against an order
func (h *OrderHandler) CreatePayment(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreatePaymentInput{
		OrderID:     id,
		Amount:      req.Amount,
		PaymentDate: req.PaymentDate,
	}
	if req.Method != nil {
		method, err := enum.ParsePaymentMethod(*req.Method)
		if err != nil {
			response.BadRequest(c, "invalid payment method")
			return
		}
		input.Method = &method
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Payment recorded successfully", payment)
}

// DeletePayment handles removing a payment row
func (h *OrderHandler) DeletePayment(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// --- Documents ---

// Invoice streams the invoice PDF for an order
func (h *OrderHandler) Invoice(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	doc, err := h.documentService.Invoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	sendDocument(c, doc)
}

// BulkInvoice renders an invoice for a selection of order ids
func (h *OrderHandler) BulkInvoice(c *gin.Context) {
	var req request.BulkInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	doc, err := h.documentService.BulkInvoice(c.Request.Context(), req.IDs)
	if err != nil {
		response.Error(c, err)
		return
	}
	sendDocument(c, doc)
}

// DeliverySlip streams the plain-text delivery slip for an order
func (h *OrderHandler) DeliverySlip(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	doc, err := h.documentService.DeliverySlip(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	sendDocument(c, doc)
}

func sendDocument(c *gin.Context, doc *service.RenderedDocument) {
	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Data(200, doc.ContentType, doc.Data)
}

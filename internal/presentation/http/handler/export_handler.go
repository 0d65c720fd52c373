package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chococroco/orders-api/internal/application/service"
	"github.com/chococroco/orders-api/internal/presentation/http/dto/response"
)

// ExportHandler handles CSV and spreadsheet export HTTP requests
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

func (h *ExportHandler) sendCSV(c *gin.Context, filename string, export func(context.Context, []uuid.UUID) ([]byte, error)) {
	ids, err := parseIDList(c.Query("ids"))
	if err != nil {
		response.Error(c, err)
		return
	}

	data, err := export(c.Request.Context(), ids)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "text/csv; charset=utf-8", data)
}

// Customers streams the customers CSV
func (h *ExportHandler) Customers(c *gin.Context) {
	h.sendCSV(c, "customers.csv", h.exportService.CustomersCSV)
}

// Products streams the products CSV
func (h *ExportHandler) Products(c *gin.Context) {
	h.sendCSV(c, "products.csv", h.exportService.ProductsCSV)
}

// Orders streams the orders CSV
func (h *ExportHandler) Orders(c *gin.Context) {
	h.sendCSV(c, "orders.csv", h.exportService.OrdersCSV)
}

// Payments streams the payments CSV
func (h *ExportHandler) Payments(c *gin.Context) {
	h.sendCSV(c, "payments.csv", h.exportService.PaymentsCSV)
}

// ProfitLossCSV streams the profit and loss statement as CSV
func (h *ExportHandler) ProfitLossCSV(c *gin.Context) {
	h.sendCSV(c, "profit-loss.csv", h.exportService.ProfitLossCSV)
}

// ProfitLossXLSX streams the profit and loss statement as a spreadsheet
func (h *ExportHandler) ProfitLossXLSX(c *gin.Context) {
	ids, err := parseIDList(c.Query("ids"))
	if err != nil {
		response.Error(c, err)
		return
	}

	data, err := h.exportService.ProfitLossXLSX(c.Request.Context(), ids)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="profit-loss.xlsx"`)
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

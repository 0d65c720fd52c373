package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/chococroco/orders-api/internal/application/service"
	"github.com/chococroco/orders-api/internal/presentation/http/dto/response"
)

// ReportHandler handles sales report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Orders handles the sales report over an optional date window and status
func (h *ReportHandler) Orders(c *gin.Context) {
	filter, err := service.ParseFilter(c.Query("start_date"), c.Query("end_date"), c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.reportService.BuildReport(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Report generated successfully", report)
}

package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chococroco/orders-api/internal/domain/entity"
	"github.com/chococroco/orders-api/internal/domain/enum"
	"github.com/chococroco/orders-api/internal/domain/finance"
	"github.com/chococroco/orders-api/internal/domain/repository"
	"github.com/chococroco/orders-api/pkg/apperror"
)

const reportDateLayout = "2006-01-02"

// OrderReport is the sales report over a filtered window of orders.
type OrderReport struct {
	Orders      []entity.Order  `json:"orders"`
	TotalSales  decimal.Decimal `json:"total_sales"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	TotalProfit decimal.Decimal `json:"total_profit"`
	OrderCount  int             `json:"order_count"`
}

// ReportService computes sales and profit summaries over order windows.
type ReportService struct {
	orderRepo repository.OrderRepository
}

// NewReportService creates a new report service
func NewReportService(orderRepo repository.OrderRepository) *ReportService {
	return &ReportService{orderRepo: orderRepo}
}

// ParseFilter builds a report filter from raw query values. Dates are
// inclusive calendar days; the end date covers the whole day.
func ParseFilter(startDate, endDate, status string) (*repository.ReportFilter, error) {
	filter := &repository.ReportFilter{}

	if startDate != "" {
		start, err := time.Parse(reportDateLayout, startDate)
		if err != nil {
			return nil, apperror.NewInvalidArgumentError("start_date must be a valid date (YYYY-MM-DD)")
		}
		filter.StartDate = &start
	}
	if endDate != "" {
		end, err := time.Parse(reportDateLayout, endDate)
		if err != nil {
			return nil, apperror.NewInvalidArgumentError("end_date must be a valid date (YYYY-MM-DD)")
		}
		endExclusive := end.AddDate(0, 0, 1)
		filter.EndDate = &endExclusive
	}
	if status != "" {
		parsed, err := enum.ParseOrderStatus(status)
		if err != nil {
			return nil, apperror.NewInvalidArgumentError("status must be one of pending, paid, cancelled")
		}
		filter.Status = &parsed
	}

	return filter, nil
}

// BuildReport loads the matching orders and sums their revenue, cost and
// profit. Cost is recomputed from each order's product at read time so a
// price edit shows up in the next report.
func (s *ReportService) BuildReport(ctx context.Context, filter *repository.ReportFilter) (*OrderReport, error) {
	orders, err := s.orderRepo.ListByReportFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	report := &OrderReport{
		Orders:      orders,
		TotalSales:  decimal.Zero,
		TotalCost:   decimal.Zero,
		TotalProfit: decimal.Zero,
		OrderCount:  len(orders),
	}
	for i := range orders {
		order := &orders[i]
		report.TotalSales = report.TotalSales.Add(order.Total)
		report.TotalProfit = report.TotalProfit.Add(order.ProfitAmount)
		report.TotalCost = report.TotalCost.Add(finance.CostTotal(order, &order.Product))
	}

	return report, nil
}

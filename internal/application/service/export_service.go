package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/chococroco/orders-api/internal/domain/finance"
	"github.com/chococroco/orders-api/internal/domain/repository"
)

const exportTimeLayout = "2006-01-02 15:04:05"

// ExportService produces CSV and spreadsheet extracts of the core records.
// An empty id selection exports everything.
type ExportService struct {
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
	paymentRepo  repository.PaymentRepository
}

// NewExportService creates a new export service
func NewExportService(
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
) *ExportService {
	return &ExportService{
		customerRepo: customerRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
	}
}

// CustomersCSV exports the selected customers
func (s *ExportService) CustomersCSV(ctx context.Context, ids []uuid.UUID) ([]byte, error) {
	customers, err := s.customerRepo.ListForExport(ctx, ids)
	if err != nil {
		return nil, err
	}

	rows := [][]string{{"ID", "Name", "Email", "Phone", "Address", "Created At"}}
	for i := range customers {
		c := &customers[i]
		rows = append(rows, []string{
			c.ID.String(),
			c.Name,
			strOrEmpty(c.Email),
			strOrEmpty(c.Phone),
			strOrEmpty(c.Address),
			c.CreatedAt.Format(exportTimeLayout),
		})
	}
	return writeCSV(rows)
}

// ProductsCSV exports the selected products
func (s *ExportService) ProductsCSV(ctx context.Context, ids []uuid.UUID) ([]byte, error) {
	products, err := s.productRepo.ListForExport(ctx, ids)
	if err != nil {
		return nil, err
	}

	rows := [][]string{{"ID", "Name", "Display Name", "Category", "Size", "Cost Price", "Sell Price"}}
	for i := range products {
		p := &products[i]
		category := ""
		if p.Category != nil {
			category = p.Category.Name
		}
		size := ""
		if p.Size != nil {
			size = p.Size.Name
		}
		rows = append(rows, []string{
			p.ID.String(),
			p.Name,
			p.DisplayName,
			category,
			size,
			p.CostPrice.StringFixed(2),
			p.SellPrice.StringFixed(2),
		})
	}
	return writeCSV(rows)
}

// OrdersCSV exports the selected orders
func (s *ExportService) OrdersCSV(ctx context.Context, ids []uuid.UUID) ([]byte, error) {
	orders, err := s.orderRepo.ListForExport(ctx, ids)
	if err != nil {
		return nil, err
	}

	rows := [][]string{{
		"ID", "Customer", "Product", "Quantity", "Delivery Cost", "Other Expense",
		"Total", "Received Amount", "Pending Amount", "Profit Amount",
		"Order Status", "Payment Status", "Created At",
	}}
	for i := range orders {
		o := &orders[i]
		rows = append(rows, []string{
			o.ID.String(),
			o.Customer.Name,
			o.Product.DisplayName,
			fmt.Sprintf("%d", o.Quantity),
			o.DeliveryCost.StringFixed(2),
			o.OtherExpense.StringFixed(2),
			o.Total.StringFixed(2),
			o.ReceivedAmount.StringFixed(2),
			o.PendingAmount.StringFixed(2),
			o.ProfitAmount.StringFixed(2),
			o.OrderStatus.String(),
			o.PaymentStatus.String(),
			o.CreatedAt.Format(exportTimeLayout),
		})
	}
	return writeCSV(rows)
}

// PaymentsCSV exports the selected payments
func (s *ExportService) PaymentsCSV(ctx context.Context, ids []uuid.UUID) ([]byte, error) {
	payments, err := s.paymentRepo.ListForExport(ctx, ids)
	if err != nil {
		return nil, err
	}

	rows := [][]string{{"ID", "Order ID", "Amount", "Method", "Payment Date"}}
	for i := range payments {
		p := &payments[i]
		rows = append(rows, []string{
			p.ID.String(),
			p.OrderID.String(),
			p.Amount.StringFixed(2),
			p.Method.String(),
			p.PaymentDate.Format(exportTimeLayout),
		})
	}
	return writeCSV(rows)
}

var profitLossDetailHeader = []string{
	"Order ID", "Customer", "Product", "Quantity",
	"Product Total", "Delivery Cost", "Order Total", "Profit",
}

// ProfitLossCSV exports the profit and loss statement for the selected orders:
// a totals block followed by one detail row per order. An empty selection
// covers every order.
func (s *ExportService) ProfitLossCSV(ctx context.Context, ids []uuid.UUID) ([]byte, error) {
	summary, details, err := s.profitLossRows(ctx, ids)
	if err != nil {
		return nil, err
	}

	rows := [][]string{
		{"Total Revenue", "Total Cost", "Total Profit"},
		summary,
		{},
		profitLossDetailHeader,
	}
	rows = append(rows, details...)
	return writeCSV(rows)
}

// ProfitLossXLSX exports the same statement as a spreadsheet
func (s *ExportService) ProfitLossXLSX(ctx context.Context, ids []uuid.UUID) ([]byte, error) {
	summary, details, err := s.profitLossRows(ctx, ids)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Profit & Loss"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	writeRow := func(row int, values []string) error {
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
		return nil
	}

	if err := writeRow(1, []string{"Total Revenue", "Total Cost", "Total Profit"}); err != nil {
		return nil, err
	}
	if err := writeRow(2, summary); err != nil {
		return nil, err
	}
	if err := writeRow(4, profitLossDetailHeader); err != nil {
		return nil, err
	}
	for i, detail := range details {
		if err := writeRow(5+i, detail); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *ExportService) profitLossRows(ctx context.Context, ids []uuid.UUID) (summary []string, details [][]string, err error) {
	orders, err := s.orderRepo.ListForExport(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	// Figures come from the current product prices, not the stored order columns
	totalSales := decimal.Zero
	totalCost := decimal.Zero
	totalProfit := decimal.Zero
	for i := range orders {
		o := &orders[i]
		totalSales = totalSales.Add(finance.OrderTotal(o, &o.Product))
		totalCost = totalCost.Add(finance.CostTotal(o, &o.Product))
		totalProfit = totalProfit.Add(finance.Profit(o, &o.Product))
	}

	summary = []string{
		totalSales.StringFixed(2),
		totalCost.StringFixed(2),
		totalProfit.StringFixed(2),
	}
	for i := range orders {
		o := &orders[i]
		details = append(details, []string{
			o.ID.String(),
			o.Customer.Name,
			o.Product.DisplayName,
			fmt.Sprintf("%d", o.Quantity),
			finance.ProductTotal(o, &o.Product).StringFixed(2),
			o.DeliveryCost.StringFixed(2),
			finance.OrderTotal(o, &o.Product).StringFixed(2),
			finance.Profit(o, &o.Product).StringFixed(2),
		})
	}
	return summary, details, nil
}

func writeCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

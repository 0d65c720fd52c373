// Package document renders order documents: the invoice PDF and the plain-text
// delivery slip. Builders are deterministic: the same input always produces the
// same bytes.
package document

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// CompanyInfo is the identity block printed at the top of every document.
type CompanyInfo struct {
	Name    string
	Address string
	Phone   string
}

// LineItem is a single row of the invoice item table.
type LineItem struct {
	Name     string
	Quantity int
	Rate     decimal.Decimal
	Total    decimal.Decimal
}

// Invoice is the renderable view of an order. The service layer maps entities
// into it; this package only formats.
type Invoice struct {
	Company         CompanyInfo
	OrderID         string
	Date            time.Time
	CustomerName    string
	CustomerAddress string
	Lines           []LineItem

	Subtotal     decimal.Decimal
	DeliveryCost decimal.Decimal
	OtherExpense decimal.Decimal
	GrandTotal   decimal.Decimal
	Profit       decimal.Decimal

	// GeneratedAt pins the PDF creation timestamp so rendering stays
	// byte-stable for a given order state.
	GeneratedAt time.Time
}

// Filename returns the attachment name for this invoice.
func (inv *Invoice) Filename() string {
	return fmt.Sprintf("invoice_%s.pdf", inv.OrderID)
}

func money(d decimal.Decimal) string {
	return "Rs. " + d.StringFixed(2)
}

// Render produces the invoice PDF: company header, customer and order blocks,
// item table, totals and footer.
func (inv *Invoice) Render() ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(inv.GeneratedAt)
	pdf.SetTitle(fmt.Sprintf("Invoice %s", inv.OrderID), false)
	pdf.AddPage()

	// Company header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, inv.Company.Name, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, inv.Company.Address, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Phone: "+inv.Company.Phone, "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Customer block on the left, order metadata on the right
	colWidth := 95.0
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colWidth, 5, "Customer:", "", 0, "L", false, 0, "")
	pdf.CellFormat(colWidth, 5, "Order No: "+inv.OrderID, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(colWidth, 5, inv.CustomerName, "", 0, "L", false, 0, "")
	pdf.CellFormat(colWidth, 5, "Date: "+inv.Date.Format("02-01-2006"), "", 1, "L", false, 0, "")
	if inv.CustomerAddress != "" {
		pdf.CellFormat(colWidth, 5, inv.CustomerAddress, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// Item table
	nameW, qtyW, rateW, totalW := 80.0, 25.0, 40.0, 40.0
	rowH := 7.0

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(242, 242, 242)
	pdf.CellFormat(nameW, rowH, "Product", "1", 0, "L", true, 0, "")
	pdf.CellFormat(qtyW, rowH, "Quantity", "1", 0, "C", true, 0, "")
	pdf.CellFormat(rateW, rowH, "Rate", "1", 0, "R", true, 0, "")
	pdf.CellFormat(totalW, rowH, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range inv.Lines {
		pdf.CellFormat(nameW, rowH, line.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(qtyW, rowH, fmt.Sprintf("%d", line.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(rateW, rowH, money(line.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(totalW, rowH, money(line.Total), "1", 1, "R", false, 0, "")
	}

	summary := []struct {
		label string
		value decimal.Decimal
		bold  bool
	}{
		{"Subtotal", inv.Subtotal, false},
		{"Delivery Cost", inv.DeliveryCost, false},
		{"Other Expense", inv.OtherExpense, false},
		{"Grand Total", inv.GrandTotal, true},
		{"Profit", inv.Profit, false},
	}
	for _, row := range summary {
		if row.bold {
			pdf.SetFont("Helvetica", "B", 10)
		} else {
			pdf.SetFont("Helvetica", "", 10)
		}
		pdf.CellFormat(nameW+qtyW, rowH, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(rateW, rowH, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(totalW, rowH, money(row.value), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(8)

	// Footer
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 5, "Thanks for your order!", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, "Follow us on Instagram, Facebook, YouTube", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("document: failed to render invoice %s: %w", inv.OrderID, err)
	}
	return buf.Bytes(), nil
}

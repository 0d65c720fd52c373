package document

import (
	"bytes"
	"fmt"
)

// DeliverySlip is the renderable view of an order's delivery note.
type DeliverySlip struct {
	Company         CompanyInfo
	OrderID         string
	CustomerName    string
	CustomerAddress string
	CustomerPhone   string
}

// Filename returns the attachment name for this delivery slip.
func (s *DeliverySlip) Filename() string {
	return fmt.Sprintf("delivery_slip_%s.txt", s.OrderID)
}

// Render produces the plain-text slip: company identity, delivery address and
// the order id.
func (s *DeliverySlip) Render() []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "--- %s ---\n", s.Company.Name)
	fmt.Fprintf(&buf, "%s\n", s.Company.Address)
	fmt.Fprintf(&buf, "%s\n", s.Company.Phone)
	buf.WriteString("\n")

	buf.WriteString("--- Delivery To ---\n")
	fmt.Fprintf(&buf, "%s\n", s.CustomerName)
	if s.CustomerAddress != "" {
		fmt.Fprintf(&buf, "%s\n", s.CustomerAddress)
	}
	if s.CustomerPhone != "" {
		fmt.Fprintf(&buf, "%s\n", s.CustomerPhone)
	}
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "Order ID: %s\n", s.OrderID)

	return buf.Bytes()
}

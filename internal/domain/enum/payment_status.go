package enum

import (
	"database/sql/driver"
	"fmt"
)

// PaymentStatus represents how much of an order has been settled
type PaymentStatus string

const (
	PaymentStatusPending     PaymentStatus = "pending"
	PaymentStatusPartialPaid PaymentStatus = "partial_paid"
	PaymentStatusFullPaid    PaymentStatus = "full_paid"
	PaymentStatusRefunded    PaymentStatus = "refunded"
)

// IsValid reports whether s is a known payment status
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPartialPaid, PaymentStatusFullPaid, PaymentStatusRefunded:
		return true
	}
	return false
}

// ParsePaymentStatus parses a raw string into a PaymentStatus
func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	s := PaymentStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown payment status %q", raw)
	}
	return s, nil
}

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusPending
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = PaymentStatus(v)
	case []byte:
		*s = PaymentStatus(v)
	default:
		return fmt.Errorf("cannot scan %T into PaymentStatus", value)
	}
	return nil
}

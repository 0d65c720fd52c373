package enum

import (
	"database/sql/driver"
	"fmt"
)

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodUPI  PaymentMethod = "upi"
	PaymentMethodCard PaymentMethod = "card"
)

// IsValid reports whether m is a known payment method
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodUPI, PaymentMethodCard:
		return true
	}
	return false
}

// ParsePaymentMethod parses a raw string into a PaymentMethod
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	m := PaymentMethod(raw)
	if !m.IsValid() {
		return "", fmt.Errorf("unknown payment method %q", raw)
	}
	return m, nil
}

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return string(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentMethodCash
		return nil
	}
	switch v := value.(type) {
	case string:
		*m = PaymentMethod(v)
	case []byte:
		*m = PaymentMethod(v)
	default:
		return fmt.Errorf("cannot scan %T into PaymentMethod", value)
	}
	return nil
}

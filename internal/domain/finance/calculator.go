// Package finance holds the pure order arithmetic. All functions operate on
// exact decimals; rounding happens only at presentation time.
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/chococroco/orders-api/internal/domain/entity"
	"github.com/chococroco/orders-api/internal/domain/enum"
)

// ProductTotal returns sell_price x quantity.
func ProductTotal(o *entity.Order, p *entity.Product) decimal.Decimal {
	return p.SellPrice.Mul(decimal.NewFromInt(int64(o.Quantity)))
}

// OrderTotal returns the product total plus delivery cost.
func OrderTotal(o *entity.Order, p *entity.Product) decimal.Decimal {
	return ProductTotal(o, p).Add(o.DeliveryCost)
}

// CostTotal returns cost_price x quantity plus delivery cost and other expense.
func CostTotal(o *entity.Order, p *entity.Product) decimal.Decimal {
	qty := decimal.NewFromInt(int64(o.Quantity))
	return p.CostPrice.Mul(qty).Add(o.DeliveryCost).Add(o.OtherExpense)
}

// Profit returns (sell_price - cost_price) x quantity minus other expense.
func Profit(o *entity.Order, p *entity.Product) decimal.Decimal {
	qty := decimal.NewFromInt(int64(o.Quantity))
	return p.SellPrice.Sub(p.CostPrice).Mul(qty).Sub(o.OtherExpense)
}

// Recalculate refreshes the order's denormalized financial fields from the
// referenced product. It is the recompute-on-write step the order service runs
// before every persist.
func Recalculate(o *entity.Order, p *entity.Product) {
	o.Total = OrderTotal(o, p)
	o.PendingAmount = o.Total.Sub(o.ReceivedAmount)
	o.ProfitAmount = Profit(o, p)
	o.PaymentStatus = DerivePaymentStatus(o.Total, o.ReceivedAmount, o.PaymentStatus)
}

// DerivePaymentStatus maps the received amount against the total. Refunded is
// an operator decision and is never overwritten once set.
func DerivePaymentStatus(total, received decimal.Decimal, current enum.PaymentStatus) enum.PaymentStatus {
	if current == enum.PaymentStatusRefunded {
		return current
	}
	switch {
	case received.LessThanOrEqual(decimal.Zero):
		return enum.PaymentStatusPending
	case received.LessThan(total):
		return enum.PaymentStatusPartialPaid
	default:
		return enum.PaymentStatusFullPaid
	}
}

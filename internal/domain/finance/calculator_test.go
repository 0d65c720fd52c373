package finance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/chococroco/orders-api/internal/domain/entity"
	"github.com/chococroco/orders-api/internal/domain/enum"
	"github.com/chococroco/orders-api/internal/domain/finance"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func sampleOrder() (*entity.Order, *entity.Product) {
	product := &entity.Product{
		Name:      "Dark Chocolate Box",
		SellPrice: d("100"),
		CostPrice: d("60"),
	}
	order := &entity.Order{
		Quantity:     3,
		DeliveryCost: d("10"),
		OtherExpense: d("5"),
	}
	return order, product
}

func TestCalculatorWorkedExample(t *testing.T) {
	order, product := sampleOrder()

	assert.True(t, finance.ProductTotal(order, product).Equal(d("300")))
	assert.True(t, finance.OrderTotal(order, product).Equal(d("310")))
	assert.True(t, finance.CostTotal(order, product).Equal(d("195")))
	assert.True(t, finance.Profit(order, product).Equal(d("115")))
}

func TestRecalculateSetsDenormalizedFields(t *testing.T) {
	order, product := sampleOrder()
	order.ReceivedAmount = d("100")

	finance.Recalculate(order, product)

	assert.True(t, order.Total.Equal(d("310")))
	assert.True(t, order.PendingAmount.Equal(d("210")))
	assert.True(t, order.ProfitAmount.Equal(d("115")))
	assert.Equal(t, enum.PaymentStatusPartialPaid, order.PaymentStatus)

	// Recomputation is idempotent for an unchanged order.
	finance.Recalculate(order, product)
	assert.True(t, order.Total.Equal(d("310")))
	assert.True(t, order.PendingAmount.Equal(d("210")))
	assert.True(t, order.ProfitAmount.Equal(d("115")))
}

func TestRecalculateKeepsInvariants(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		sell     string
		cost     string
		delivery string
		other    string
		received string
	}{
		{"no extras", 1, "49.50", "20.25", "0", "0", "0"},
		{"fractional prices", 7, "12.35", "8.10", "5.50", "1.25", "30"},
		{"loss making", 2, "10", "25", "3", "4", "23"},
		{"fully settled", 4, "250", "180", "40", "0", "1040"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			product := &entity.Product{SellPrice: d(tc.sell), CostPrice: d(tc.cost)}
			order := &entity.Order{
				Quantity:       tc.quantity,
				DeliveryCost:   d(tc.delivery),
				OtherExpense:   d(tc.other),
				ReceivedAmount: d(tc.received),
			}

			finance.Recalculate(order, product)

			qty := decimal.NewFromInt(int64(tc.quantity))
			wantTotal := d(tc.sell).Mul(qty).Add(d(tc.delivery))
			wantProfit := d(tc.sell).Sub(d(tc.cost)).Mul(qty).Sub(d(tc.other))

			assert.True(t, order.Total.Equal(wantTotal), "total")
			assert.True(t, order.PendingAmount.Equal(wantTotal.Sub(d(tc.received))), "pending")
			assert.True(t, order.ProfitAmount.Equal(wantProfit), "profit")
		})
	}
}

func TestDerivePaymentStatus(t *testing.T) {
	total := d("310")

	assert.Equal(t, enum.PaymentStatusPending,
		finance.DerivePaymentStatus(total, d("0"), enum.PaymentStatusPending))
	assert.Equal(t, enum.PaymentStatusPartialPaid,
		finance.DerivePaymentStatus(total, d("100"), enum.PaymentStatusPending))
	assert.Equal(t, enum.PaymentStatusFullPaid,
		finance.DerivePaymentStatus(total, d("310"), enum.PaymentStatusPartialPaid))
	assert.Equal(t, enum.PaymentStatusFullPaid,
		finance.DerivePaymentStatus(total, d("400"), enum.PaymentStatusPending))

	// Refunded is sticky: recomputation never downgrades it.
	assert.Equal(t, enum.PaymentStatusRefunded,
		finance.DerivePaymentStatus(total, d("310"), enum.PaymentStatusRefunded))
}

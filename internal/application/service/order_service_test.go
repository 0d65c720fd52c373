package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/chococroco/orders-api/internal/application/service"
	"github.com/chococroco/orders-api/internal/domain/enum"
	"github.com/chococroco/orders-api/internal/domain/repository"
	infraRepo "github.com/chococroco/orders-api/internal/infrastructure/repository"
	"github.com/chococroco/orders-api/pkg/apperror"
	"github.com/chococroco/orders-api/pkg/pagination"
)

func newOrderService(t *testing.T) (*service.OrderService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := service.NewOrderService(
		infraRepo.NewOrderRepository(db),
		infraRepo.NewCustomerRepository(db),
		infraRepo.NewProductRepository(db),
	)
	return svc, db
}

func TestCreateOrderComputesMoneyFields(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Asha")
	product := seedProduct(t, db, "Dark Chocolate", "60.00", "100.00")

	order, err := svc.CreateOrder(ctx, &service.CreateOrderInput{
		CustomerID:     customer.ID,
		ProductID:      product.ID,
		Quantity:       3,
		DeliveryCost:   d(t, "10.00"),
		OtherExpense:   d(t, "5.00"),
		ReceivedAmount: d(t, "100.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "310.00", order.Total.StringFixed(2))
	assert.Equal(t, "210.00", order.PendingAmount.StringFixed(2))
	assert.Equal(t, "115.00", order.ProfitAmount.StringFixed(2))
	assert.Equal(t, enum.PaymentStatusPartialPaid, order.PaymentStatus)
	assert.Equal(t, enum.OrderStatusPending, order.OrderStatus)
}

func TestCreateOrderRejectsZeroQuantity(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Asha")
	product := seedProduct(t, db, "Truffle", "30.00", "55.00")

	_, err := svc.CreateOrder(ctx, &service.CreateOrderInput{
		CustomerID: customer.ID,
		ProductID:  product.ID,
		Quantity:   0,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateOrderRejectsNegativeCosts(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Asha")
	product := seedProduct(t, db, "Truffle", "30.00", "55.00")

	_, err := svc.CreateOrder(ctx, &service.CreateOrderInput{
		CustomerID:   customer.ID,
		ProductID:    product.ID,
		Quantity:     1,
		DeliveryCost: d(t, "-50.00"),
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	_, err = svc.CreateOrder(ctx, &service.CreateOrderInput{
		CustomerID:   customer.ID,
		ProductID:    product.ID,
		Quantity:     1,
		OtherExpense: d(t, "-5.00"),
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	svc, db := newOrderService(t)
	product := seedProduct(t, db, "Truffle", "30.00", "55.00")

	_, err := svc.CreateOrder(context.Background(), &service.CreateOrderInput{
		CustomerID: newUUID(),
		ProductID:  product.ID,
		Quantity:   1,
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCreateOrderFullPayment(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Ravi")
	product := seedProduct(t, db, "Brownie", "40.00", "80.00")

	order, err := svc.CreateOrder(ctx, &service.CreateOrderInput{
		CustomerID:     customer.ID,
		ProductID:      product.ID,
		Quantity:       1,
		ReceivedAmount: d(t, "80.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "0.00", order.PendingAmount.StringFixed(2))
	assert.Equal(t, enum.PaymentStatusFullPaid, order.PaymentStatus)
}

func TestUpdateOrderRecomputesAfterQuantityChange(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Asha")
	product := seedProduct(t, db, "Dark Chocolate", "60.00", "100.00")

	order, err := svc.CreateOrder(ctx, &service.CreateOrderInput{
		CustomerID: customer.ID,
		ProductID:  product.ID,
		Quantity:   1,
	})
	require.NoError(t, err)
	require.Equal(t, "100.00", order.Total.StringFixed(2))

	quantity := 5
	updated, err := svc.UpdateOrder(ctx, &service.UpdateOrderInput{
		ID:       order.ID,
		Quantity: &quantity,
	})
	require.NoError(t, err)

	assert.Equal(t, "500.00", updated.Total.StringFixed(2))
	assert.Equal(t, "500.00", updated.PendingAmount.StringFixed(2))
	assert.Equal(t, "200.00", updated.ProfitAmount.StringFixed(2))
}

func TestUpdateOrderRepricesOnProductChange(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Asha")
	cheap := seedProduct(t, db, "Bar", "20.00", "40.00")
	premium := seedProduct(t, db, "Hamper", "300.00", "500.00")

	order, err := svc.CreateOrder(ctx, &service.CreateOrderInput{
		CustomerID: customer.ID,
		ProductID:  cheap.ID,
		Quantity:   2,
	})
	require.NoError(t, err)
	require.Equal(t, "80.00", order.Total.StringFixed(2))

	updated, err := svc.UpdateOrder(ctx, &service.UpdateOrderInput{
		ID:        order.ID,
		ProductID: &premium.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "1000.00", updated.Total.StringFixed(2))
	assert.Equal(t, "400.00", updated.ProfitAmount.StringFixed(2))
}

func TestUpdateOrderRejectsNegativeCosts(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Asha")
	product := seedProduct(t, db, "Truffle", "30.00", "55.00")

	order, err := svc.CreateOrder(ctx, &service.CreateOrderInput{
		CustomerID: customer.ID,
		ProductID:  product.ID,
		Quantity:   1,
	})
	require.NoError(t, err)

	negative := d(t, "-10.00")
	_, err = svc.UpdateOrder(ctx, &service.UpdateOrderInput{
		ID:           order.ID,
		DeliveryCost: &negative,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	_, err = svc.UpdateOrder(ctx, &service.UpdateOrderInput{
		ID:           order.ID,
		OtherExpense: &negative,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	// The failed updates must not have touched the stored order
	current, err := svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "55.00", current.Total.StringFixed(2))
}

func TestUpdateStatusManualRefund(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Ravi")
	product := seedProduct(t, db, "Brownie", "40.00", "80.00")

	order, err := svc.CreateOrder(ctx, &service.CreateOrderInput{
		CustomerID:     customer.ID,
		ProductID:      product.ID,
		Quantity:       1,
		ReceivedAmount: d(t, "80.00"),
	})
	require.NoError(t, err)

	cancelled := enum.OrderStatusCancelled
	refunded := enum.PaymentStatusRefunded
	updated, err := svc.UpdateStatus(ctx, order.ID, &cancelled, &refunded)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusCancelled, updated.OrderStatus)
	assert.Equal(t, enum.PaymentStatusRefunded, updated.PaymentStatus)

	// Refunded sticks across later recomputes
	amount := d(t, "80.00")
	recomputed, err := svc.UpdateOrder(ctx, &service.UpdateOrderInput{
		ID:             order.ID,
		ReceivedAmount: &amount,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.PaymentStatusRefunded, recomputed.PaymentStatus)
}

func TestUpdateStatusRecomputesMoneyFields(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Ravi")
	product := seedProduct(t, db, "Brownie", "40.00", "80.00")

	order, err := svc.CreateOrder(ctx, &service.CreateOrderInput{
		CustomerID: customer.ID,
		ProductID:  product.ID,
		Quantity:   1,
	})
	require.NoError(t, err)
	require.Equal(t, "80.00", order.Total.StringFixed(2))

	product.SellPrice = d(t, "120.00")
	require.NoError(t, db.Save(product).Error)

	paid := enum.OrderStatusPaid
	updated, err := svc.UpdateStatus(ctx, order.ID, &paid, nil)
	require.NoError(t, err)
	assert.Equal(t, "120.00", updated.Total.StringFixed(2))
	assert.Equal(t, "120.00", updated.PendingAmount.StringFixed(2))
}

func TestUpdateStatusRejectsDerivedPaymentStatus(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Ravi")
	product := seedProduct(t, db, "Brownie", "40.00", "80.00")

	order, err := svc.CreateOrder(ctx, &service.CreateOrderInput{
		CustomerID: customer.ID,
		ProductID:  product.ID,
		Quantity:   1,
	})
	require.NoError(t, err)

	fullPaid := enum.PaymentStatusFullPaid
	_, err = svc.UpdateStatus(ctx, order.ID, nil, &fullPaid)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestListOrdersFiltersByStatus(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Asha")
	product := seedProduct(t, db, "Bar", "20.00", "40.00")

	paid := enum.OrderStatusPaid
	for i := 0; i < 2; i++ {
		_, err := svc.CreateOrder(ctx, &service.CreateOrderInput{
			CustomerID: customer.ID,
			ProductID:  product.ID,
			Quantity:   1,
		})
		require.NoError(t, err)
	}
	_, err := svc.CreateOrder(ctx, &service.CreateOrderInput{
		CustomerID:  customer.ID,
		ProductID:   product.ID,
		Quantity:    1,
		OrderStatus: &paid,
	})
	require.NoError(t, err)

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 10},
		Status:     &paid,
	}
	result, err := svc.ListOrders(ctx, params)
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, int64(1), result.Pagination.Total)
}

func TestDeleteOrderNotFound(t *testing.T) {
	svc, _ := newOrderService(t)

	err := svc.DeleteOrder(context.Background(), newUUID())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/chococroco/orders-api/internal/application/service"
	infraRepo "github.com/chococroco/orders-api/internal/infrastructure/repository"
	"github.com/chococroco/orders-api/pkg/apperror"
	"github.com/chococroco/orders-api/pkg/pagination"
)

func newCustomerService(t *testing.T) (*service.CustomerService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return service.NewCustomerService(infraRepo.NewCustomerRepository(db)), db
}

func TestCreateCustomerTrimsName(t *testing.T) {
	svc, _ := newCustomerService(t)

	customer, err := svc.CreateCustomer(context.Background(), &service.CreateCustomerInput{
		Name: "  Asha  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha", customer.Name)
	assert.NotEqual(t, customer.ID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestCreateCustomerRequiresName(t *testing.T) {
	svc, _ := newCustomerService(t)

	_, err := svc.CreateCustomer(context.Background(), &service.CreateCustomerInput{Name: "   "})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestUpdateCustomerPartial(t *testing.T) {
	svc, _ := newCustomerService(t)
	ctx := context.Background()

	phone := "+91-9000000001"
	customer, err := svc.CreateCustomer(ctx, &service.CreateCustomerInput{
		Name:  "Ravi",
		Phone: &phone,
	})
	require.NoError(t, err)

	newPhone := "+91-9000000002"
	updated, err := svc.UpdateCustomer(ctx, &service.UpdateCustomerInput{
		ID:    customer.ID,
		Phone: &newPhone,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ravi", updated.Name)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, newPhone, *updated.Phone)
}

func TestGetCustomerNotFound(t *testing.T) {
	svc, _ := newCustomerService(t)

	_, err := svc.GetCustomer(context.Background(), newUUID())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestListCustomersPaginates(t *testing.T) {
	svc, _ := newCustomerService(t)
	ctx := context.Background()

	for _, name := range []string{"Asha", "Ravi", "Meena"} {
		_, err := svc.CreateCustomer(ctx, &service.CreateCustomerInput{Name: name})
		require.NoError(t, err)
	}

	result, err := svc.ListCustomers(ctx, &pagination.PaginationParams{Page: 2, PerPage: 2}, "")
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, int64(3), result.Pagination.Total)
	assert.True(t, result.Pagination.HasPrev)
}

func TestDeleteCustomer(t *testing.T) {
	svc, _ := newCustomerService(t)
	ctx := context.Background()

	customer, err := svc.CreateCustomer(ctx, &service.CreateCustomerInput{Name: "Asha"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCustomer(ctx, customer.ID))

	_, err = svc.GetCustomer(ctx, customer.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chococroco/orders-api/internal/application/service"
	"github.com/chococroco/orders-api/internal/infrastructure/repository"
	"github.com/chococroco/orders-api/pkg/apperror"
	"github.com/chococroco/orders-api/pkg/pagination"
)

func newCatalogService(t *testing.T) *service.CatalogService {
	t.Helper()
	db := newTestDB(t)
	return service.NewCatalogService(
		repository.NewCategoryRepository(db),
		repository.NewSizeRepository(db),
		repository.NewProductRepository(db),
	)
}

func TestCreateProductDerivesDisplayName(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	size, err := svc.CreateSize(ctx, "250g")
	require.NoError(t, err)

	product, err := svc.CreateProduct(ctx, &service.CreateProductInput{
		Name:      "Dark Chocolate",
		SizeID:    &size.ID,
		CostPrice: d(t, "60.00"),
		SellPrice: d(t, "100.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Dark Chocolate - 250g", product.DisplayName)
}

func TestCreateProductWithoutSize(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, &service.CreateProductInput{
		Name:      "Gift Hamper",
		CostPrice: d(t, "500.00"),
		SellPrice: d(t, "750.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Gift Hamper", product.DisplayName)
}

func TestCreateProductRejectsNegativePrices(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, &service.CreateProductInput{
		Name:      "Broken",
		CostPrice: d(t, "-1.00"),
		SellPrice: d(t, "10.00"),
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestUpdateProductRederivesDisplayName(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	size, err := svc.CreateSize(ctx, "500g")
	require.NoError(t, err)

	product, err := svc.CreateProduct(ctx, &service.CreateProductInput{
		Name:      "Milk Chocolate",
		SizeID:    &size.ID,
		CostPrice: d(t, "40.00"),
		SellPrice: d(t, "70.00"),
	})
	require.NoError(t, err)
	require.Equal(t, "Milk Chocolate - 500g", product.DisplayName)

	newName := "Milk Choco Bar"
	updated, err := svc.UpdateProduct(ctx, &service.UpdateProductInput{
		ID:   product.ID,
		Name: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, "Milk Choco Bar - 500g", updated.DisplayName)

	// Dropping the size collapses the label to the bare name
	updated, err = svc.UpdateProduct(ctx, &service.UpdateProductInput{
		ID:        product.ID,
		ClearSize: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Milk Choco Bar", updated.DisplayName)
}

func TestUpdateProductIsIdempotent(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	size, err := svc.CreateSize(ctx, "1kg")
	require.NoError(t, err)

	product, err := svc.CreateProduct(ctx, &service.CreateProductInput{
		Name:      "Brownie Box",
		SizeID:    &size.ID,
		CostPrice: d(t, "200.00"),
		SellPrice: d(t, "350.00"),
	})
	require.NoError(t, err)

	// Re-saving without changes must not alter the derived label
	updated, err := svc.UpdateProduct(ctx, &service.UpdateProductInput{ID: product.ID})
	require.NoError(t, err)
	assert.Equal(t, product.DisplayName, updated.DisplayName)
}

func TestDeleteCategoryKeepsProducts(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, "Chocolates")
	require.NoError(t, err)

	product, err := svc.CreateProduct(ctx, &service.CreateProductInput{
		Name:       "Truffle",
		CategoryID: &category.ID,
		CostPrice:  d(t, "30.00"),
		SellPrice:  d(t, "55.00"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(ctx, category.ID))

	kept, err := svc.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Truffle", kept.Name)
}

func TestGetProductNotFound(t *testing.T) {
	svc := newCatalogService(t)

	_, err := svc.GetProduct(context.Background(), newUUID())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestListProductsPaginates(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		_, err := svc.CreateProduct(ctx, &service.CreateProductInput{
			Name:      name,
			CostPrice: d(t, "1.00"),
			SellPrice: d(t, "2.00"),
		})
		require.NoError(t, err)
	}

	result, err := svc.ListProducts(ctx, &pagination.PaginationParams{Page: 1, PerPage: 2}, "")
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(3), result.Pagination.Total)
	assert.Equal(t, 2, result.Pagination.TotalPages)
}

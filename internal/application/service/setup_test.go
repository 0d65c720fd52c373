package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/chococroco/orders-api/internal/domain/entity"
)

// newTestDB opens an isolated in-memory database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entity.Category{},
		&entity.Size{},
		&entity.Product{},
		&entity.Customer{},
		&entity.Order{},
		&entity.Payment{},
	)
	require.NoError(t, err)

	return db
}

func newUUID() uuid.UUID {
	return uuid.New()
}

func d(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return v
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) *entity.Customer {
	t.Helper()
	address := "12 Beach Road, Chennai"
	phone := "+91-9000000001"
	customer := &entity.Customer{Name: name, Address: &address, Phone: &phone}
	require.NoError(t, db.WithContext(context.Background()).Create(customer).Error)
	return customer
}

func seedProduct(t *testing.T, db *gorm.DB, name string, cost, sell string) *entity.Product {
	t.Helper()
	product := &entity.Product{
		Name:        name,
		DisplayName: name,
		CostPrice:   d(t, cost),
		SellPrice:   d(t, sell),
	}
	require.NoError(t, db.WithContext(context.Background()).Create(product).Error)
	return product
}

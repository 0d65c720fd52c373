package service_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/chococroco/orders-api/internal/application/service"
	"github.com/chococroco/orders-api/internal/domain/entity"
	infraRepo "github.com/chococroco/orders-api/internal/infrastructure/repository"
	"github.com/chococroco/orders-api/pkg/apperror"
	"github.com/chococroco/orders-api/pkg/document"
)

var testCompany = document.CompanyInfo{
	Name:    "ChocoCroco Pvt Ltd",
	Address: "123, Sweet Street, Chennai, India",
	Phone:   "+91-9876543210",
}

func newDocumentService(t *testing.T) (*service.DocumentService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := service.NewDocumentService(infraRepo.NewOrderRepository(db), testCompany)
	return svc, db
}

func seedPaidOrder(t *testing.T, db *gorm.DB) *entity.Order {
	t.Helper()
	customer := seedCustomer(t, db, "Asha")
	product := seedProduct(t, db, "Dark Chocolate", "60.00", "100.00")

	order := &entity.Order{
		CustomerID:    customer.ID,
		ProductID:     product.ID,
		Quantity:      2,
		DeliveryCost:  d(t, "10.00"),
		Total:         d(t, "210.00"),
		PendingAmount: d(t, "210.00"),
		ProfitAmount:  d(t, "80.00"),
	}
	require.NoError(t, db.WithContext(context.Background()).Create(order).Error)
	return order
}

func TestInvoiceRendersPDF(t *testing.T) {
	svc, db := newDocumentService(t)
	order := seedPaidOrder(t, db)

	doc, err := svc.Invoice(context.Background(), order.ID)
	require.NoError(t, err)

	assert.Equal(t, "invoice_"+order.ID.String()+".pdf", doc.Filename)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.True(t, bytes.HasPrefix(doc.Data, []byte("%PDF")))
}

func TestInvoiceIsDeterministic(t *testing.T) {
	svc, db := newDocumentService(t)
	order := seedPaidOrder(t, db)

	first, err := svc.Invoice(context.Background(), order.ID)
	require.NoError(t, err)
	second, err := svc.Invoice(context.Background(), order.ID)
	require.NoError(t, err)

	assert.Equal(t, first.Data, second.Data)
}

func TestInvoiceOrderNotFound(t *testing.T) {
	svc, _ := newDocumentService(t)

	_, err := svc.Invoice(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestBulkInvoiceRequiresSingleSelection(t *testing.T) {
	svc, db := newDocumentService(t)
	order := seedPaidOrder(t, db)

	_, err := svc.BulkInvoice(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, "Please select exactly one order", apperror.GetAppError(err).Message)

	_, err = svc.BulkInvoice(context.Background(), []uuid.UUID{order.ID, uuid.New()})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	doc, err := svc.BulkInvoice(context.Background(), []uuid.UUID{order.ID})
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Data)
}

func TestDeliverySlipContents(t *testing.T) {
	svc, db := newDocumentService(t)
	order := seedPaidOrder(t, db)

	doc, err := svc.DeliverySlip(context.Background(), order.ID)
	require.NoError(t, err)

	assert.Equal(t, "delivery_slip_"+order.ID.String()+".txt", doc.Filename)

	text := string(doc.Data)
	assert.True(t, strings.Contains(text, "--- ChocoCroco Pvt Ltd ---"))
	assert.True(t, strings.Contains(text, "--- Delivery To ---"))
	assert.True(t, strings.Contains(text, "Asha"))
	assert.True(t, strings.Contains(text, "12 Beach Road, Chennai"))
	assert.True(t, strings.Contains(text, "Order ID: "+order.ID.String()))
}

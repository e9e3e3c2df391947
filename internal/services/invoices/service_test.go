package invoices

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"billing-dashboard-backend/internal/models"
	"billing-dashboard-backend/internal/repository"
	"billing-dashboard-backend/internal/validation"
	"billing-dashboard-backend/internal/view"
)

func newTestService(t *testing.T) (*InvoiceService, *gorm.DB, *view.ListingCache) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Customer{}, &models.Invoice{}))

	cache := view.NewListingCache()
	svc := NewInvoiceService(repository.NewInvoiceRepository(db), cache, zerolog.Nop())
	return svc, db, cache
}

func validForm() validation.InvoiceForm {
	return validation.InvoiceForm{
		CustomerID: uuid.New().String(),
		Amount:     "19.99",
		Status:     "pending",
	}
}

func TestCreateSucceedsAndInvalidatesListing(t *testing.T) {
	svc, db, cache := newTestService(t)
	cache.Put(ListingPath, []byte("stale"))

	id, res := svc.Create(validForm())
	assert.Equal(t, Succeeded, res.Outcome)
	assert.NotEqual(t, uuid.Nil, id)

	_, ok := cache.Get(ListingPath)
	assert.False(t, ok, "listing cache should be invalidated")

	var stored models.Invoice
	require.NoError(t, db.First(&stored, "id = ?", id).Error)
	assert.Equal(t, int64(1999), stored.Amount)
	assert.Equal(t, models.StatusPending, stored.Status)
	assert.Equal(t, time.Now().Format("2006-01-02"), stored.Date)
}

func TestCreateValidationFailureSkipsAllSideEffects(t *testing.T) {
	svc, db, cache := newTestService(t)
	cache.Put(ListingPath, []byte("fresh"))

	id, res := svc.Create(validation.InvoiceForm{})
	assert.Equal(t, ValidationFailed, res.Outcome)
	assert.Equal(t, uuid.Nil, id)
	assert.Equal(t, "Missing Fields. Failed to Create Invoice.", res.Message)
	assert.Len(t, res.Errors, 3)

	var count int64
	db.Model(&models.Invoice{}).Count(&count)
	assert.Zero(t, count)

	_, ok := cache.Get(ListingPath)
	assert.True(t, ok, "validation failure must not touch the listing cache")
}

func TestCreatePersistenceFailureHidesDriverError(t *testing.T) {
	svc, db, cache := newTestService(t)
	require.NoError(t, db.Migrator().DropTable(&models.Invoice{}))
	cache.Put(ListingPath, []byte("stale"))

	id, res := svc.Create(validForm())
	assert.Equal(t, PersistenceFailed, res.Outcome)
	assert.Equal(t, uuid.Nil, id)
	assert.Equal(t, "Database Error: Failed to Create Invoice.", res.Message)
	assert.NotContains(t, res.Message, "no such table")
	assert.Empty(t, res.Errors)

	_, ok := cache.Get(ListingPath)
	assert.False(t, ok, "invalidation fires once the executor was reached")
}

func TestUpdateReplacesFieldsKeepsDate(t *testing.T) {
	svc, db, _ := newTestService(t)
	id, res := svc.Create(validForm())
	require.Equal(t, Succeeded, res.Outcome)

	// age the stored date so immutability is observable
	require.NoError(t, db.Model(&models.Invoice{}).Where("id = ?", id).Update("date", "2020-01-15").Error)

	res = svc.Update(id, validation.InvoiceForm{
		CustomerID: uuid.New().String(),
		Amount:     "42",
		Status:     "paid",
	})
	assert.Equal(t, Succeeded, res.Outcome)

	var stored models.Invoice
	require.NoError(t, db.First(&stored, "id = ?", id).Error)
	assert.Equal(t, int64(4200), stored.Amount)
	assert.Equal(t, models.StatusPaid, stored.Status)
	assert.Equal(t, "2020-01-15", stored.Date)
}

func TestUpdateValidationFailureReportsAllErrors(t *testing.T) {
	svc, _, cache := newTestService(t)
	cache.Put(ListingPath, []byte("fresh"))

	res := svc.Update(uuid.New(), validation.InvoiceForm{Amount: "-1"})
	assert.Equal(t, ValidationFailed, res.Outcome)
	assert.Equal(t, "Missing Fields. Failed to Update Invoice.", res.Message)
	assert.Len(t, res.Errors, 3)

	_, ok := cache.Get(ListingPath)
	assert.True(t, ok)
}

func TestUpdateMissingInvoiceReportsSuccess(t *testing.T) {
	svc, _, _ := newTestService(t)

	res := svc.Update(uuid.New(), validForm())
	assert.Equal(t, Succeeded, res.Outcome)
}

func TestUpdatePersistenceFailureHidesDriverError(t *testing.T) {
	svc, db, _ := newTestService(t)
	require.NoError(t, db.Migrator().DropTable(&models.Invoice{}))

	res := svc.Update(uuid.New(), validForm())
	assert.Equal(t, PersistenceFailed, res.Outcome)
	assert.Equal(t, "Database Error: Failed to Update Invoice.", res.Message)
	assert.NotContains(t, res.Message, "no such table")
}

func TestDeleteIsIdempotentAndAlwaysSucceeds(t *testing.T) {
	svc, db, cache := newTestService(t)
	id, res := svc.Create(validForm())
	require.Equal(t, Succeeded, res.Outcome)

	cache.Put(ListingPath, []byte("stale"))
	assert.Equal(t, Succeeded, svc.Delete(id).Outcome)
	_, ok := cache.Get(ListingPath)
	assert.False(t, ok, "delete invalidates the listing")

	// second delete of the same id is a no-op, not a fault
	assert.Equal(t, Succeeded, svc.Delete(id).Outcome)

	var count int64
	db.Model(&models.Invoice{}).Count(&count)
	assert.Zero(t, count)
}

func TestDeleteSwallowsPersistenceErrors(t *testing.T) {
	svc, db, cache := newTestService(t)
	require.NoError(t, db.Migrator().DropTable(&models.Invoice{}))
	cache.Put(ListingPath, []byte("stale"))

	res := svc.Delete(uuid.New())
	assert.Equal(t, Succeeded, res.Outcome)
	assert.Empty(t, res.Message)

	_, ok := cache.Get(ListingPath)
	assert.False(t, ok, "invalidation still fires on a failed delete")
}

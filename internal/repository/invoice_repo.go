package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"billing-dashboard-backend/internal/models"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Expose DB if needed
func (r *InvoiceRepository) DB() *gorm.DB {
	return r.db
}

// Create inserts a new invoice. The id and the date are assigned here, never
// taken from client input; the date is today's calendar date in ISO form.
func (r *InvoiceRepository) Create(customerID string, amountCents int64, status models.InvoiceStatus) (*models.Invoice, error) {
	inv := &models.Invoice{
		ID:         uuid.New(),
		CustomerID: customerID,
		Amount:     amountCents,
		Status:     status,
		Date:       time.Now().Format("2006-01-02"),
	}
	if err := r.db.Create(inv).Error; err != nil {
		return nil, err
	}
	return inv, nil
}

// Update replaces customer_id, amount and status for the row matching id.
// The date column is left untouched. A missing row affects zero rows and is
// not treated as an error.
func (r *InvoiceRepository) Update(id uuid.UUID, customerID string, amountCents int64, status models.InvoiceStatus) error {
	return r.db.Model(&models.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"customer_id": customerID,
			"amount":      amountCents,
			"status":      status,
		}).Error
}

// Delete removes the invoice with the given id. Deleting a missing row is a
// no-op, not an error.
func (r *InvoiceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Invoice{}, "id = ?", id).Error
}

// GetByID fetch a single invoice by ID
func (r *InvoiceRepository) GetByID(id uuid.UUID) (*models.Invoice, error) {
	var inv models.Invoice
	if err := r.db.First(&inv, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

// List returns all invoices, newest first, for the dashboard listing.
func (r *InvoiceRepository) List() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.Order("date desc, created_at desc").Find(&invoices).Error
	return invoices, err
}

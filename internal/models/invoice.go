package models

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceStatus is the closed set of invoice states.
type InvoiceStatus string

const (
	StatusPending InvoiceStatus = "pending"
	StatusPaid    InvoiceStatus = "paid"
)

// ValidStatus reports whether s names one of the accepted invoice states.
// An empty value is not a state of its own; it fails like any other bad input.
func ValidStatus(s string) bool {
	switch InvoiceStatus(s) {
	case StatusPending, StatusPaid:
		return true
	}
	return false
}

type Invoice struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CustomerID string        `gorm:"type:uuid;index"`
	Amount     int64         // cents
	Status     InvoiceStatus `gorm:"index"`
	Date       string        `gorm:"type:date"` // YYYY-MM-DD, set once at creation
	CreatedAt  time.Time
}

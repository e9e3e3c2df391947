package validation

import (
	"strings"

	"github.com/shopspring/decimal"

	"billing-dashboard-backend/internal/models"
)

// Messages surfaced verbatim to the user next to the failing form field.
const (
	MsgCustomerRequired = "Please select a customer."
	MsgAmountPositive   = "Please enter an amount greater than $0."
	MsgStatusRequired   = "Please select an invoice status."
)

// FieldErrors maps a form field name to the messages raised against it.
type FieldErrors map[string][]string

func (e FieldErrors) Empty() bool { return len(e) == 0 }

func (e FieldErrors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

// InvoiceForm is the raw payload as submitted, before any coercion.
type InvoiceForm struct {
	CustomerID string `form:"customer_id" json:"customer_id"`
	Amount     string `form:"amount" json:"amount"`
	Status     string `form:"status" json:"status"`
}

// ValidatedInvoice holds the typed fields of a form that passed validation.
type ValidatedInvoice struct {
	CustomerID string
	Amount     decimal.Decimal
	Status     models.InvoiceStatus
}

// ValidateInvoiceForm checks every field independently and reports all
// failures in a single pass, so the form can render every error at once.
// Malformed input is a normal failure outcome; this never panics.
func ValidateInvoiceForm(form InvoiceForm) (ValidatedInvoice, FieldErrors) {
	errs := FieldErrors{}

	customerID := strings.TrimSpace(form.CustomerID)
	if customerID == "" {
		errs.add("customer_id", MsgCustomerRequired)
	}

	var amount decimal.Decimal
	raw := strings.TrimSpace(form.Amount)
	if d, err := decimal.NewFromString(raw); err != nil || !d.IsPositive() {
		errs.add("amount", MsgAmountPositive)
	} else {
		amount = d
	}

	if !models.ValidStatus(form.Status) {
		errs.add("status", MsgStatusRequired)
	}

	if !errs.Empty() {
		return ValidatedInvoice{}, errs
	}
	return ValidatedInvoice{
		CustomerID: customerID,
		Amount:     amount,
		Status:     models.InvoiceStatus(form.Status),
	}, nil
}

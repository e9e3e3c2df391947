package invoices

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"billing-dashboard-backend/internal/money"
	"billing-dashboard-backend/internal/repository"
	"billing-dashboard-backend/internal/validation"
	"billing-dashboard-backend/internal/view"
)

// ListingPath is the canonical path of the invoice collection. The cached
// listing under this key is invalidated after every mutation attempt that
// reaches the database, and successful create/update calls redirect here.
const ListingPath = "/dashboard/invoices"

// User-facing messages; raw database errors stay in the logs.
const (
	msgMissingCreate = "Missing Fields. Failed to Create Invoice."
	msgMissingUpdate = "Missing Fields. Failed to Update Invoice."
	msgCreateFailed  = "Database Error: Failed to Create Invoice."
	msgUpdateFailed  = "Database Error: Failed to Update Invoice."
)

type InvoiceService struct {
	repo  *repository.InvoiceRepository
	cache *view.ListingCache
	log   zerolog.Logger
}

func NewInvoiceService(repo *repository.InvoiceRepository, cache *view.ListingCache, log zerolog.Logger) *InvoiceService {
	return &InvoiceService{repo: repo, cache: cache, log: log}
}

// Create validates the submitted form, converts the amount to cents and
// inserts the invoice. Field errors stop the call before any side effect.
// Returns the new invoice id when the insert succeeds.
func (s *InvoiceService) Create(form validation.InvoiceForm) (uuid.UUID, MutationResult) {
	fields, errs := validation.ValidateInvoiceForm(form)
	if !errs.Empty() {
		return uuid.Nil, validationFailed(errs, msgMissingCreate)
	}

	inv, err := s.repo.Create(fields.CustomerID, money.ToCents(fields.Amount), fields.Status)
	s.cache.Invalidate(ListingPath)
	if err != nil {
		s.log.Error().Err(err).Msg("create invoice")
		return uuid.Nil, persistenceFailed(msgCreateFailed)
	}
	return inv.ID, succeeded()
}

// Update validates the form and replaces customer_id, amount and status for
// the given invoice. The invoice date is never touched. An id matching no row
// updates nothing and still reports success.
func (s *InvoiceService) Update(id uuid.UUID, form validation.InvoiceForm) MutationResult {
	fields, errs := validation.ValidateInvoiceForm(form)
	if !errs.Empty() {
		return validationFailed(errs, msgMissingUpdate)
	}

	err := s.repo.Update(id, fields.CustomerID, money.ToCents(fields.Amount), fields.Status)
	s.cache.Invalidate(ListingPath)
	if err != nil {
		s.log.Error().Err(err).Str("invoice_id", id.String()).Msg("update invoice")
		return persistenceFailed(msgUpdateFailed)
	}
	return succeeded()
}

// Delete removes the invoice and always reports success: a missing row is a
// no-op and a database fault is logged but not surfaced, so the listing flow
// never blocks on a failed delete. The cached listing is invalidated on every
// attempt.
func (s *InvoiceService) Delete(id uuid.UUID) MutationResult {
	if err := s.repo.Delete(id); err != nil {
		s.log.Error().Err(err).Str("invoice_id", id.String()).Msg("delete invoice")
	}
	s.cache.Invalidate(ListingPath)
	return succeeded()
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"billing-dashboard-backend/internal/repository"
	"billing-dashboard-backend/internal/services/invoices"
	"billing-dashboard-backend/internal/validation"
	"billing-dashboard-backend/internal/view"
)

type InvoiceHandler struct {
	service      *invoices.InvoiceService
	invoiceRepo  *repository.InvoiceRepository
	customerRepo *repository.CustomerRepository
	cache        *view.ListingCache
}

func NewInvoiceHandler(service *invoices.InvoiceService, invoiceRepo *repository.InvoiceRepository, customerRepo *repository.CustomerRepository, cache *view.ListingCache) *InvoiceHandler {
	return &InvoiceHandler{
		service:      service,
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		cache:        cache,
	}
}

// bindForm reads the raw payload; missing or malformed fields are left empty
// and fall through to the validator, which owns the error reporting.
func bindForm(c *gin.Context) validation.InvoiceForm {
	var form validation.InvoiceForm
	_ = c.ShouldBind(&form)
	return form
}

// Create handles the invoice form submission. On success the client is
// redirected to the invoice listing; the redirect ends the call.
func (h *InvoiceHandler) Create(c *gin.Context) {
	_, res := h.service.Create(bindForm(c))
	h.finishMutation(c, res)
}

// Update replaces the editable fields of an existing invoice.
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}
	res := h.service.Update(id, bindForm(c))
	h.finishMutation(c, res)
}

func (h *InvoiceHandler) finishMutation(c *gin.Context, res invoices.MutationResult) {
	switch res.Outcome {
	case invoices.ValidationFailed:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": res.Errors, "message": res.Message})
	case invoices.PersistenceFailed:
		c.JSON(http.StatusInternalServerError, gin.H{"message": res.Message})
	default:
		c.Redirect(http.StatusSeeOther, invoices.ListingPath)
	}
}

// Delete always reports success to the client; a missing invoice or a failed
// statement never surfaces here.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}
	h.service.Delete(id)
	c.JSON(http.StatusOK, gin.H{"message": "invoice deleted"})
}

// List serves the invoice collection, caching the rendered payload under its
// canonical path until the next mutation invalidates it.
func (h *InvoiceHandler) List(c *gin.Context) {
	if body, ok := h.cache.Get(invoices.ListingPath); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	items, err := h.invoiceRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list invoices"})
		return
	}
	body, err := json.Marshal(gin.H{"invoices": items})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render invoices"})
		return
	}
	h.cache.Put(invoices.ListingPath, body)
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// Get returns one invoice, e.g. to prefill the edit form.
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}
	inv, err := h.invoiceRepo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": inv})
}

// Customers feeds the invoice form's customer select box.
func (h *InvoiceHandler) Customers(c *gin.Context) {
	customers, err := h.customerRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	handler "billing-dashboard-backend/internal/handlers"
	"billing-dashboard-backend/internal/repository"
	service "billing-dashboard-backend/internal/services/invoices"
	"billing-dashboard-backend/internal/view"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, log zerolog.Logger) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	listingCache := view.NewListingCache()

	invoiceService := service.NewInvoiceService(invoiceRepo, listingCache, log)

	invoiceHandler := handler.NewInvoiceHandler(invoiceService, invoiceRepo, customerRepo, listingCache)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Invoice routes
	invoices := api.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.List)
		invoices.POST("", invoiceHandler.Create)
		invoices.GET("/:id", invoiceHandler.Get)
		invoices.POST("/:id", invoiceHandler.Update)
		invoices.DELETE("/:id", invoiceHandler.Delete)
	}

	// Customer lookup for the invoice form
	api.GET("/customers", invoiceHandler.Customers)
}

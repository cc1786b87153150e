package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/albrtaraya/facturas-api/internal/application/billing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ListInvoices *billing.ListInvoicesUseCase
	InvoicePDF   *billing.PDFUseCase
	Sessions     *billing.SessionStore
	RowsPerPage  int
}

// Router registra las rutas del portal (API pública de consulta).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	invoiceHandler := NewInvoiceHandler(deps.ListInvoices, deps.InvoicePDF, deps.RowsPerPage)

	// Listado sin estado: los filtros viajan en el query string
	invoices := api.Group("/invoices")
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)

	// Consulta directa de facturas por cliente
	customers := api.Group("/customers")
	customers.Get("/:id/invoices", invoiceHandler.DatasetByCustomer)

	// Estado de vista del portal (sesiones)
	sessionHandler := NewSessionHandler(deps.Sessions)
	sessions := api.Group("/sessions")
	sessions.Post("/", sessionHandler.Create)
	sessions.Get("/:id", sessionHandler.Get)
	sessions.Delete("/:id", sessionHandler.Delete)
	sessions.Put("/:id/filters", sessionHandler.UpdateFilters)
	sessions.Put("/:id/page", sessionHandler.SetPage)
	sessions.Post("/:id/customers", sessionHandler.AddCustomer)
	sessions.Delete("/:id/customers/:customerId", sessionHandler.RemoveCustomer)
	sessions.Get("/:id/invoices", sessionHandler.Invoices)
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/albrtaraya/facturas-api/internal/application/billing"
	"github.com/albrtaraya/facturas-api/internal/application/dto"
	"github.com/albrtaraya/facturas-api/internal/domain"
	"github.com/albrtaraya/facturas-api/internal/domain/filter"
)

// InvoiceHandler maneja las consultas de facturas del portal (público).
type InvoiceHandler struct {
	uc          *billing.ListInvoicesUseCase
	pdf         *billing.PDFUseCase
	defaultRows int
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.ListInvoicesUseCase, pdf *billing.PDFUseCase, defaultRows int) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdf: pdf, defaultRows: defaultRows}
}

// List listado filtrado y paginado, sin estado de sesión: todo el estado
// viaja en el query string y se decodifica con el códec de la URL.
// GET /api/invoices?customers=1001,1002&status=pending&minAmount=100&page=1
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	q := queryValues(c)

	customerIDs := filter.DecodeCustomerIDs(q)
	if len(customerIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "customers es requerido"})
	}

	spec, ok := filter.DecodeQuery(q)
	if !ok {
		// La URL no trae estado de filtros: listar sin filtrar.
		spec = filter.Default()
	}

	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	if err := validate.Struct(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage(h.defaultRows)

	resp, err := h.uc.List(c.Context(), customerIDs, spec, page.Page, page.RowsPerPage)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "customers es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// GetByID detalle de una factura.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	invoice, err := h.uc.GetInvoice(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(invoice)
}

// PDF representación descargable de la factura.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdf.GenerateInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// DatasetByCustomer facturas de un cliente, envueltas en {"dataset": [...]}.
// GET /api/customers/:id/invoices
func (h *InvoiceHandler) DatasetByCustomer(c *fiber.Ctx) error {
	resp, err := h.uc.DatasetByCustomer(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "customerId es requerido"})
		}
		if errors.Is(err, domain.ErrNoInvoices) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNoInvoices.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

package dto

import (
	"github.com/shopspring/decimal"

	"github.com/albrtaraya/facturas-api/internal/domain/entity"
	"github.com/albrtaraya/facturas-api/internal/domain/filter"
	"github.com/albrtaraya/facturas-api/internal/domain/paging"
)

// InvoiceResponse una factura en las respuestas del portal. StatusLabel
// es la etiqueta en español del estado (o el valor crudo si no tiene).
type InvoiceResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	CustomerID    string          `json:"customerId"`
	CustomerName  string          `json:"customerName"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	StatusLabel   string          `json:"statusLabel"`
	DueDate       string          `json:"dueDate"`
	Service       string          `json:"service"`
	Period        string          `json:"period"`
}

// NewInvoiceResponse mapea la entidad a su representación HTTP.
func NewInvoiceResponse(inv *entity.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		CustomerID:    inv.CustomerID,
		CustomerName:  inv.CustomerName,
		Amount:        inv.Amount,
		Status:        inv.Status,
		StatusLabel:   filter.DisplayValue(filter.KeyStatus, inv.Status),
		DueDate:       inv.DueDate,
		Service:       inv.Service,
		Period:        inv.Period,
	}
}

// NewInvoiceResponses mapea un slice de entidades preservando el orden.
func NewInvoiceResponses(invoices []*entity.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, NewInvoiceResponse(inv))
	}
	return out
}

// ActiveFilterResponse un badge de filtro activo, ya formateado.
type ActiveFilterResponse struct {
	Key          string `json:"key"`
	Label        string `json:"label"`
	Value        string `json:"value"`
	DisplayValue string `json:"displayValue"`
}

// NewActiveFilterResponses deriva los badges del Spec en orden canónico.
func NewActiveFilterResponses(spec filter.Spec) []ActiveFilterResponse {
	entries := filter.ActiveEntries(spec)
	out := make([]ActiveFilterResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ActiveFilterResponse{
			Key:          e.Key,
			Label:        filter.Label(e.Key),
			Value:        e.Value,
			DisplayValue: filter.DisplayValue(e.Key, e.Value),
		})
	}
	return out
}

// PaginationResponse metadatos de página en las respuestas.
type PaginationResponse struct {
	paging.Info
	CurrentPage int `json:"currentPage"`
	RowsPerPage int `json:"rowsPerPage"`
	TotalItems  int `json:"totalItems"`
}

// ListInvoicesResponse página de resultados del listado filtrado.
// URLParams es lo que el colaborador de la URL debe escribir en el query
// string: clave con valor nulo = eliminar el parámetro.
type ListInvoicesResponse struct {
	Dataset       []InvoiceResponse      `json:"dataset"`
	Pagination    PaginationResponse     `json:"pagination"`
	Filters       filter.Spec            `json:"filters"`
	ActiveFilters []ActiveFilterResponse `json:"activeFilters"`
	URLParams     map[string]*string     `json:"urlParams"`
}

// DatasetResponse respuesta del endpoint de facturas por cliente:
// {"dataset": [...]}.
type DatasetResponse struct {
	Dataset []InvoiceResponse `json:"dataset"`
}

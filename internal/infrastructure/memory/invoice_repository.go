// Package memory implementa el repositorio de facturas sobre un dataset
// fijo en memoria. Es el origen de datos por defecto (INVOICE_SOURCE=memory),
// pensado para desarrollo y demos sin base de datos.
package memory

import (
	"context"

	"github.com/albrtaraya/facturas-api/internal/domain/entity"
	"github.com/albrtaraya/facturas-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo repositorio de solo lectura: los índices se arman en la
// construcción y no cambian, por lo que es seguro para uso concurrente.
type InvoiceRepo struct {
	byCustomer map[string][]*entity.Invoice
	byID       map[string]*entity.Invoice
}

// NewInvoiceRepository construye el repositorio a partir del dataset,
// preservando el orden de las facturas por cliente.
func NewInvoiceRepository(invoices []*entity.Invoice) *InvoiceRepo {
	r := &InvoiceRepo{
		byCustomer: make(map[string][]*entity.Invoice),
		byID:       make(map[string]*entity.Invoice, len(invoices)),
	}
	for _, inv := range invoices {
		r.byCustomer[inv.CustomerID] = append(r.byCustomer[inv.CustomerID], inv)
		r.byID[inv.ID] = inv
	}
	return r
}

// ListByCustomer devuelve una copia del slice del cliente; cliente sin
// facturas → slice vacío.
func (r *InvoiceRepo) ListByCustomer(_ context.Context, customerID string) ([]*entity.Invoice, error) {
	list := r.byCustomer[customerID]
	out := make([]*entity.Invoice, len(list))
	copy(out, list)
	return out, nil
}

// GetByID devuelve la factura o nil si no existe.
func (r *InvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	return r.byID[id], nil
}

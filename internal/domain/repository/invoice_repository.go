package repository

import (
	"context"

	"github.com/albrtaraya/facturas-api/internal/domain/entity"
)

// InvoiceRepository acceso de solo lectura a las facturas. El núcleo de
// filtrado nunca toca este puerto: recibe la colección ya materializada.
type InvoiceRepository interface {
	// ListByCustomer devuelve las facturas del cliente en el orden del
	// origen de datos. Cliente sin facturas → slice vacío, sin error.
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Invoice, error)
	// GetByID devuelve una factura por id, o nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/albrtaraya/facturas-api/internal/domain/entity"
	"github.com/albrtaraya/facturas-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository sobre PostgreSQL.
// Las fechas DATE se proyectan a strings ISO YYYY-MM-DD, que es la forma
// que consume el motor de filtrado.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Acepta pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `
	id, invoice_number, customer_id, customer_name,
	amount, status, due_date, service, period`

// ListByCustomer lista las facturas del cliente ordenadas por vencimiento.
func (r *InvoiceRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Invoice, error) {
	query := `
		SELECT` + invoiceColumns + `
		FROM invoices WHERE customer_id = $1 ORDER BY due_date, invoice_number`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// GetByID obtiene una factura por id, nil si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `
		SELECT` + invoiceColumns + `
		FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// scanInvoice lee una fila con las columnas de invoiceColumns.
func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var (
		inv     entity.Invoice
		dueDate time.Time
		period  time.Time
	)
	err := row.Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.CustomerID, &inv.CustomerName,
		&inv.Amount, &inv.Status, &dueDate, &inv.Service, &period,
	)
	if err != nil {
		return nil, err
	}
	inv.DueDate = dueDate.Format("2006-01-02")
	inv.Period = period.Format("2006-01-02")
	return &inv, nil
}

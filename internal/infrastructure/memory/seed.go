package memory

import (
	"github.com/shopspring/decimal"

	"github.com/albrtaraya/facturas-api/internal/domain/entity"
)

// SeedInvoices dataset de demostración: tres clientes con facturas de
// servicios (internet, TV cable, telefonía) a lo largo de 2024, en Bs.
func SeedInvoices() []*entity.Invoice {
	mk := func(id, number, customerID, customerName string, amount float64, status, dueDate, service, period string) *entity.Invoice {
		return &entity.Invoice{
			ID:            id,
			InvoiceNumber: number,
			CustomerID:    customerID,
			CustomerName:  customerName,
			Amount:        decimal.NewFromFloat(amount),
			Status:        status,
			DueDate:       dueDate,
			Service:       service,
			Period:        period,
		}
	}
	return []*entity.Invoice{
		mk("1", "FAC-001", "1001", "Carlos Mendoza", 150, entity.StatusPending, "2024-03-15", "Internet", "2024-03-01"),
		mk("2", "FAC-002", "1001", "Carlos Mendoza", 300, entity.StatusPaid, "2024-05-20", "TV Cable", "2024-05-01"),
		mk("3", "FAC-003", "1001", "Carlos Mendoza", 150, entity.StatusPaid, "2024-06-15", "Internet", "2024-06-01"),
		mk("4", "FAC-004", "1001", "Carlos Mendoza", 150.50, entity.StatusOverdue, "2024-01-15", "Internet", "2024-01-01"),
		mk("5", "FAC-005", "1002", "María García", 75, entity.StatusOverdue, "2024-01-10", "Telefono", "2024-01-01"),
		mk("6", "FAC-006", "1002", "María García", 500, entity.StatusPending, "2024-07-01", "Internet", "2024-07-01"),
		mk("7", "FAC-007", "1002", "María García", 75, entity.StatusPaid, "2024-04-10", "Telefono", "2024-04-01"),
		mk("8", "FAC-008", "1003", "Luis Condori", 200, entity.StatusPaid, "2024-06-15", "TV Cable", "2024-06-01"),
		mk("9", "FAC-009", "1003", "Luis Condori", 200, entity.StatusPending, "2024-08-15", "TV Cable", "2024-08-01"),
		mk("10", "FAC-010", "1003", "Luis Condori", 320.75, entity.StatusPaid, "2024-02-28", "Internet", "2024-02-01"),
		mk("11", "FAC-011", "1003", "Luis Condori", 200, entity.StatusOverdue, "2023-12-15", "TV Cable", "2023-12-01"),
		mk("12", "FAC-012", "1003", "Luis Condori", 450, entity.StatusPending, "2024-09-10", "Internet", "2024-09-01"),
	}
}

// NewSeededInvoiceRepository repositorio listo con el dataset de
// demostración.
func NewSeededInvoiceRepository() *InvoiceRepo {
	return NewInvoiceRepository(SeedInvoices())
}

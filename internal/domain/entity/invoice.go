package entity

import "github.com/shopspring/decimal"

// Estados de una factura dentro del portal de consulta.
// El conjunto es abierto: un estado desconocido se filtra por igualdad
// exacta y se muestra tal cual (sin etiqueta en español).
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusOverdue = "overdue"
)

// Invoice representa una factura consultable por el cliente.
// DueDate y Period se manejan como fechas ISO (YYYY-MM-DD): su orden
// lexicográfico coincide con el cronológico, que es lo que explota el
// motor de filtrado.
type Invoice struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	CustomerID    string          `json:"customerId"`
	CustomerName  string          `json:"customerName"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	DueDate       string          `json:"dueDate"`
	Service       string          `json:"service"`
	Period        string          `json:"period"`
}

package filter_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albrtaraya/facturas-api/internal/domain/entity"
	"github.com/albrtaraya/facturas-api/internal/domain/filter"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: cinco facturas con (status, monto) conocidos, en orden estable.
// ──────────────────────────────────────────────────────────────────────────────

func buildInvoices() []*entity.Invoice {
	mk := func(id, number string, amount float64, status, dueDate string) *entity.Invoice {
		return &entity.Invoice{
			ID:            id,
			InvoiceNumber: number,
			CustomerName:  "Cliente de prueba",
			Amount:        decimal.NewFromFloat(amount),
			Status:        status,
			DueDate:       dueDate,
			Service:       "Internet",
			Period:        "2024-01-01",
		}
	}
	return []*entity.Invoice{
		mk("1", "FAC-001", 150, "pending", "2024-03-15"),
		mk("2", "FAC-002", 300, "paid", "2024-05-20"),
		mk("3", "FAC-003", 75, "overdue", "2024-01-10"),
		mk("4", "FAC-004", 500, "pending", "2024-07-01"),
		mk("5", "FAC-005", 200, "paid", "2024-06-15"),
	}
}

func numbers(invoices []*entity.Invoice) []string {
	out := make([]string, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, inv.InvoiceNumber)
	}
	return out
}

// Con el filtro neutro Apply es la identidad: mismos elementos, mismo orden.
func TestApply_FiltroNeutroEsIdentidad(t *testing.T) {
	invoices := buildInvoices()

	result := filter.Apply(invoices, filter.Default())

	require.Len(t, result, len(invoices))
	for i := range invoices {
		assert.Same(t, invoices[i], result[i], "el elemento %d debe ser el mismo y en el mismo orden", i)
	}
}

// Filtrar por status y luego quitar el filtro recupera la colección completa.
func TestApply_PorStatusYLuegoRecupera(t *testing.T) {
	invoices := buildInvoices()

	spec := filter.Default()
	spec.Status = "pending"
	pending := filter.Apply(invoices, spec)

	require.Len(t, pending, 2)
	for _, inv := range pending {
		assert.Equal(t, "pending", inv.Status)
	}

	spec.Status = filter.StatusAll
	assert.Len(t, filter.Apply(invoices, spec), 5, "con status=all se recuperan todas")
}

// Status vacío cuenta como neutro, igual que "all".
func TestApply_StatusVacioNoFiltra(t *testing.T) {
	invoices := buildInvoices()
	assert.Len(t, filter.Apply(invoices, filter.Spec{}), 5)
}

// Un status desconocido se compara exacto: no coincide con ninguna factura.
func TestApply_StatusDesconocidoComparaExacto(t *testing.T) {
	invoices := buildInvoices()
	spec := filter.Default()
	spec.Status = "cancelled"
	assert.Empty(t, filter.Apply(invoices, spec))
}

// Filtros combinados: status=pending + rango de monto 100-400 deja solo
// FAC-001; al quitar la cota superior entran ambas pending.
func TestApply_FiltrosCombinados(t *testing.T) {
	invoices := buildInvoices()

	spec := filter.Spec{Status: "pending", MinAmount: "100", MaxAmount: "400"}
	result := filter.Apply(invoices, spec)
	require.Len(t, result, 1)
	assert.Equal(t, "FAC-001", result[0].InvoiceNumber)

	spec.MaxAmount = ""
	result = filter.Apply(invoices, spec)
	assert.ElementsMatch(t, []string{"FAC-001", "FAC-004"}, numbers(result))
}

// Rango de fechas sobre dueDate (comparación lexicográfica ISO).
func TestApply_RangoDeFechas(t *testing.T) {
	invoices := buildInvoices()

	spec := filter.Default()
	spec.StartDate = "2024-03-01"
	spec.EndDate = "2024-06-30"
	result := filter.Apply(invoices, spec)

	assert.Equal(t, []string{"FAC-001", "FAC-002", "FAC-005"}, numbers(result),
		"deben quedar las facturas con vencimiento entre marzo y junio, en orden original")
}

// Encoger el rango nunca agranda el resultado (subconjunto).
func TestApply_EncogerRangoNuncaAgranda(t *testing.T) {
	invoices := buildInvoices()

	amplio := filter.Apply(invoices, filter.Spec{Status: filter.StatusAll, MinAmount: "75", MaxAmount: "500"})
	estrecho := filter.Apply(invoices, filter.Spec{Status: filter.StatusAll, MinAmount: "150", MaxAmount: "300"})

	assert.LessOrEqual(t, len(estrecho), len(amplio))
	assert.Subset(t, numbers(amplio), numbers(estrecho))
}

// El parse de montos toma el prefijo numérico ("100abc" → 100).
func TestApply_CotaConPrefijoNumerico(t *testing.T) {
	invoices := buildInvoices()

	spec := filter.Default()
	spec.MinAmount = "200abc"
	result := filter.Apply(invoices, spec)

	assert.ElementsMatch(t, []string{"FAC-002", "FAC-004", "FAC-005"}, numbers(result))
}

// Una cota sin ningún dígito excluye todas las facturas (fail-closed).
func TestApply_CotaIlegibleExcluyeTodo(t *testing.T) {
	invoices := buildInvoices()

	spec := filter.Default()
	spec.MinAmount = "abc"
	assert.Empty(t, filter.Apply(invoices, spec))

	spec = filter.Default()
	spec.MaxAmount = "---"
	assert.Empty(t, filter.Apply(invoices, spec))
}

// Apply nunca muta la entrada.
func TestApply_NoMutaLaEntrada(t *testing.T) {
	invoices := buildInvoices()
	original := make([]*entity.Invoice, len(invoices))
	copy(original, invoices)

	spec := filter.Spec{Status: "paid", MinAmount: "100", MaxAmount: "999", StartDate: "2024-01-01", EndDate: "2024-12-31"}
	_ = filter.Apply(invoices, spec)

	require.Len(t, invoices, len(original))
	for i := range original {
		assert.Same(t, original[i], invoices[i])
	}
}

// Colección vacía: estado válido con salida vacía, sin pánico.
func TestApply_ColeccionVacia(t *testing.T) {
	assert.Empty(t, filter.Apply(nil, filter.Default()))
	spec := filter.Spec{Status: "pending", MinAmount: "10"}
	assert.Empty(t, filter.Apply([]*entity.Invoice{}, spec))
}

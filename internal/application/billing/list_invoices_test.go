package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albrtaraya/facturas-api/internal/application/billing"
	"github.com/albrtaraya/facturas-api/internal/domain"
	"github.com/albrtaraya/facturas-api/internal/domain/filter"
)

func buildListRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.add(invoice("1", "A", "Cliente A", "pending", 150))
	repo.add(invoice("2", "A", "Cliente A", "paid", 300))
	repo.add(invoice("3", "B", "Cliente B", "overdue", 75))
	repo.add(invoice("4", "B", "Cliente B", "pending", 500))
	repo.add(invoice("5", "C", "Cliente C", "paid", 200))
	return repo
}

func TestList_SinClientesEsEntradaInvalida(t *testing.T) {
	uc := billing.NewListInvoicesUseCase(buildListRepo())

	_, err := uc.List(context.Background(), nil, filter.Default(), 1, 6)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.List(context.Background(), []string{}, filter.Default(), 1, 6)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Los ids duplicados de la URL se deduplican antes del fetch: las
// facturas no salen repetidas.
func TestList_DeduplicaClientes(t *testing.T) {
	uc := billing.NewListInvoicesUseCase(buildListRepo())

	resp, err := uc.List(context.Background(), []string{"A", "B", "A"}, filter.Default(), 1, 6)
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Pagination.TotalItems)
}

// Filtrado combinado más paginación sobre la colección fusionada.
func TestList_FiltraYPagina(t *testing.T) {
	uc := billing.NewListInvoicesUseCase(buildListRepo())

	spec := filter.Spec{Status: "pending", MinAmount: "100", MaxAmount: "400"}
	resp, err := uc.List(context.Background(), []string{"A", "B"}, spec, 1, 6)
	require.NoError(t, err)

	require.Len(t, resp.Dataset, 1)
	assert.Equal(t, "FAC-1", resp.Dataset[0].InvoiceNumber)

	// Badges en orden canónico de campos
	require.Len(t, resp.ActiveFilters, 3)
	assert.Equal(t, "status", resp.ActiveFilters[0].Key)
	assert.Equal(t, "Pendiente", resp.ActiveFilters[0].DisplayValue)
	assert.Equal(t, "minAmount", resp.ActiveFilters[1].Key)
	assert.Equal(t, "Bs. 100", resp.ActiveFilters[1].DisplayValue)
	assert.Equal(t, "maxAmount", resp.ActiveFilters[2].Key)

	// Query params canónicos para el colaborador de la URL
	require.NotNil(t, resp.URLParams["status"])
	assert.Equal(t, "pending", *resp.URLParams["status"])
	assert.Nil(t, resp.URLParams["startDate"])
}

func TestList_PaginaFueraDeRango(t *testing.T) {
	uc := billing.NewListInvoicesUseCase(buildListRepo())

	resp, err := uc.List(context.Background(), []string{"A", "B", "C"}, filter.Default(), 9, 2)
	require.NoError(t, err)
	assert.Empty(t, resp.Dataset)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.False(t, resp.Pagination.HasNextPage)
}

func TestGetInvoice(t *testing.T) {
	uc := billing.NewListInvoicesUseCase(buildListRepo())

	inv, err := uc.GetInvoice(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "FAC-3", inv.InvoiceNumber)
	assert.Equal(t, "Vencido", inv.StatusLabel)

	_, err = uc.GetInvoice(context.Background(), "999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDatasetByCustomer(t *testing.T) {
	uc := billing.NewListInvoicesUseCase(buildListRepo())

	resp, err := uc.DatasetByCustomer(context.Background(), "B")
	require.NoError(t, err)
	assert.Len(t, resp.Dataset, 2)

	_, err = uc.DatasetByCustomer(context.Background(), "ZZZ")
	assert.ErrorIs(t, err, domain.ErrNoInvoices)

	_, err = uc.DatasetByCustomer(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

package billing

import (
	"context"

	"github.com/albrtaraya/facturas-api/internal/application/dto"
	"github.com/albrtaraya/facturas-api/internal/domain"
	"github.com/albrtaraya/facturas-api/internal/domain/entity"
	"github.com/albrtaraya/facturas-api/internal/domain/filter"
	"github.com/albrtaraya/facturas-api/internal/domain/paging"
	"github.com/albrtaraya/facturas-api/internal/domain/repository"
)

// ListInvoicesUseCase listado sin estado: recibe la selección de clientes
// y el filtro ya decodificados de la URL y devuelve una página de
// resultados con sus badges y los query params canónicos.
type ListInvoicesUseCase struct {
	repo repository.InvoiceRepository
}

// NewListInvoicesUseCase construye el caso de uso.
func NewListInvoicesUseCase(repo repository.InvoiceRepository) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{repo: repo}
}

// List trae las facturas de los clientes (en paralelo, fusionadas en orden
// de selección), aplica el filtro y pagina. customerIDs vacío es entrada
// inválida: el portal no lista facturas sin clientes seleccionados.
func (uc *ListInvoicesUseCase) List(ctx context.Context, customerIDs []string, spec filter.Spec, page, rowsPerPage int) (*dto.ListInvoicesResponse, error) {
	ids := dedupIDs(customerIDs)
	if len(ids) == 0 {
		return nil, domain.ErrInvalidInput
	}

	merged, err := fetchMerged(ctx, uc.repo, ids)
	if err != nil {
		return nil, err
	}

	filtered := filter.Apply(merged, spec)
	info := paging.Compute(len(filtered), page, rowsPerPage)

	return &dto.ListInvoicesResponse{
		Dataset: dto.NewInvoiceResponses(pageSlice(filtered, info)),
		Pagination: dto.PaginationResponse{
			Info:        info,
			CurrentPage: page,
			RowsPerPage: rowsPerPage,
			TotalItems:  len(filtered),
		},
		Filters:       spec,
		ActiveFilters: dto.NewActiveFilterResponses(spec),
		URLParams:     filter.EncodeQuery(spec),
	}, nil
}

// GetInvoice devuelve el detalle de una factura.
func (uc *ListInvoicesUseCase) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewInvoiceResponse(inv)
	return &resp, nil
}

// DatasetByCustomer devuelve las facturas de un cliente envueltas en
// {"dataset": [...]}; cliente sin facturas → ErrNoInvoices.
func (uc *ListInvoicesUseCase) DatasetByCustomer(ctx context.Context, customerID string) (*dto.DatasetResponse, error) {
	if customerID == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrNoInvoices
	}
	return &dto.DatasetResponse{Dataset: dto.NewInvoiceResponses(list)}, nil
}

// pageSlice recorta la colección filtrada a la ventana calculada,
// tolerando una página fuera de rango (ventana vacía).
func pageSlice(invoices []*entity.Invoice, info paging.Info) []*entity.Invoice {
	if info.StartIndex >= len(invoices) || info.StartIndex >= info.EndIndex {
		return nil
	}
	return invoices[info.StartIndex:info.EndIndex]
}

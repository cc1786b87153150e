package billing

import (
	"context"
	"sync"

	"github.com/albrtaraya/facturas-api/internal/domain"
	"github.com/albrtaraya/facturas-api/internal/domain/entity"
	"github.com/albrtaraya/facturas-api/internal/domain/filter"
	"github.com/albrtaraya/facturas-api/internal/domain/paging"
	"github.com/albrtaraya/facturas-api/internal/domain/repository"
)

// ViewState contenedor explícito del estado compartido del portal para
// una sesión: filtro vigente, página actual, clientes seleccionados y la
// colección de facturas ya fusionada. Se inyecta en la capa de vista en
// lugar de vivir como estado global ambiental.
//
// Los refetch llevan un número de generación: si la selección cambia más
// rápido que la latencia del fetch, solo el resultado de la última
// invocación se conserva y los resultados obsoletos se descartan.
type ViewState struct {
	repo repository.InvoiceRepository

	mu          sync.Mutex
	filters     filter.Spec
	page        int
	rowsPerPage int
	customers   []entity.Customer
	invoices    []*entity.Invoice
	fetchSeq    uint64
}

// NewViewState crea el contenedor con el filtro neutro y la primera página.
func NewViewState(repo repository.InvoiceRepository, rowsPerPage int) *ViewState {
	return &ViewState{
		repo:        repo,
		filters:     filter.Default(),
		page:        1,
		rowsPerPage: rowsPerPage,
	}
}

// AddCustomer agrega un cliente a la selección y refresca las facturas.
// Cliente ya seleccionado → no-op. Cliente sin facturas → ErrNoInvoices
// y la selección no cambia.
func (v *ViewState) AddCustomer(ctx context.Context, customerID string) error {
	if customerID == "" {
		return domain.ErrInvalidInput
	}
	v.mu.Lock()
	if v.selectedLocked(customerID) {
		v.mu.Unlock()
		return nil
	}
	v.mu.Unlock()

	// Fetch fuera del lock: puede tardar.
	list, err := v.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return domain.ErrNoInvoices
	}

	v.mu.Lock()
	if v.selectedLocked(customerID) {
		// Otra llamada lo agregó durante el fetch.
		v.mu.Unlock()
		return nil
	}
	v.customers = append(v.customers, entity.Customer{ID: customerID, Name: list[0].CustomerName})
	ids, seq := v.beginRefetchLocked()
	v.mu.Unlock()

	return v.refetch(ctx, ids, seq)
}

// RemoveCustomer quita un cliente de la selección. Si queda vacía, las
// facturas se limpian sin tocar el repositorio; si no, se refrescan.
func (v *ViewState) RemoveCustomer(ctx context.Context, customerID string) error {
	v.mu.Lock()
	kept := v.customers[:0:0]
	for _, c := range v.customers {
		if c.ID != customerID {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(v.customers) {
		v.mu.Unlock()
		return nil
	}
	v.customers = kept
	if len(kept) == 0 {
		v.invoices = nil
		v.fetchSeq++ // invalida fetches en vuelo
		v.mu.Unlock()
		return nil
	}
	ids, seq := v.beginRefetchLocked()
	v.mu.Unlock()

	return v.refetch(ctx, ids, seq)
}

// SetFilters reemplaza el filtro y vuelve a la primera página.
func (v *ViewState) SetFilters(spec filter.Spec) {
	v.mu.Lock()
	v.filters = spec
	v.page = 1
	v.mu.Unlock()
}

// SetPage cambia la página actual (1-based).
func (v *ViewState) SetPage(page int) error {
	if page < 1 {
		return domain.ErrInvalidInput
	}
	v.mu.Lock()
	v.page = page
	v.mu.Unlock()
	return nil
}

// Filters devuelve el filtro vigente.
func (v *ViewState) Filters() filter.Spec {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filters
}

// Page devuelve la página actual.
func (v *ViewState) Page() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}

// Customers devuelve una copia de la selección en orden de inserción.
func (v *ViewState) Customers() []entity.Customer {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]entity.Customer, len(v.customers))
	copy(out, v.customers)
	return out
}

// View página filtrada del estado actual de la sesión.
type View struct {
	Invoices    []*entity.Invoice
	Filters     filter.Spec
	Pagination  paging.Info
	CurrentPage int
	RowsPerPage int
	TotalItems  int
}

// CurrentView aplica el filtro vigente sobre la colección fusionada y
// recorta la página actual.
func (v *ViewState) CurrentView() View {
	v.mu.Lock()
	invoices := v.invoices
	spec := v.filters
	page := v.page
	rows := v.rowsPerPage
	v.mu.Unlock()

	filtered := filter.Apply(invoices, spec)
	info := paging.Compute(len(filtered), page, rows)
	return View{
		Invoices:    pageSlice(filtered, info),
		Filters:     spec,
		Pagination:  info,
		CurrentPage: page,
		RowsPerPage: rows,
		TotalItems:  len(filtered),
	}
}

// selectedLocked requiere v.mu tomado.
func (v *ViewState) selectedLocked(customerID string) bool {
	for _, c := range v.customers {
		if c.ID == customerID {
			return true
		}
	}
	return false
}

// beginRefetchLocked toma una nueva generación de fetch y la selección
// vigente. Requiere v.mu tomado.
func (v *ViewState) beginRefetchLocked() ([]string, uint64) {
	v.fetchSeq++
	ids := make([]string, 0, len(v.customers))
	for _, c := range v.customers {
		ids = append(ids, c.ID)
	}
	return ids, v.fetchSeq
}

// refetch trae y fusiona las facturas de la selección; el resultado solo
// se aplica si ninguna otra modificación tomó una generación más nueva
// mientras tanto (última escritura gana).
func (v *ViewState) refetch(ctx context.Context, customerIDs []string, seq uint64) error {
	merged, err := fetchMerged(ctx, v.repo, customerIDs)
	if err != nil {
		return err
	}
	v.mu.Lock()
	if seq == v.fetchSeq {
		v.invoices = merged
	}
	v.mu.Unlock()
	return nil
}

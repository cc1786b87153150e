package http

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/albrtaraya/facturas-api/internal/application/billing"
	"github.com/albrtaraya/facturas-api/internal/application/dto"
	"github.com/albrtaraya/facturas-api/internal/domain"
	"github.com/albrtaraya/facturas-api/internal/domain/filter"
)

// SessionHandler maneja el estado de vista del portal: una sesión por
// montaje de la app, con filtros, página y clientes seleccionados.
type SessionHandler struct {
	store *billing.SessionStore
}

// NewSessionHandler construye el handler.
func NewSessionHandler(store *billing.SessionStore) *SessionHandler {
	return &SessionHandler{store: store}
}

// Create POST /api/sessions
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	id, _ := h.store.Create()
	return c.Status(fiber.StatusCreated).JSON(dto.CreateSessionResponse{SessionID: id})
}

// Get GET /api/sessions/:id
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	state, err := h.store.Get(id)
	if err != nil {
		return sessionNotFound(c)
	}
	return c.JSON(sessionResponse(id, state))
}

// Delete DELETE /api/sessions/:id (cierre del portal).
func (h *SessionHandler) Delete(c *fiber.Ctx) error {
	h.store.Delete(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateFilters PUT /api/sessions/:id/filters — reemplaza el filtro
// completo y vuelve a la primera página.
func (h *SessionHandler) UpdateFilters(c *fiber.Ctx) error {
	id := c.Params("id")
	state, err := h.store.Get(id)
	if err != nil {
		return sessionNotFound(c)
	}
	var in dto.UpdateFiltersRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	state.SetFilters(in.Spec())
	return c.JSON(sessionResponse(id, state))
}

// SetPage PUT /api/sessions/:id/page
func (h *SessionHandler) SetPage(c *fiber.Ctx) error {
	id := c.Params("id")
	state, err := h.store.Get(id)
	if err != nil {
		return sessionNotFound(c)
	}
	var in dto.SetPageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "page debe ser >= 1"})
	}
	if err := state.SetPage(in.Page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "page debe ser >= 1"})
	}
	return c.JSON(sessionResponse(id, state))
}

// AddCustomer POST /api/sessions/:id/customers — agrega un cliente a la
// selección y refresca las facturas; agregar uno ya seleccionado es no-op.
func (h *SessionHandler) AddCustomer(c *fiber.Ctx) error {
	id := c.Params("id")
	state, err := h.store.Get(id)
	if err != nil {
		return sessionNotFound(c)
	}
	var in dto.AddCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customerId es requerido"})
	}
	if err := state.AddCustomer(c.Context(), in.CustomerID); err != nil {
		if errors.Is(err, domain.ErrNoInvoices) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNoInvoices.Error()})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customerId es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(sessionResponse(id, state))
}

// RemoveCustomer DELETE /api/sessions/:id/customers/:customerId
func (h *SessionHandler) RemoveCustomer(c *fiber.Ctx) error {
	id := c.Params("id")
	state, err := h.store.Get(id)
	if err != nil {
		return sessionNotFound(c)
	}
	if err := state.RemoveCustomer(c.Context(), c.Params("customerId")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(sessionResponse(id, state))
}

// Invoices GET /api/sessions/:id/invoices — página filtrada actual.
func (h *SessionHandler) Invoices(c *fiber.Ctx) error {
	state, err := h.store.Get(c.Params("id"))
	if err != nil {
		return sessionNotFound(c)
	}
	view := state.CurrentView()
	return c.JSON(dto.ListInvoicesResponse{
		Dataset: dto.NewInvoiceResponses(view.Invoices),
		Pagination: dto.PaginationResponse{
			Info:        view.Pagination,
			CurrentPage: view.CurrentPage,
			RowsPerPage: view.RowsPerPage,
			TotalItems:  view.TotalItems,
		},
		Filters:       view.Filters,
		ActiveFilters: dto.NewActiveFilterResponses(view.Filters),
		URLParams:     filter.EncodeQuery(view.Filters),
	})
}

func sessionNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "SESSION_NOT_FOUND", Message: domain.ErrSessionNotFound.Error()})
}

// sessionResponse arma el snapshot visible de la sesión, incluido lo que
// el front debe escribir en la barra de direcciones (urlQuery) sin crear
// una entrada de historial.
func sessionResponse(id string, state *billing.ViewState) dto.SessionResponse {
	filters := state.Filters()
	customers := state.Customers()

	q := make(url.Values)
	filter.WriteQuery(filters, q)
	if len(customers) > 0 {
		ids := make([]string, 0, len(customers))
		for _, cu := range customers {
			ids = append(ids, cu.ID)
		}
		q.Set(filter.KeyCustomers, filter.EncodeCustomerIDs(ids))
	}

	return dto.SessionResponse{
		SessionID: id,
		Filters:   filters,
		Page:      state.Page(),
		Customers: customers,
		URLParams: filter.EncodeQuery(filters),
		URLQuery:  q.Encode(),
	}
}

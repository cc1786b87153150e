package dto

import (
	"github.com/albrtaraya/facturas-api/internal/domain/entity"
	"github.com/albrtaraya/facturas-api/internal/domain/filter"
)

// CreateSessionResponse id de la sesión recién creada (montaje del portal).
type CreateSessionResponse struct {
	SessionID string `json:"sessionId"`
}

// SessionResponse estado visible de una sesión del portal.
type SessionResponse struct {
	SessionID string             `json:"sessionId"`
	Filters   filter.Spec        `json:"filters"`
	Page      int                `json:"page"`
	Customers []entity.Customer  `json:"customers"`
	URLParams map[string]*string `json:"urlParams"`
	URLQuery  string             `json:"urlQuery"`
}

// UpdateFiltersRequest reemplaza el filtro completo de la sesión. Los
// valores no se validan en el servidor: un estado desconocido o un monto
// ilegible degradan según las reglas del motor de filtrado.
type UpdateFiltersRequest struct {
	Status    string `json:"status"`
	MinAmount string `json:"minAmount"`
	MaxAmount string `json:"maxAmount"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Spec traduce la petición al Spec del dominio; status vacío equivale al
// neutro "all".
func (r UpdateFiltersRequest) Spec() filter.Spec {
	s := filter.Spec{
		Status:    r.Status,
		MinAmount: r.MinAmount,
		MaxAmount: r.MaxAmount,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
	if s.Status == "" {
		s.Status = filter.StatusAll
	}
	return s
}

// AddCustomerRequest agrega un cliente a la selección de la sesión.
type AddCustomerRequest struct {
	CustomerID string `json:"customerId" validate:"required"`
}

// SetPageRequest cambia la página actual de la sesión.
type SetPageRequest struct {
	Page int `json:"page" validate:"required,min=1"`
}

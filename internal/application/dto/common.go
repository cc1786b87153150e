package dto

// PageRequest paginación 1-based del portal (query params del listado).
type PageRequest struct {
	Page        int `query:"page" validate:"omitempty,min=1"`
	RowsPerPage int `query:"rowsPerPage" validate:"omitempty,min=1,max=100"`
}

// DefaultPage aplica los valores por defecto si los campos vienen en cero.
func (p *PageRequest) DefaultPage(defaultRows int) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.RowsPerPage <= 0 {
		p.RowsPerPage = defaultRows
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

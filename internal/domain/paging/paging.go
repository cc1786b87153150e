// Package paging calcula la ventana de paginación de un listado.
// Aritmética pura, sin estado; se recalcula en cada llamada.
package paging

// Info metadatos de una página del listado. StartIndex/EndIndex delimitan
// el slice a mostrar: [StartIndex, EndIndex).
type Info struct {
	TotalPages      int  `json:"totalPages"`
	StartIndex      int  `json:"startIndex"`
	EndIndex        int  `json:"endIndex"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// Compute deriva la ventana de paginación. currentPage es 1-based y el
// caller debe pedirla dentro de [1, max(totalPages,1)]; StartIndex no se
// recorta contra totalItems. totalItems=0 es un estado válido: todo en
// cero y ambos flags en false.
func Compute(totalItems, currentPage, rowsPerPage int) Info {
	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + rowsPerPage - 1) / rowsPerPage
	}
	startIndex := (currentPage - 1) * rowsPerPage
	endIndex := startIndex + rowsPerPage
	if endIndex > totalItems {
		endIndex = totalItems
	}
	return Info{
		TotalPages:      totalPages,
		StartIndex:      startIndex,
		EndIndex:        endIndex,
		HasNextPage:     currentPage < totalPages,
		HasPreviousPage: currentPage > 1,
	}
}

package paging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/albrtaraya/facturas-api/internal/domain/paging"
)

func TestCompute(t *testing.T) {
	cases := []struct {
		name        string
		totalItems  int
		currentPage int
		rowsPerPage int
		want        paging.Info
	}{
		{
			name: "primera página de 20 items a 6 por página",
			totalItems: 20, currentPage: 1, rowsPerPage: 6,
			want: paging.Info{TotalPages: 4, StartIndex: 0, EndIndex: 6, HasNextPage: true, HasPreviousPage: false},
		},
		{
			name: "última página parcial",
			totalItems: 20, currentPage: 4, rowsPerPage: 6,
			want: paging.Info{TotalPages: 4, StartIndex: 18, EndIndex: 20, HasNextPage: false, HasPreviousPage: true},
		},
		{
			name: "página intermedia",
			totalItems: 20, currentPage: 2, rowsPerPage: 6,
			want: paging.Info{TotalPages: 4, StartIndex: 6, EndIndex: 12, HasNextPage: true, HasPreviousPage: true},
		},
		{
			name: "sin items: todo en cero y sin navegación",
			totalItems: 0, currentPage: 1, rowsPerPage: 6,
			want: paging.Info{TotalPages: 0, StartIndex: 0, EndIndex: 0, HasNextPage: false, HasPreviousPage: false},
		},
		{
			name: "división exacta",
			totalItems: 12, currentPage: 2, rowsPerPage: 6,
			want: paging.Info{TotalPages: 2, StartIndex: 6, EndIndex: 12, HasNextPage: false, HasPreviousPage: true},
		},
		{
			name: "una sola página incompleta",
			totalItems: 4, currentPage: 1, rowsPerPage: 6,
			want: paging.Info{TotalPages: 1, StartIndex: 0, EndIndex: 4, HasNextPage: false, HasPreviousPage: false},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, paging.Compute(tc.totalItems, tc.currentPage, tc.rowsPerPage))
		})
	}
}

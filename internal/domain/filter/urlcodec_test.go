package filter_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albrtaraya/facturas-api/internal/domain/filter"
)

// ──────────────────────────────────────────────────────────────────────────────
// DecodeQuery
// ──────────────────────────────────────────────────────────────────────────────

// Sin ninguna de las cinco claves la URL no trae estado de filtros.
func TestDecodeQuery_SinClavesDevuelveAusente(t *testing.T) {
	q := url.Values{}
	q.Set("customers", "123") // parámetro ajeno al filtro

	_, ok := filter.DecodeQuery(q)
	assert.False(t, ok)
}

// Una clave presente pero vacía sí cuenta como presente: el resultado
// existe y el campo toma su valor por defecto.
func TestDecodeQuery_ClavePresentePeroVacia(t *testing.T) {
	q, err := url.ParseQuery("status=")
	require.NoError(t, err)

	spec, ok := filter.DecodeQuery(q)
	require.True(t, ok)
	assert.Equal(t, filter.Default(), spec)
}

// Las claves ausentes toman el valor por defecto del campo.
func TestDecodeQuery_Parcial(t *testing.T) {
	q, err := url.ParseQuery("minAmount=100&endDate=2024-12-31")
	require.NoError(t, err)

	spec, ok := filter.DecodeQuery(q)
	require.True(t, ok)
	assert.Equal(t, filter.Spec{
		Status:    filter.StatusAll,
		MinAmount: "100",
		EndDate:   "2024-12-31",
	}, spec)
}

func TestDecodeQuery_Completo(t *testing.T) {
	q, err := url.ParseQuery("status=overdue&minAmount=50&maxAmount=300&startDate=2024-01-01&endDate=2024-06-30")
	require.NoError(t, err)

	spec, ok := filter.DecodeQuery(q)
	require.True(t, ok)
	assert.Equal(t, filter.Spec{
		Status:    "overdue",
		MinAmount: "50",
		MaxAmount: "300",
		StartDate: "2024-01-01",
		EndDate:   "2024-06-30",
	}, spec)
}

// ──────────────────────────────────────────────────────────────────────────────
// EncodeQuery / WriteQuery
// ──────────────────────────────────────────────────────────────────────────────

// Siempre salen las cinco claves; las neutras con nil ("eliminar el
// parámetro") y las activas con su valor literal.
func TestEncodeQuery_CincoClavesSiempre(t *testing.T) {
	params := filter.EncodeQuery(filter.Default())
	require.Len(t, params, 5)
	for key, v := range params {
		assert.Nil(t, v, "la clave %s debe ser nil con el filtro neutro", key)
	}

	spec := filter.Spec{Status: "paid", MaxAmount: "500"}
	params = filter.EncodeQuery(spec)
	require.Len(t, params, 5)
	require.NotNil(t, params["status"])
	assert.Equal(t, "paid", *params["status"])
	require.NotNil(t, params["maxAmount"])
	assert.Equal(t, "500", *params["maxAmount"])
	assert.Nil(t, params["minAmount"])
	assert.Nil(t, params["startDate"])
	assert.Nil(t, params["endDate"])
}

// WriteQuery limpia las claves neutras y respeta los parámetros ajenos.
func TestWriteQuery_LimpiaNeutrasYConservaAjenos(t *testing.T) {
	q, err := url.ParseQuery("status=paid&minAmount=100&customers=1001,1002&page=2")
	require.NoError(t, err)

	spec := filter.Spec{Status: filter.StatusAll, MaxAmount: "300"}
	filter.WriteQuery(spec, q)

	assert.False(t, q.Has("status"), "status=all elimina el parámetro")
	assert.False(t, q.Has("minAmount"))
	assert.Equal(t, "300", q.Get("maxAmount"))
	assert.Equal(t, "1001,1002", q.Get("customers"), "los parámetros ajenos no se tocan")
	assert.Equal(t, "2", q.Get("page"))
}

// Ciclo URL → Spec → URL: con al menos un campo activo el filtro se
// reconstruye exacto; los campos neutros vuelven a su valor por defecto.
func TestRoundTrip_EncodeDecode(t *testing.T) {
	specs := []filter.Spec{
		{Status: "pending", MinAmount: "", MaxAmount: "", StartDate: "", EndDate: ""},
		{Status: filter.StatusAll, MinAmount: "100", MaxAmount: "400"},
		{Status: "overdue", MinAmount: "50.25", MaxAmount: "900", StartDate: "2024-01-01", EndDate: "2024-12-31"},
		{Status: filter.StatusAll, EndDate: "2024-12-31"},
	}

	for _, original := range specs {
		q := make(url.Values)
		filter.WriteQuery(original, q)
		decoded, ok := filter.DecodeQuery(q)

		require.True(t, ok, "con un campo activo la URL trae estado: %+v", original)
		// Normalizar el status neutro para comparar
		want := original
		if want.Status == "" {
			want.Status = filter.StatusAll
		}
		assert.Equal(t, want, decoded)
	}
}

// Con el filtro neutro no queda ninguna clave en la URL y el decode
// devuelve ausente.
func TestRoundTrip_FiltroNeutroDesaparece(t *testing.T) {
	q := make(url.Values)
	filter.WriteQuery(filter.Default(), q)

	assert.Empty(t, q)
	_, ok := filter.DecodeQuery(q)
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// DecodeCustomerIDs
// ──────────────────────────────────────────────────────────────────────────────

func TestDecodeCustomerIDs(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"un id", "customers=123", []string{"123"}},
		{"varios ids en orden", "customers=3,1,2", []string{"3", "1", "2"}},
		{"segmentos vacíos se descartan", "customers=1,,2,", []string{"1", "2"}},
		{"duplicados se conservan", "customers=1,2,1", []string{"1", "2", "1"}},
		{"clave ausente", "", []string{}},
		{"valor vacío", "customers=", []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := url.ParseQuery(tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.want, filter.DecodeCustomerIDs(q))
		})
	}
}

func TestEncodeCustomerIDs(t *testing.T) {
	assert.Equal(t, "1001,1002", filter.EncodeCustomerIDs([]string{"1001", "1002"}))
	assert.Equal(t, "", filter.EncodeCustomerIDs(nil))
}

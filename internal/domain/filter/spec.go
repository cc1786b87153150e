// Package filter implementa el núcleo puro del portal de facturas: el
// filtrado de la colección en memoria, las entradas activas para los
// badges y el códec filtro ↔ query params de la URL.
//
// Todas las funciones son puras y sin estado compartido; pueden llamarse
// concurrentemente sin coordinación.
package filter

// Claves canónicas de los campos del filtro (coinciden con los query
// params de la URL, sensibles a mayúsculas). El orden de fieldOrder
// define el orden de los badges y de ActiveEntries.
const (
	KeyStatus    = "status"
	KeyMinAmount = "minAmount"
	KeyMaxAmount = "maxAmount"
	KeyStartDate = "startDate"
	KeyEndDate   = "endDate"
)

// StatusAll valor neutro del campo status ("sin filtro de estado").
const StatusAll = "all"

var fieldOrder = [...]string{KeyStatus, KeyMinAmount, KeyMaxAmount, KeyStartDate, KeyEndDate}

// Spec representa una petición de filtrado. Todos los campos son strings
// tal como llegan de la UI o de la URL: los montos son decimales en texto
// y las fechas ISO YYYY-MM-DD (su orden lexicográfico es cronológico).
// El valor neutro es "" salvo para Status, que usa "all".
type Spec struct {
	Status    string `json:"status"`
	MinAmount string `json:"minAmount"`
	MaxAmount string `json:"maxAmount"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Default devuelve el filtro neutro: con él Apply es la identidad.
func Default() Spec {
	return Spec{Status: StatusAll}
}

// value devuelve el valor del campo key; cadena vacía si la clave no es
// un campo del filtro.
func (s Spec) value(key string) string {
	switch key {
	case KeyStatus:
		return s.Status
	case KeyMinAmount:
		return s.MinAmount
	case KeyMaxAmount:
		return s.MaxAmount
	case KeyStartDate:
		return s.StartDate
	case KeyEndDate:
		return s.EndDate
	}
	return ""
}

// active decide si un campo cuenta como filtro activo: valor no vacío y,
// para status, distinto de "all".
func active(key, value string) bool {
	if value == "" {
		return false
	}
	if key == KeyStatus && value == StatusAll {
		return false
	}
	return true
}

// IsDefault informa si el Spec no tiene ningún campo activo.
func (s Spec) IsDefault() bool {
	for _, key := range fieldOrder {
		if active(key, s.value(key)) {
			return false
		}
	}
	return true
}

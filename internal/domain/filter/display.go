package filter

// StatusLabels etiquetas en español de los estados conocidos. Conjunto
// cerrado: un estado nuevo del backend requiere agregar su entrada aquí;
// mientras tanto el valor crudo se muestra tal cual.
var StatusLabels = map[string]string{
	"paid":    "Pagado",
	"pending": "Pendiente",
	"overdue": "Vencido",
}

// FieldLabels etiquetas de los campos del filtro para los badges.
var FieldLabels = map[string]string{
	KeyStatus:    "Estado",
	KeyMinAmount: "Monto min",
	KeyMaxAmount: "Monto max",
	KeyStartDate: "Desde",
	KeyEndDate:   "Hasta",
}

// currencyPrefix marcador de moneda (bolivianos) para los montos.
const currencyPrefix = "Bs. "

// DisplayValue devuelve la representación legible de un valor de filtro:
// estados con su etiqueta en español (o el valor crudo si no hay), montos
// con el prefijo de moneda, fechas sin cambios (ya son ISO).
func DisplayValue(key, value string) string {
	switch key {
	case KeyStatus:
		if label, ok := StatusLabels[value]; ok {
			return label
		}
		return value
	case KeyMinAmount, KeyMaxAmount:
		return currencyPrefix + value
	}
	return value
}

// Label devuelve la etiqueta del campo, o la clave misma si no es un
// campo conocido.
func Label(key string) string {
	if label, ok := FieldLabels[key]; ok {
		return label
	}
	return key
}

// Entry par (campo, valor) de un filtro activo.
type Entry struct {
	Key   string
	Value string
}

// ActiveEntries devuelve los filtros activos del Spec en el orden
// canónico de campos (estable: el orden de los badges depende de él).
func ActiveEntries(s Spec) []Entry {
	entries := make([]Entry, 0, len(fieldOrder))
	for _, key := range fieldOrder {
		if v := s.value(key); active(key, v) {
			entries = append(entries, Entry{Key: key, Value: v})
		}
	}
	return entries
}

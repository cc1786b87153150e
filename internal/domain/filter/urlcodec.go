package filter

import (
	"net/url"
	"strings"
)

// KeyCustomers query param con la lista de clientes seleccionados
// (ids unidos por coma, los ids no contienen comas).
const KeyCustomers = "customers"

// DecodeQuery reconstruye un Spec desde los query params de la URL.
// ok=false cuando ninguna de las cinco claves está presente: la URL no
// trae estado de filtros y el caller debe conservar el suyo en memoria.
// Una clave presente pero vacía sí cuenta como presente y el campo toma
// su valor por defecto.
func DecodeQuery(q url.Values) (Spec, bool) {
	present := false
	for _, key := range fieldOrder {
		if q.Has(key) {
			present = true
			break
		}
	}
	if !present {
		return Spec{}, false
	}
	s := Default()
	if v := q.Get(KeyStatus); v != "" {
		s.Status = v
	}
	s.MinAmount = q.Get(KeyMinAmount)
	s.MaxAmount = q.Get(KeyMaxAmount)
	s.StartDate = q.Get(KeyStartDate)
	s.EndDate = q.Get(KeyEndDate)
	return s, true
}

// EncodeQuery traduce el Spec al mapa de query params que debe escribir
// el colaborador de la URL. Siempre contiene las cinco claves: nil
// significa "eliminar el parámetro" (campo en su valor neutro) y un
// string "fijarlo a ese valor".
func EncodeQuery(s Spec) map[string]*string {
	params := make(map[string]*string, len(fieldOrder))
	for _, key := range fieldOrder {
		if v := s.value(key); active(key, v) {
			v := v
			params[key] = &v
		} else {
			params[key] = nil
		}
	}
	return params
}

// WriteQuery aplica EncodeQuery sobre unos url.Values: elimina las claves
// neutras y fija las activas. Deja intactos los parámetros ajenos al
// filtro (customers, page, ...).
func WriteQuery(s Spec, q url.Values) {
	for key, v := range EncodeQuery(s) {
		if v == nil {
			q.Del(key)
		} else {
			q.Set(key, *v)
		}
	}
}

// DecodeCustomerIDs lee la lista de clientes seleccionados de la URL.
// Parámetro ausente o vacío → lista vacía. Conserva orden y duplicados:
// deduplicar es responsabilidad del caller que mantiene la selección.
func DecodeCustomerIDs(q url.Values) []string {
	raw := q.Get(KeyCustomers)
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, id := range parts {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// EncodeCustomerIDs inverso de DecodeCustomerIDs.
func EncodeCustomerIDs(ids []string) string {
	return strings.Join(ids, ",")
}

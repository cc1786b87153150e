package entity

// Customer representa un cliente seleccionado en el portal. El nombre se
// obtiene de sus facturas; el portal no administra clientes.
type Customer struct {
	ID   string `json:"customerId"`
	Name string `json:"name"`
}

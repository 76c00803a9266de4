package domain

// Location é a entidade de referência resolvida no catálogo externo de localizações.
// Não é mantida por este serviço: cada operação trabalha com um snapshot.
type Location struct {
	Identification        string `json:"identification" yaml:"identification"`
	MaxNumberOfWarehouses int    `json:"max_number_of_warehouses" yaml:"maxNumberOfWarehouses"`
	MaxCapacity           int    `json:"max_capacity" yaml:"maxCapacity"`
}

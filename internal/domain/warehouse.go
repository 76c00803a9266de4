package domain

import (
	"time"
)

// Warehouse representa uma unidade de armazém da rede de fulfilment.
// Uma unidade é ativa enquanto ArchivedAt for nil; para um mesmo BusinessUnitCode
// existe no máximo uma unidade ativa.
type Warehouse struct {
	ID               int64      `json:"id"` // Atribuído pelo Store na criação (0 = ausente)
	BusinessUnitCode string     `json:"business_unit_code"`
	Location         string     `json:"location"`
	Capacity         *int       `json:"capacity"` // nil = não informado
	Stock            *int       `json:"stock"`
	CreatedAt        time.Time  `json:"created_at"`
	ArchivedAt       *time.Time `json:"archived_at,omitempty"`
}

// HasID indica se a unidade já foi persistida.
func (w *Warehouse) HasID() bool {
	return w.ID > 0
}

// IsActive indica se a unidade não foi arquivada.
func (w *Warehouse) IsActive() bool {
	return w.ArchivedAt == nil
}

// CapacityOrZero retorna a capacidade, tratando ausência como 0.
func (w *Warehouse) CapacityOrZero() int {
	if w.Capacity == nil {
		return 0
	}
	return *w.Capacity
}

// StockOrZero retorna o estoque, tratando ausência como 0.
func (w *Warehouse) StockOrZero() int {
	if w.Stock == nil {
		return 0
	}
	return *w.Stock
}

// Clone devolve uma cópia independente (ponteiros inclusos).
func (w Warehouse) Clone() Warehouse {
	if w.Capacity != nil {
		c := *w.Capacity
		w.Capacity = &c
	}
	if w.Stock != nil {
		s := *w.Stock
		w.Stock = &s
	}
	if w.ArchivedAt != nil {
		a := *w.ArchivedAt
		w.ArchivedAt = &a
	}
	return w
}

// IntPtr é um atalho para construir os campos opcionais de Warehouse.
func IntPtr(v int) *int {
	return &v
}

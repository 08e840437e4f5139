package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto vendible del salón.
// CurrentStock solo lo muta el motor de inventario (movimientos); nunca se
// asigna desde un update genérico. Cuando llega a 0 el producto se marca
// inactivo y descontinuado, y esa transición no se revierte automáticamente.
type Product struct {
	ID             string
	Name           string
	Description    string
	SellingPrice   decimal.Decimal
	CostPrice      decimal.Decimal
	Unit           string // ml, unidad, caja...
	CurrentStock   int64  // nunca negativo
	MinStockAlert  int64
	CategoryID     *string
	IsActive       bool
	IsDiscontinued bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LowStock indica si el stock actual está en o bajo el umbral de alerta.
func (p *Product) LowStock() bool {
	return p.CurrentStock <= p.MinStockAlert
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service es un servicio del catálogo (corte, manicure...).
// Duration en minutos; se usa para derivar EndTime de una cita.
type Service struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Duration    int // minutos, >= 1
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

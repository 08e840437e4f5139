package repository

import (
	"time"

	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
)

// MovementFilter filtros de listado del ledger.
type MovementFilter struct {
	ProductID string
	Type      string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// StockMovementRepository define el puerto del libro mayor de stock.
// Las entradas son inmutables; solo se borran en bloque por orden
// (update/delete de la orden que las generó).
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	List(filter MovementFilter) ([]*entity.StockMovement, int, error)
	ListByOrder(orderID string) ([]*entity.StockMovement, error)
	DeleteByOrder(orderID string) error
}

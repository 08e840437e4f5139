package repository

import (
	"time"

	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
)

// OrderFilter filtros de listado de órdenes.
type OrderFilter struct {
	CustomerID string
	Status     string
	Search     string // por nombre/teléfono de cliente
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// OrderRepository define el puerto de persistencia para Order.
// Las líneas (order_items) son propiedad exclusiva de la orden: se insertan
// y borran junto con ella, nunca por separado.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	Update(order *entity.Order) error
	UpdateStatus(id, status string) error
	UpdateImages(id string, images []string) error
	List(filter OrderFilter) ([]*entity.Order, int, error)
	Delete(id string) error
	ListByCustomer(customerID string, limit int) ([]*entity.Order, error)
}

package repository

import "github.com/tu-usuario/beautybook-api/internal/domain/entity"

// ProductFilter filtros de listado de productos.
type ProductFilter struct {
	IsActive *bool
	LowStock bool // currentStock <= minStockAlert
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) dentro de la transacción
// vigente; UpdateStock es la única vía de escritura de CurrentStock.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, currentStock int64, isActive, isDiscontinued bool) error
	List(filter ProductFilter) ([]*entity.Product, error)
	Delete(id string) error
}

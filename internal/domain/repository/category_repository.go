package repository

import "github.com/tu-usuario/beautybook-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
// CountProducts soporta el bloqueo de borrado de categorías en uso.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	List() ([]*entity.Category, error)
	CountProducts(categoryID string) (int, error)
	Delete(id string) error
}

package repository

import "github.com/tu-usuario/beautybook-api/internal/domain/entity"

// ServiceRepository define el puerto de persistencia para Service.
type ServiceRepository interface {
	Create(service *entity.Service) error
	GetByID(id string) (*entity.Service, error)
	Update(service *entity.Service) error
	List(isActive *bool) ([]*entity.Service, error)
	Delete(id string) error
}

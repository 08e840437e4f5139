package repository

import "github.com/tu-usuario/beautybook-api/internal/domain/entity"

// CustomerFilter filtros de listado de clientes.
type CustomerFilter struct {
	Search string // nombre, teléfono o email
	Limit  int
	Offset int
}

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByPhone(phone string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	List(filter CustomerFilter) ([]*entity.Customer, int, error)
	ListByBirthMonth(month int) ([]*entity.Customer, error)
	Delete(id string) error
}

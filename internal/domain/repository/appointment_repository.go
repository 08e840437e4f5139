package repository

import (
	"time"

	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
)

// AppointmentFilter filtros de listado de citas.
type AppointmentFilter struct {
	CustomerID string
	Status     string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// AppointmentRepository define el puerto de persistencia para Appointment.
// ExistsOverlapping evalúa el solape semiabierto (start < candidatoFin AND
// end > candidatoInicio) sobre citas no canceladas, excluyendo opcionalmente
// una cita por id (la que se está actualizando).
type AppointmentRepository interface {
	Create(appointment *entity.Appointment) error
	GetByID(id string) (*entity.Appointment, error)
	Update(appointment *entity.Appointment) error
	SetOrderLink(id string, orderID *string, status string) error
	ExistsOverlapping(start, end time.Time, excludeID string) (bool, error)
	List(filter AppointmentFilter) ([]*entity.Appointment, int, error)
	ListRange(from, to time.Time) ([]*entity.Appointment, error)
	ListByCustomer(customerID string, limit int) ([]*entity.Appointment, error)
	Delete(id string) error
}

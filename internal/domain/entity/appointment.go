package entity

import "time"

// Estados de una cita.
const (
	AppointmentStatusBooked    = "booked"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusCompleted = "completed"
)

// Appointment es una cita de servicio con intervalo semiabierto [StartTime, EndTime).
// Dos citas no canceladas no pueden solaparse (restricción global del salón).
type Appointment struct {
	ID         string
	CustomerID string
	ServiceID  string
	StartTime  time.Time
	EndTime    time.Time
	Status     string
	Notes      string
	OrderID    *string
	CreatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

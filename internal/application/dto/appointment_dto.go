package dto

import "time"

// CreateAppointmentRequest alta de cita. Si EndTime es nil se deriva de la
// duración del servicio.
type CreateAppointmentRequest struct {
	Customer  string     `json:"customer"`
	Service   string     `json:"service"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Notes     string     `json:"notes"`
}

// UpdateAppointmentRequest edición parcial de cita.
type UpdateAppointmentRequest struct {
	Customer  *string    `json:"customer"`
	Service   *string    `json:"service"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Status    *string    `json:"status"`
	Notes     *string    `json:"notes"`
}

// AppointmentResponse cita serializada.
type AppointmentResponse struct {
	ID           string     `json:"id"`
	CustomerID   string     `json:"customer"`
	CustomerName string     `json:"customerName,omitempty"`
	ServiceID    string     `json:"service"`
	ServiceName  string     `json:"serviceName,omitempty"`
	StartTime    time.Time  `json:"startTime"`
	EndTime      time.Time  `json:"endTime"`
	Status       string     `json:"status"`
	Notes        string     `json:"notes,omitempty"`
	OrderID      *string    `json:"orderId,omitempty"`
	CreatedBy    string     `json:"createdBy"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// AppointmentListResponse página de citas.
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Pagination   Pagination            `json:"pagination"`
}

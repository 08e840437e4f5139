package dto

import "time"

// CreateCustomerRequest alta de cliente.
type CreateCustomerRequest struct {
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	LineID      string     `json:"lineId"`
	Gender      string     `json:"gender"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Notes       string     `json:"notes"`
}

// UpdateCustomerRequest edición parcial de cliente.
type UpdateCustomerRequest struct {
	Name        *string    `json:"name"`
	Phone       *string    `json:"phone"`
	Email       *string    `json:"email"`
	LineID      *string    `json:"lineId"`
	Gender      *string    `json:"gender"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Notes       *string    `json:"notes"`
}

// CustomerResponse cliente serializado.
type CustomerResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email,omitempty"`
	LineID      string     `json:"lineId,omitempty"`
	Gender      string     `json:"gender"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CustomerHistoryResponse historial combinado del cliente.
type CustomerHistoryResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Orders       []OrderResponse       `json:"orders"`
}

package dto

import "time"

// CreateReminderRequest alta de recordatorio.
type CreateReminderRequest struct {
	Customer     string    `json:"customer"`
	ReminderDate time.Time `json:"reminderDate"`
	Content      string    `json:"content"`
	OrderID      *string   `json:"orderId"`
}

// UpdateReminderRequest edición parcial de recordatorio.
type UpdateReminderRequest struct {
	Customer     *string    `json:"customer"`
	ReminderDate *time.Time `json:"reminderDate"`
	Content      *string    `json:"content"`
	Status       *string    `json:"status"`
}

// ReminderResponse recordatorio serializado.
type ReminderResponse struct {
	ID           string     `json:"id"`
	CustomerID   string     `json:"customer"`
	CustomerName string     `json:"customerName,omitempty"`
	ReminderDate time.Time  `json:"reminderDate"`
	Content      string     `json:"content"`
	Status       string     `json:"status"`
	OrderID      *string    `json:"orderId,omitempty"`
	CreatedBy    string     `json:"createdBy"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// ReminderListResponse página de recordatorios.
type ReminderListResponse struct {
	Reminders  []ReminderResponse `json:"reminders"`
	Pagination Pagination         `json:"pagination"`
}

// TemplateRequest alta/edición de plantilla de recordatorio.
type TemplateRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsActive *bool  `json:"isActive"`
}

// TemplateResponse plantilla serializada.
type TemplateResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

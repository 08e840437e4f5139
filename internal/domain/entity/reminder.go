package entity

import "time"

// Estados de un recordatorio.
const (
	ReminderStatusPending   = "pending"
	ReminderStatusCompleted = "completed"
	ReminderStatusSkipped   = "skipped"
)

// Reminder es un recordatorio de seguimiento a un cliente, opcionalmente
// ligado a la orden que lo motivó.
type Reminder struct {
	ID           string
	CustomerID   string
	ReminderDate time.Time
	Content      string
	Status       string
	OrderID      *string
	CreatedBy    string
	CompletedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ReminderTemplate es un texto reutilizable para crear recordatorios.
type ReminderTemplate struct {
	ID        string
	Title     string
	Content   string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

package repository

import (
	"time"

	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
)

// ReminderFilter filtros de listado de recordatorios.
type ReminderFilter struct {
	CustomerID string
	Statuses   []string // vacío = todos
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// ReminderRepository define el puerto de persistencia para Reminder.
type ReminderRepository interface {
	Create(reminder *entity.Reminder) error
	GetByID(id string) (*entity.Reminder, error)
	Update(reminder *entity.Reminder) error
	List(filter ReminderFilter) ([]*entity.Reminder, int, error)
	Delete(id string) error
}

// ReminderTemplateRepository define el puerto para plantillas de recordatorio.
type ReminderTemplateRepository interface {
	Create(template *entity.ReminderTemplate) error
	GetByID(id string) (*entity.ReminderTemplate, error)
	Update(template *entity.ReminderTemplate) error
	List() ([]*entity.ReminderTemplate, error)
	Delete(id string) error
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

var _ repository.ReminderRepository = (*ReminderRepo)(nil)

const reminderColumns = `id, customer_id, reminder_date, content, status, order_id, created_by,
	completed_at, created_at, updated_at`

// ReminderRepo implementación del puerto ReminderRepository sobre PostgreSQL (usable con pool o tx).
type ReminderRepo struct {
	q Querier
}

// NewReminderRepository construye el adaptador de recordatorios. Pasar pool o tx (Querier).
func NewReminderRepository(q Querier) *ReminderRepo {
	return &ReminderRepo{q: q}
}

// Create persiste un recordatorio.
func (r *ReminderRepo) Create(reminder *entity.Reminder) error {
	query := `
		INSERT INTO reminders (id, customer_id, reminder_date, content, status, order_id, created_by,
			completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		reminder.ID, reminder.CustomerID, reminder.ReminderDate, reminder.Content, reminder.Status,
		reminder.OrderID, reminder.CreatedBy, reminder.CompletedAt, reminder.CreatedAt, reminder.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reminder: %w", err)
	}
	return nil
}

// GetByID obtiene un recordatorio por ID.
func (r *ReminderRepo) GetByID(id string) (*entity.Reminder, error) {
	var m entity.Reminder
	err := r.q.QueryRow(context.Background(),
		`SELECT `+reminderColumns+` FROM reminders WHERE id = $1`, id,
	).Scan(
		&m.ID, &m.CustomerID, &m.ReminderDate, &m.Content, &m.Status,
		&m.OrderID, &m.CreatedBy, &m.CompletedAt, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reminder: %w", err)
	}
	return &m, nil
}

// Update actualiza un recordatorio.
func (r *ReminderRepo) Update(reminder *entity.Reminder) error {
	query := `
		UPDATE reminders SET customer_id = $2, reminder_date = $3, content = $4, status = $5,
			completed_at = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		reminder.ID, reminder.CustomerID, reminder.ReminderDate, reminder.Content,
		reminder.Status, reminder.CompletedAt, reminder.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update reminder: %w", err)
	}
	return nil
}

// List lista recordatorios con filtros y total sin paginar.
func (r *ReminderRepo) List(filter repository.ReminderFilter) ([]*entity.Reminder, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		where += fmt.Sprintf(" AND customer_id = $%d", len(args))
	}
	if len(filter.Statuses) > 0 {
		args = append(args, filter.Statuses)
		where += fmt.Sprintf(" AND status = ANY($%d)", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		where += fmt.Sprintf(" AND reminder_date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where += fmt.Sprintf(" AND reminder_date < $%d", len(args))
	}

	var total int
	if err := r.q.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM reminders"+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reminders: %w", err)
	}

	query := `SELECT ` + reminderColumns + ` FROM reminders` + where + ` ORDER BY reminder_date ASC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reminders: %w", err)
	}
	defer rows.Close()

	var reminders []*entity.Reminder
	for rows.Next() {
		var m entity.Reminder
		if err := rows.Scan(
			&m.ID, &m.CustomerID, &m.ReminderDate, &m.Content, &m.Status,
			&m.OrderID, &m.CreatedBy, &m.CompletedAt, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan reminder: %w", err)
		}
		reminders = append(reminders, &m)
	}
	return reminders, total, rows.Err()
}

// Delete borra un recordatorio.
func (r *ReminderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM reminders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	return nil
}

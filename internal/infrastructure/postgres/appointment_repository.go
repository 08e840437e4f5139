package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

const appointmentColumns = `id, customer_id, service_id, start_time, end_time, status, notes,
	order_id, created_by, created_at, updated_at`

// AppointmentRepo implementación del puerto AppointmentRepository sobre PostgreSQL (usable con pool o tx).
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository construye el adaptador de citas. Pasar pool o tx (Querier).
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

// Create persiste una cita.
func (r *AppointmentRepo) Create(appointment *entity.Appointment) error {
	query := `
		INSERT INTO appointments (id, customer_id, service_id, start_time, end_time, status, notes,
			order_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		appointment.ID, appointment.CustomerID, appointment.ServiceID, appointment.StartTime,
		appointment.EndTime, appointment.Status, appointment.Notes, appointment.OrderID,
		appointment.CreatedBy, appointment.CreatedAt, appointment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

// GetByID obtiene una cita por ID.
func (r *AppointmentRepo) GetByID(id string) (*entity.Appointment, error) {
	var a entity.Appointment
	err := r.q.QueryRow(context.Background(),
		`SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id,
	).Scan(
		&a.ID, &a.CustomerID, &a.ServiceID, &a.StartTime, &a.EndTime, &a.Status,
		&a.Notes, &a.OrderID, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return &a, nil
}

// Update reescribe los campos de la cita.
func (r *AppointmentRepo) Update(appointment *entity.Appointment) error {
	query := `
		UPDATE appointments SET customer_id = $2, service_id = $3, start_time = $4, end_time = $5,
			status = $6, notes = $7, order_id = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		appointment.ID, appointment.CustomerID, appointment.ServiceID, appointment.StartTime,
		appointment.EndTime, appointment.Status, appointment.Notes, appointment.OrderID,
		appointment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	return nil
}

// SetOrderLink escribe el vínculo con la orden y el estado en una sola
// sentencia; lo usa el motor de órdenes dentro de su transacción.
func (r *AppointmentRepo) SetOrderLink(id string, orderID *string, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE appointments SET order_id = $2, status = $3, updated_at = now() WHERE id = $1`,
		id, orderID, status,
	)
	if err != nil {
		return fmt.Errorf("set appointment order link: %w", err)
	}
	return nil
}

// ExistsOverlapping evalúa el solape semiabierto contra las citas no
// canceladas: start_time < fin AND end_time > inicio. excludeID omite la
// propia cita en updates.
func (r *AppointmentRepo) ExistsOverlapping(start, end time.Time, excludeID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(), `
		SELECT EXISTS(
			SELECT 1 FROM appointments
			WHERE status <> 'cancelled'
			  AND start_time < $2
			  AND end_time > $1
			  AND ($3 = '' OR id <> $3)
		)`,
		start, end, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check overlapping appointment: %w", err)
	}
	return exists, nil
}

// List lista citas con filtros y total sin paginar.
func (r *AppointmentRepo) List(filter repository.AppointmentFilter) ([]*entity.Appointment, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		where += fmt.Sprintf(" AND customer_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		where += fmt.Sprintf(" AND start_time >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where += fmt.Sprintf(" AND start_time < $%d", len(args))
	}

	var total int
	if err := r.q.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM appointments"+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count appointments: %w", err)
	}

	query := `SELECT ` + appointmentColumns + ` FROM appointments` + where + ` ORDER BY start_time DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	appts, err := r.queryAppointments(query, args...)
	if err != nil {
		return nil, 0, err
	}
	return appts, total, nil
}

// ListRange lista las citas cuyo inicio cae en [from, to), ascendente, para el calendario.
func (r *AppointmentRepo) ListRange(from, to time.Time) ([]*entity.Appointment, error) {
	return r.queryAppointments(
		`SELECT `+appointmentColumns+` FROM appointments WHERE start_time >= $1 AND start_time < $2 ORDER BY start_time ASC`,
		from, to,
	)
}

// ListByCustomer lista las citas recientes de un cliente.
func (r *AppointmentRepo) ListByCustomer(customerID string, limit int) ([]*entity.Appointment, error) {
	return r.queryAppointments(
		`SELECT `+appointmentColumns+` FROM appointments WHERE customer_id = $1 ORDER BY start_time DESC LIMIT $2`,
		customerID, limit,
	)
}

// Delete borra una cita.
func (r *AppointmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	return nil
}

func (r *AppointmentRepo) queryAppointments(query string, args ...any) ([]*entity.Appointment, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var appts []*entity.Appointment
	for rows.Next() {
		var a entity.Appointment
		if err := rows.Scan(
			&a.ID, &a.CustomerID, &a.ServiceID, &a.StartTime, &a.EndTime, &a.Status,
			&a.Notes, &a.OrderID, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		appts = append(appts, &a)
	}
	return appts, rows.Err()
}

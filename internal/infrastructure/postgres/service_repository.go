package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

const serviceColumns = `id, name, description, price, duration, is_active, created_at, updated_at`

// ServiceRepo implementación del puerto ServiceRepository sobre PostgreSQL (usable con pool o tx).
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador de servicios. Pasar pool o tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

// Create persiste un servicio.
func (r *ServiceRepo) Create(service *entity.Service) error {
	query := `
		INSERT INTO services (id, name, description, price, duration, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		service.ID, service.Name, service.Description, service.Price, service.Duration,
		service.IsActive, service.CreatedAt, service.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio por ID.
func (r *ServiceRepo) GetByID(id string) (*entity.Service, error) {
	var s entity.Service
	err := r.q.QueryRow(context.Background(),
		`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.Duration, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

// Update actualiza un servicio.
func (r *ServiceRepo) Update(service *entity.Service) error {
	query := `
		UPDATE services SET name = $2, description = $3, price = $4, duration = $5, is_active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		service.ID, service.Name, service.Description, service.Price, service.Duration,
		service.IsActive, service.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// List lista servicios, opcionalmente filtrados por actividad.
func (r *ServiceRepo) List(isActive *bool) ([]*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services`
	args := []any{}
	if isActive != nil {
		args = append(args, *isActive)
		query += " WHERE is_active = $1"
	}
	query += " ORDER BY name ASC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var services []*entity.Service
	for rows.Next() {
		var s entity.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.Duration, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		services = append(services, &s)
	}
	return services, rows.Err()
}

// Delete borra un servicio.
func (r *ServiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

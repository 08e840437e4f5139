package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

var _ repository.ReminderTemplateRepository = (*ReminderTemplateRepo)(nil)

// ReminderTemplateRepo implementación del puerto de plantillas sobre PostgreSQL (usable con pool o tx).
type ReminderTemplateRepo struct {
	q Querier
}

// NewReminderTemplateRepository construye el adaptador de plantillas. Pasar pool o tx (Querier).
func NewReminderTemplateRepository(q Querier) *ReminderTemplateRepo {
	return &ReminderTemplateRepo{q: q}
}

// Create persiste una plantilla.
func (r *ReminderTemplateRepo) Create(template *entity.ReminderTemplate) error {
	query := `
		INSERT INTO reminder_templates (id, title, content, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		template.ID, template.Title, template.Content, template.IsActive,
		template.CreatedAt, template.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reminder template: %w", err)
	}
	return nil
}

// GetByID obtiene una plantilla por ID.
func (r *ReminderTemplateRepo) GetByID(id string) (*entity.ReminderTemplate, error) {
	var t entity.ReminderTemplate
	err := r.q.QueryRow(context.Background(),
		`SELECT id, title, content, is_active, created_at, updated_at FROM reminder_templates WHERE id = $1`, id,
	).Scan(&t.ID, &t.Title, &t.Content, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reminder template: %w", err)
	}
	return &t, nil
}

// Update actualiza una plantilla.
func (r *ReminderTemplateRepo) Update(template *entity.ReminderTemplate) error {
	query := `UPDATE reminder_templates SET title = $2, content = $3, is_active = $4, updated_at = $5 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		template.ID, template.Title, template.Content, template.IsActive, template.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update reminder template: %w", err)
	}
	return nil
}

// List lista todas las plantillas.
func (r *ReminderTemplateRepo) List() ([]*entity.ReminderTemplate, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, title, content, is_active, created_at, updated_at FROM reminder_templates ORDER BY title ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list reminder templates: %w", err)
	}
	defer rows.Close()

	var templates []*entity.ReminderTemplate
	for rows.Next() {
		var t entity.ReminderTemplate
		if err := rows.Scan(&t.ID, &t.Title, &t.Content, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan reminder template: %w", err)
		}
		templates = append(templates, &t)
	}
	return templates, rows.Err()
}

// Delete borra una plantilla.
func (r *ReminderTemplateRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM reminder_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reminder template: %w", err)
	}
	return nil
}

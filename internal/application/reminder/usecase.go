package reminder

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/beautybook-api/internal/application/authz"
	"github.com/tu-usuario/beautybook-api/internal/application/dto"
	"github.com/tu-usuario/beautybook-api/internal/domain"
	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

// UseCase gestiona recordatorios de seguimiento y sus plantillas.
type UseCase struct {
	repo         repository.ReminderRepository
	templateRepo repository.ReminderTemplateRepository
	customerRepo repository.CustomerRepository
}

// NewUseCase construye el caso de uso de recordatorios.
func NewUseCase(
	repo repository.ReminderRepository,
	templateRepo repository.ReminderTemplateRepository,
	customerRepo repository.CustomerRepository,
) *UseCase {
	return &UseCase{repo: repo, templateRepo: templateRepo, customerRepo: customerRepo}
}

// Create crea un recordatorio pendiente para un cliente.
func (uc *UseCase) Create(actor authz.Principal, in dto.CreateReminderRequest) (*dto.ReminderResponse, error) {
	if in.Customer == "" || in.Content == "" || in.ReminderDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.Customer)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	reminder := &entity.Reminder{
		ID:           uuid.New().String(),
		CustomerID:   in.Customer,
		ReminderDate: in.ReminderDate,
		Content:      in.Content,
		Status:       entity.ReminderStatusPending,
		OrderID:      in.OrderID,
		CreatedBy:    actor.UserID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(reminder); err != nil {
		return nil, err
	}
	resp := uc.toResponse(reminder)
	resp.CustomerName = customer.Name
	return &resp, nil
}

// Update edita un recordatorio. Pasar a completed sella CompletedAt; volver
// a pending lo limpia.
func (uc *UseCase) Update(id string, in dto.UpdateReminderRequest) (*dto.ReminderResponse, error) {
	reminder, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if reminder == nil {
		return nil, domain.ErrNotFound
	}
	if in.Customer != nil {
		customer, err := uc.customerRepo.GetByID(*in.Customer)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
		reminder.CustomerID = *in.Customer
	}
	if in.ReminderDate != nil {
		reminder.ReminderDate = *in.ReminderDate
	}
	if in.Content != nil {
		reminder.Content = *in.Content
	}
	if in.Status != nil {
		if err := uc.setStatus(reminder, *in.Status); err != nil {
			return nil, err
		}
	}
	reminder.UpdatedAt = time.Now()
	if err := uc.repo.Update(reminder); err != nil {
		return nil, err
	}
	resp := uc.toResponse(reminder)
	return &resp, nil
}

// Complete marca el recordatorio como completado.
func (uc *UseCase) Complete(id string) (*dto.ReminderResponse, error) {
	status := entity.ReminderStatusCompleted
	return uc.Update(id, dto.UpdateReminderRequest{Status: &status})
}

// Skip marca el recordatorio como omitido.
func (uc *UseCase) Skip(id string) (*dto.ReminderResponse, error) {
	status := entity.ReminderStatusSkipped
	return uc.Update(id, dto.UpdateReminderRequest{Status: &status})
}

// List lista recordatorios con filtros y paginación.
func (uc *UseCase) List(filter repository.ReminderFilter, page dto.PageRequest) (*dto.ReminderListResponse, error) {
	page.Normalize(20)
	filter.Limit = page.Limit
	filter.Offset = page.Offset()

	reminders, total, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReminderResponse, 0, len(reminders))
	for _, r := range reminders {
		resp := uc.toResponse(r)
		if customer, err := uc.customerRepo.GetByID(r.CustomerID); err == nil && customer != nil {
			resp.CustomerName = customer.Name
		}
		out = append(out, resp)
	}
	return &dto.ReminderListResponse{
		Reminders:  out,
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// Today lista los pendientes con fecha de hoy.
func (uc *UseCase) Today(now time.Time) (*dto.ReminderListResponse, error) {
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 1)
	return uc.pendingBetween(from, to)
}

// Week lista los pendientes de la semana calendario en curso (domingo a
// sábado), agrupados por fecha (YYYY-MM-DD) para la vista semanal.
func (uc *UseCase) Week(now time.Time) (map[string][]dto.ReminderResponse, error) {
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -int(now.Weekday()))
	to := from.AddDate(0, 0, 7)

	list, err := uc.pendingBetween(from, to)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]dto.ReminderResponse)
	for _, r := range list.Reminders {
		day := r.ReminderDate.Format("2006-01-02")
		grouped[day] = append(grouped[day], r)
	}
	return grouped, nil
}

func (uc *UseCase) pendingBetween(from, to time.Time) (*dto.ReminderListResponse, error) {
	return uc.List(repository.ReminderFilter{
		Statuses: []string{entity.ReminderStatusPending},
		From:     &from,
		To:       &to,
	}, dto.PageRequest{Page: 1, Limit: 100})
}

// Delete borra un recordatorio.
func (uc *UseCase) Delete(id string) error {
	reminder, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if reminder == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// CreateTemplate crea una plantilla reutilizable.
func (uc *UseCase) CreateTemplate(in dto.TemplateRequest) (*dto.TemplateResponse, error) {
	if in.Title == "" || in.Content == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	tpl := &entity.ReminderTemplate{
		ID:        uuid.New().String(),
		Title:     in.Title,
		Content:   in.Content,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.IsActive != nil {
		tpl.IsActive = *in.IsActive
	}
	if err := uc.templateRepo.Create(tpl); err != nil {
		return nil, err
	}
	return toTemplateResponse(tpl), nil
}

// UpdateTemplate edita una plantilla.
func (uc *UseCase) UpdateTemplate(id string, in dto.TemplateRequest) (*dto.TemplateResponse, error) {
	tpl, err := uc.templateRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != "" {
		tpl.Title = in.Title
	}
	if in.Content != "" {
		tpl.Content = in.Content
	}
	if in.IsActive != nil {
		tpl.IsActive = *in.IsActive
	}
	tpl.UpdatedAt = time.Now()
	if err := uc.templateRepo.Update(tpl); err != nil {
		return nil, err
	}
	return toTemplateResponse(tpl), nil
}

// ListTemplates lista todas las plantillas.
func (uc *UseCase) ListTemplates() ([]dto.TemplateResponse, error) {
	templates, err := uc.templateRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, *toTemplateResponse(t))
	}
	return out, nil
}

// DeleteTemplate borra una plantilla.
func (uc *UseCase) DeleteTemplate(id string) error {
	tpl, err := uc.templateRepo.GetByID(id)
	if err != nil {
		return err
	}
	if tpl == nil {
		return domain.ErrNotFound
	}
	return uc.templateRepo.Delete(id)
}

func (uc *UseCase) setStatus(r *entity.Reminder, status string) error {
	switch status {
	case entity.ReminderStatusPending:
		r.Status = status
		r.CompletedAt = nil
	case entity.ReminderStatusCompleted:
		r.Status = status
		now := time.Now()
		r.CompletedAt = &now
	case entity.ReminderStatusSkipped:
		r.Status = status
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

func (uc *UseCase) toResponse(r *entity.Reminder) dto.ReminderResponse {
	return dto.ReminderResponse{
		ID:           r.ID,
		CustomerID:   r.CustomerID,
		ReminderDate: r.ReminderDate,
		Content:      r.Content,
		Status:       r.Status,
		OrderID:      r.OrderID,
		CreatedBy:    r.CreatedBy,
		CompletedAt:  r.CompletedAt,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toTemplateResponse(t *entity.ReminderTemplate) *dto.TemplateResponse {
	return &dto.TemplateResponse{
		ID:        t.ID,
		Title:     t.Title,
		Content:   t.Content,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

package reminder_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/beautybook-api/internal/application/authz"
	"github.com/tu-usuario/beautybook-api/internal/application/dto"
	"github.com/tu-usuario/beautybook-api/internal/application/reminder"
	"github.com/tu-usuario/beautybook-api/internal/domain"
	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeReminderRepo struct{ items map[string]*entity.Reminder }

func (r *fakeReminderRepo) Create(m *entity.Reminder) error { r.items[m.ID] = m; return nil }
func (r *fakeReminderRepo) GetByID(id string) (*entity.Reminder, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}
func (r *fakeReminderRepo) Update(m *entity.Reminder) error { r.items[m.ID] = m; return nil }
func (r *fakeReminderRepo) List(f repository.ReminderFilter) ([]*entity.Reminder, int, error) {
	var out []*entity.Reminder
	for _, m := range r.items {
		if f.CustomerID != "" && m.CustomerID != f.CustomerID {
			continue
		}
		if len(f.Statuses) > 0 && !contains(f.Statuses, m.Status) {
			continue
		}
		if f.From != nil && m.ReminderDate.Before(*f.From) {
			continue
		}
		if f.To != nil && !m.ReminderDate.Before(*f.To) {
			continue
		}
		out = append(out, m)
	}
	return out, len(out), nil
}
func (r *fakeReminderRepo) Delete(id string) error { delete(r.items, id); return nil }

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

type fakeTemplateRepo struct{ items map[string]*entity.ReminderTemplate }

func (r *fakeTemplateRepo) Create(t *entity.ReminderTemplate) error { r.items[t.ID] = t; return nil }
func (r *fakeTemplateRepo) GetByID(id string) (*entity.ReminderTemplate, error) {
	t, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}
func (r *fakeTemplateRepo) Update(t *entity.ReminderTemplate) error { r.items[t.ID] = t; return nil }
func (r *fakeTemplateRepo) List() ([]*entity.ReminderTemplate, error) {
	var out []*entity.ReminderTemplate
	for _, t := range r.items {
		out = append(out, t)
	}
	return out, nil
}
func (r *fakeTemplateRepo) Delete(id string) error { delete(r.items, id); return nil }

type fakeCustomers struct{ items map[string]*entity.Customer }

func (r *fakeCustomers) Create(c *entity.Customer) error { r.items[c.ID] = c; return nil }
func (r *fakeCustomers) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *fakeCustomers) GetByPhone(string) (*entity.Customer, error) { return nil, nil }
func (r *fakeCustomers) Update(c *entity.Customer) error             { r.items[c.ID] = c; return nil }
func (r *fakeCustomers) List(repository.CustomerFilter) ([]*entity.Customer, int, error) {
	return nil, 0, nil
}
func (r *fakeCustomers) ListByBirthMonth(int) ([]*entity.Customer, error) { return nil, nil }
func (r *fakeCustomers) Delete(id string) error                           { delete(r.items, id); return nil }

func newReminderUC() (*reminder.UseCase, *fakeReminderRepo) {
	repo := &fakeReminderRepo{items: map[string]*entity.Reminder{}}
	templates := &fakeTemplateRepo{items: map[string]*entity.ReminderTemplate{}}
	customers := &fakeCustomers{items: map[string]*entity.Customer{
		"cust-1": {ID: "cust-1", Name: "Ana Gómez", Phone: "555-0001"},
	}}
	return reminder.NewUseCase(repo, templates, customers), repo
}

var reminderActor = authz.Principal{UserID: "emp-1", Role: "employee"}

func day(offset int) time.Time {
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func mustCreate(t *testing.T, uc *reminder.UseCase, when time.Time) *dto.ReminderResponse {
	t.Helper()
	resp, err := uc.Create(reminderActor, dto.CreateReminderRequest{
		Customer:     "cust-1",
		Content:      "Seguimiento post tratamiento",
		ReminderDate: when,
	})
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateRecordatorio_NacePendiente(t *testing.T) {
	uc, _ := newReminderUC()

	resp := mustCreate(t, uc, day(1))
	assert.Equal(t, entity.ReminderStatusPending, resp.Status)
	assert.Nil(t, resp.CompletedAt)
	assert.Equal(t, "Ana Gómez", resp.CustomerName)
	assert.Equal(t, "emp-1", resp.CreatedBy)
}

func TestCreateRecordatorio_ClienteInexistente(t *testing.T) {
	uc, _ := newReminderUC()

	_, err := uc.Create(reminderActor, dto.CreateReminderRequest{
		Customer: "nope", Content: "hola", ReminderDate: day(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateRecordatorio_SinContenido(t *testing.T) {
	uc, _ := newReminderUC()

	_, err := uc.Create(reminderActor, dto.CreateReminderRequest{
		Customer: "cust-1", ReminderDate: day(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Completar sella CompletedAt; volver a pending lo limpia.
func TestCompletarYReabrir(t *testing.T) {
	uc, _ := newReminderUC()
	created := mustCreate(t, uc, day(1))

	done, err := uc.Complete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReminderStatusCompleted, done.Status)
	require.NotNil(t, done.CompletedAt)

	pending := entity.ReminderStatusPending
	reopened, err := uc.Update(created.ID, dto.UpdateReminderRequest{Status: &pending})
	require.NoError(t, err)
	assert.Equal(t, entity.ReminderStatusPending, reopened.Status)
	assert.Nil(t, reopened.CompletedAt)
}

func TestOmitirNoSellaCompletedAt(t *testing.T) {
	uc, _ := newReminderUC()
	created := mustCreate(t, uc, day(1))

	skipped, err := uc.Skip(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReminderStatusSkipped, skipped.Status)
	assert.Nil(t, skipped.CompletedAt)
}

func TestUpdate_EstadoInvalido(t *testing.T) {
	uc, _ := newReminderUC()
	created := mustCreate(t, uc, day(1))

	bad := "snoozed"
	_, err := uc.Update(created.ID, dto.UpdateReminderRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Today solo ve pendientes con fecha de hoy. Week cubre la semana calendario
// en curso (domingo a sábado) y agrupa por fecha; day(0) cae en domingo.
func TestVentanasTodayYWeek(t *testing.T) {
	uc, _ := newReminderUC()
	now := day(0)

	today := mustCreate(t, uc, now.Add(2*time.Hour))
	mustCreate(t, uc, day(3))
	mustCreate(t, uc, day(10)) // fuera de la semana
	doneToday := mustCreate(t, uc, now.Add(3*time.Hour))
	_, err := uc.Complete(doneToday.ID)
	require.NoError(t, err)

	gotToday, err := uc.Today(now)
	require.NoError(t, err)
	require.Len(t, gotToday.Reminders, 1, "solo el pendiente de hoy")
	assert.Equal(t, today.ID, gotToday.Reminders[0].ID)

	gotWeek, err := uc.Week(now)
	require.NoError(t, err)
	require.Len(t, gotWeek, 2, "un grupo por fecha con pendientes")
	require.Len(t, gotWeek["2026-08-30"], 1)
	assert.Equal(t, today.ID, gotWeek["2026-08-30"][0].ID)
	assert.Len(t, gotWeek["2026-09-02"], 1)
}

// La semana es la calendario en curso, no los próximos siete días: a mitad
// de semana entran también los pendientes de días ya pasados de esa semana.
func TestWeek_SemanaCalendarioNoVentanaMovil(t *testing.T) {
	uc, _ := newReminderUC()

	mustCreate(t, uc, day(1)) // lunes
	mustCreate(t, uc, day(4)) // jueves
	mustCreate(t, uc, day(7)) // domingo siguiente: fuera

	// Miércoles de la misma semana.
	gotWeek, err := uc.Week(day(3))
	require.NoError(t, err)
	require.Len(t, gotWeek, 2)
	assert.Len(t, gotWeek["2026-08-31"], 1, "el lunes ya pasado sigue en la semana")
	assert.Len(t, gotWeek["2026-09-03"], 1)
}

func TestDeleteRecordatorio_Inexistente(t *testing.T) {
	uc, _ := newReminderUC()
	assert.ErrorIs(t, uc.Delete("nope"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de plantillas
// ──────────────────────────────────────────────────────────────────────────────

func TestPlantillas_CicloBasico(t *testing.T) {
	uc, _ := newReminderUC()

	tpl, err := uc.CreateTemplate(dto.TemplateRequest{
		Title:   "Retoque de tinte",
		Content: "Hola {{nombre}}, te toca retoque",
	})
	require.NoError(t, err)
	assert.True(t, tpl.IsActive, "activa por defecto")

	inactive := false
	updated, err := uc.UpdateTemplate(tpl.ID, dto.TemplateRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Retoque de tinte", updated.Title, "los campos vacíos no pisan")

	all, err := uc.ListTemplates()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, uc.DeleteTemplate(tpl.ID))
	assert.ErrorIs(t, uc.DeleteTemplate(tpl.ID), domain.ErrNotFound)
}

func TestPlantillas_SinTitulo(t *testing.T) {
	uc, _ := newReminderUC()
	_, err := uc.CreateTemplate(dto.TemplateRequest{Content: "contenido"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

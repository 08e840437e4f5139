package scheduling_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/beautybook-api/internal/application/authz"
	"github.com/tu-usuario/beautybook-api/internal/application/dto"
	"github.com/tu-usuario/beautybook-api/internal/application/scheduling"
	"github.com/tu-usuario/beautybook-api/internal/domain"
	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeApptRepo struct{ items map[string]*entity.Appointment }

func (r *fakeApptRepo) Create(a *entity.Appointment) error { r.items[a.ID] = a; return nil }
func (r *fakeApptRepo) GetByID(id string) (*entity.Appointment, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}
func (r *fakeApptRepo) Update(a *entity.Appointment) error { r.items[a.ID] = a; return nil }
func (r *fakeApptRepo) SetOrderLink(id string, orderID *string, status string) error {
	a, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.OrderID = orderID
	a.Status = status
	return nil
}

// Misma semántica que el repo real: solape semiabierto excluyendo canceladas
// y, opcionalmente, la propia cita.
func (r *fakeApptRepo) ExistsOverlapping(start, end time.Time, excludeID string) (bool, error) {
	for _, a := range r.items {
		if a.ID == excludeID || a.Status == entity.AppointmentStatusCancelled {
			continue
		}
		if scheduling.Overlaps(a.StartTime, a.EndTime, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApptRepo) List(repository.AppointmentFilter) ([]*entity.Appointment, int, error) {
	return nil, 0, nil
}
func (r *fakeApptRepo) ListRange(from, to time.Time) ([]*entity.Appointment, error) {
	var out []*entity.Appointment
	for _, a := range r.items {
		if a.StartTime.Before(to) && a.EndTime.After(from) {
			out = append(out, a)
		}
	}
	return out, nil
}
func (r *fakeApptRepo) ListByCustomer(string, int) ([]*entity.Appointment, error) { return nil, nil }
func (r *fakeApptRepo) Delete(id string) error                                    { delete(r.items, id); return nil }

type fakeCustomerRepo struct{ items map[string]*entity.Customer }

func (r *fakeCustomerRepo) Create(c *entity.Customer) error { r.items[c.ID] = c; return nil }
func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *fakeCustomerRepo) GetByPhone(string) (*entity.Customer, error) { return nil, nil }
func (r *fakeCustomerRepo) Update(c *entity.Customer) error             { r.items[c.ID] = c; return nil }
func (r *fakeCustomerRepo) List(repository.CustomerFilter) ([]*entity.Customer, int, error) {
	return nil, 0, nil
}
func (r *fakeCustomerRepo) ListByBirthMonth(int) ([]*entity.Customer, error) { return nil, nil }
func (r *fakeCustomerRepo) Delete(id string) error                           { delete(r.items, id); return nil }

type fakeServiceRepo struct{ items map[string]*entity.Service }

func (r *fakeServiceRepo) Create(s *entity.Service) error { r.items[s.ID] = s; return nil }
func (r *fakeServiceRepo) GetByID(id string) (*entity.Service, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}
func (r *fakeServiceRepo) Update(s *entity.Service) error        { r.items[s.ID] = s; return nil }
func (r *fakeServiceRepo) List(*bool) ([]*entity.Service, error) { return nil, nil }
func (r *fakeServiceRepo) Delete(id string) error                { delete(r.items, id); return nil }

type fakeSchedTx struct{ appts *fakeApptRepo }

func (r *fakeSchedTx) RunScheduling(_ context.Context, fn func(repository.AppointmentRepository) error) error {
	return fn(r.appts)
}

// orderDeleterSpy registra las limpiezas de órdenes ligadas. Si fail está
// definido la transacción entera falla: ni la orden ni la cita cambian,
// igual que con un rollback real.
type orderDeleterSpy struct {
	appts    *fakeApptRepo
	deleted  []string
	restored []bool
	fail     error
}

func (s *orderDeleterSpy) DeleteLinkedOrder(_ context.Context, orderID string, restoreStock bool, then func(repository.AppointmentRepository) error) error {
	if s.fail != nil {
		return s.fail
	}
	s.deleted = append(s.deleted, orderID)
	s.restored = append(s.restored, restoreStock)
	if then != nil {
		return then(s.appts)
	}
	return nil
}

type schedEnv struct {
	uc      *scheduling.UseCase
	appts   *fakeApptRepo
	deleter *orderDeleterSpy
}

func newSchedEnv(restoreStock bool) *schedEnv {
	appts := &fakeApptRepo{items: map[string]*entity.Appointment{}}
	customers := &fakeCustomerRepo{items: map[string]*entity.Customer{
		"cust-1": {ID: "cust-1", Name: "Ana Gómez", Phone: "555-0001"},
	}}
	services := &fakeServiceRepo{items: map[string]*entity.Service{
		"svc-1": {ID: "svc-1", Name: "Corte de cabello", Duration: 45, IsActive: true},
	}}
	deleter := &orderDeleterSpy{appts: appts}
	uc := scheduling.NewUseCase(&fakeSchedTx{appts: appts}, appts, customers, services, deleter, restoreStock)
	return &schedEnv{uc: uc, appts: appts, deleter: deleter}
}

var schedActor = authz.Principal{UserID: "emp-1", Role: "employee"}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

// Sin EndTime explícito el fin se deriva de la duración del servicio.
func TestCreateCita_FinDerivadoDeDuracion(t *testing.T) {
	e := newSchedEnv(false)

	resp, err := e.uc.Create(context.Background(), schedActor, dto.CreateAppointmentRequest{
		Customer:  "cust-1",
		Service:   "svc-1",
		StartTime: at(10, 0),
	})
	require.NoError(t, err)

	assert.Equal(t, at(10, 45), resp.EndTime, "45 minutos de duración del servicio")
	assert.Equal(t, entity.AppointmentStatusBooked, resp.Status)
	assert.Equal(t, "Ana Gómez", resp.CustomerName)
	assert.Equal(t, "Corte de cabello", resp.ServiceName)
}

func TestCreateCita_EndTimeExplicitoGana(t *testing.T) {
	e := newSchedEnv(false)

	end := at(12, 0)
	resp, err := e.uc.Create(context.Background(), schedActor, dto.CreateAppointmentRequest{
		Customer:  "cust-1",
		Service:   "svc-1",
		StartTime: at(10, 0),
		EndTime:   &end,
	})
	require.NoError(t, err)
	assert.Equal(t, end, resp.EndTime)
}

func TestCreateCita_SolapeRechazado(t *testing.T) {
	e := newSchedEnv(false)

	_, err := e.uc.Create(context.Background(), schedActor, dto.CreateAppointmentRequest{
		Customer: "cust-1", Service: "svc-1", StartTime: at(10, 0),
	})
	require.NoError(t, err)

	_, err = e.uc.Create(context.Background(), schedActor, dto.CreateAppointmentRequest{
		Customer: "cust-1", Service: "svc-1", StartTime: at(10, 30),
	})
	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

// El borde compartido (una cita termina justo cuando empieza la otra) no choca.
func TestCreateCita_BordeCompartidoPermitido(t *testing.T) {
	e := newSchedEnv(false)

	_, err := e.uc.Create(context.Background(), schedActor, dto.CreateAppointmentRequest{
		Customer: "cust-1", Service: "svc-1", StartTime: at(10, 0),
	})
	require.NoError(t, err)

	_, err = e.uc.Create(context.Background(), schedActor, dto.CreateAppointmentRequest{
		Customer: "cust-1", Service: "svc-1", StartTime: at(10, 45),
	})
	assert.NoError(t, err)
}

// Un hueco liberado por una cita cancelada se puede volver a reservar.
func TestCreateCita_CanceladaNoBloquea(t *testing.T) {
	e := newSchedEnv(false)

	resp, err := e.uc.Create(context.Background(), schedActor, dto.CreateAppointmentRequest{
		Customer: "cust-1", Service: "svc-1", StartTime: at(10, 0),
	})
	require.NoError(t, err)

	cancelled := entity.AppointmentStatusCancelled
	_, err = e.uc.Update(context.Background(), resp.ID, dto.UpdateAppointmentRequest{Status: &cancelled})
	require.NoError(t, err)

	_, err = e.uc.Create(context.Background(), schedActor, dto.CreateAppointmentRequest{
		Customer: "cust-1", Service: "svc-1", StartTime: at(10, 15),
	})
	assert.NoError(t, err)
}

func TestCreateCita_ClienteInexistente(t *testing.T) {
	e := newSchedEnv(false)

	_, err := e.uc.Create(context.Background(), schedActor, dto.CreateAppointmentRequest{
		Customer: "nope", Service: "svc-1", StartTime: at(10, 0),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateCita_FinAntesDelInicio(t *testing.T) {
	e := newSchedEnv(false)

	end := at(9, 0)
	_, err := e.uc.Create(context.Background(), schedActor, dto.CreateAppointmentRequest{
		Customer: "cust-1", Service: "svc-1", StartTime: at(10, 0), EndTime: &end,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update
// ──────────────────────────────────────────────────────────────────────────────

// Mover una cita sobre otra vigente choca; la propia cita no cuenta como solape.
func TestUpdateCita_ReprogramarVerificaSolape(t *testing.T) {
	e := newSchedEnv(false)

	first, err := e.uc.Create(context.Background(), schedActor, dto.CreateAppointmentRequest{
		Customer: "cust-1", Service: "svc-1", StartTime: at(10, 0),
	})
	require.NoError(t, err)
	second, err := e.uc.Create(context.Background(), schedActor, dto.CreateAppointmentRequest{
		Customer: "cust-1", Service: "svc-1", StartTime: at(12, 0),
	})
	require.NoError(t, err)

	// Sobre la primera: choca.
	start := at(10, 15)
	end := at(11, 0)
	_, err = e.uc.Update(context.Background(), second.ID, dto.UpdateAppointmentRequest{
		StartTime: &start, EndTime: &end,
	})
	assert.ErrorIs(t, err, domain.ErrSlotTaken)

	// Reprogramar la primera dentro de su propio hueco: no choca consigo misma.
	start = at(10, 10)
	end = at(10, 40)
	_, err = e.uc.Update(context.Background(), first.ID, dto.UpdateAppointmentRequest{
		StartTime: &start, EndTime: &end,
	})
	assert.NoError(t, err)
}

func TestUpdateCita_EstadoInvalido(t *testing.T) {
	e := newSchedEnv(false)

	resp, err := e.uc.Create(context.Background(), schedActor, dto.CreateAppointmentRequest{
		Customer: "cust-1", Service: "svc-1", StartTime: at(10, 0),
	})
	require.NoError(t, err)

	bad := "archived"
	_, err = e.uc.Update(context.Background(), resp.ID, dto.UpdateAppointmentRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de limpieza de orden ligada
// ──────────────────────────────────────────────────────────────────────────────

func TestCancelarCita_BorraOrdenLigadaSegunConfig(t *testing.T) {
	for _, restore := range []bool{true, false} {
		e := newSchedEnv(restore)

		resp, err := e.uc.Create(context.Background(), schedActor, dto.CreateAppointmentRequest{
			Customer: "cust-1", Service: "svc-1", StartTime: at(10, 0),
		})
		require.NoError(t, err)

		orderID := "order-1"
		require.NoError(t, e.appts.SetOrderLink(resp.ID, &orderID, entity.AppointmentStatusCompleted))

		cancelled := entity.AppointmentStatusCancelled
		updated, err := e.uc.Update(context.Background(), resp.ID, dto.UpdateAppointmentRequest{Status: &cancelled})
		require.NoError(t, err)

		assert.Equal(t, []string{"order-1"}, e.deleter.deleted)
		assert.Equal(t, []bool{restore}, e.deleter.restored, "la política de stock viene de configuración")
		assert.Nil(t, updated.OrderID, "el enlace a la orden se limpia")

		stored, _ := e.appts.GetByID(resp.ID)
		assert.Equal(t, entity.AppointmentStatusCancelled, stored.Status, "la cita se persiste dentro del borrado")
		assert.Nil(t, stored.OrderID)
	}
}

// Si el borrado transaccional de la orden falla, la cancelación entera
// falla: la cita persiste completada y sigue apuntando a su orden.
func TestCancelarCita_FalloDejaOrdenYCitaIntactas(t *testing.T) {
	e := newSchedEnv(true)

	resp, err := e.uc.Create(context.Background(), schedActor, dto.CreateAppointmentRequest{
		Customer: "cust-1", Service: "svc-1", StartTime: at(10, 0),
	})
	require.NoError(t, err)

	orderID := "order-1"
	require.NoError(t, e.appts.SetOrderLink(resp.ID, &orderID, entity.AppointmentStatusCompleted))
	e.deleter.fail = errors.New("deadlock")

	cancelled := entity.AppointmentStatusCancelled
	_, err = e.uc.Update(context.Background(), resp.ID, dto.UpdateAppointmentRequest{Status: &cancelled})
	require.Error(t, err)

	assert.Empty(t, e.deleter.deleted, "la orden no se borró")
	stored, _ := e.appts.GetByID(resp.ID)
	assert.Equal(t, entity.AppointmentStatusCompleted, stored.Status)
	require.NotNil(t, stored.OrderID)
	assert.Equal(t, "order-1", *stored.OrderID)
}

// Cancelar dos veces no vuelve a borrar la orden.
func TestCancelarCita_Idempotente(t *testing.T) {
	e := newSchedEnv(true)

	resp, err := e.uc.Create(context.Background(), schedActor, dto.CreateAppointmentRequest{
		Customer: "cust-1", Service: "svc-1", StartTime: at(10, 0),
	})
	require.NoError(t, err)

	orderID := "order-1"
	require.NoError(t, e.appts.SetOrderLink(resp.ID, &orderID, entity.AppointmentStatusCompleted))

	cancelled := entity.AppointmentStatusCancelled
	_, err = e.uc.Update(context.Background(), resp.ID, dto.UpdateAppointmentRequest{Status: &cancelled})
	require.NoError(t, err)
	_, err = e.uc.Update(context.Background(), resp.ID, dto.UpdateAppointmentRequest{Status: &cancelled})
	require.NoError(t, err)

	assert.Len(t, e.deleter.deleted, 1)
}

func TestEliminarCita_BorraOrdenLigada(t *testing.T) {
	e := newSchedEnv(true)

	resp, err := e.uc.Create(context.Background(), schedActor, dto.CreateAppointmentRequest{
		Customer: "cust-1", Service: "svc-1", StartTime: at(10, 0),
	})
	require.NoError(t, err)

	orderID := "order-9"
	require.NoError(t, e.appts.SetOrderLink(resp.ID, &orderID, entity.AppointmentStatusCompleted))

	require.NoError(t, e.uc.Delete(context.Background(), resp.ID))

	assert.Equal(t, []string{"order-9"}, e.deleter.deleted)
	got, _ := e.appts.GetByID(resp.ID)
	assert.Nil(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Calendar
// ──────────────────────────────────────────────────────────────────────────────

func TestCalendar_AgrupaPorDia(t *testing.T) {
	e := newSchedEnv(false)

	_, err := e.uc.Create(context.Background(), schedActor, dto.CreateAppointmentRequest{
		Customer: "cust-1", Service: "svc-1", StartTime: at(10, 0),
	})
	require.NoError(t, err)
	_, err = e.uc.Create(context.Background(), schedActor, dto.CreateAppointmentRequest{
		Customer: "cust-1", Service: "svc-1", StartTime: at(15, 0),
	})
	require.NoError(t, err)
	_, err = e.uc.Create(context.Background(), schedActor, dto.CreateAppointmentRequest{
		Customer: "cust-1", Service: "svc-1", StartTime: at(10, 0).AddDate(0, 0, 1),
	})
	require.NoError(t, err)

	cal, err := e.uc.Calendar(context.Background(), at(0, 0), at(0, 0).AddDate(0, 0, 3))
	require.NoError(t, err)

	require.Len(t, cal, 2)
	assert.Len(t, cal["2026-03-10"], 2)
	assert.Len(t, cal["2026-03-11"], 1)

	_, err = e.uc.Calendar(context.Background(), at(10, 0), at(9, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/beautybook-api/internal/application/authz"
	"github.com/tu-usuario/beautybook-api/internal/application/dto"
	"github.com/tu-usuario/beautybook-api/internal/domain"
	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

// UseCase implementa la agenda: reservas sin solape (restricción global del
// salón), derivación de fin por duración del servicio y la limpieza de la
// orden ligada al cancelar.
type UseCase struct {
	txRunner     TxRunner
	apptRepo     repository.AppointmentRepository
	customerRepo repository.CustomerRepository
	serviceRepo  repository.ServiceRepository
	orders       LinkedOrderDeleter
	restoreStock bool
}

// NewUseCase construye el caso de uso de citas. restoreStock viene de
// configuración y gobierna qué pasa con la orden ligada al cancelar.
func NewUseCase(
	txRunner TxRunner,
	apptRepo repository.AppointmentRepository,
	customerRepo repository.CustomerRepository,
	serviceRepo repository.ServiceRepository,
	orders LinkedOrderDeleter,
	restoreStock bool,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		apptRepo:     apptRepo,
		customerRepo: customerRepo,
		serviceRepo:  serviceRepo,
		orders:       orders,
		restoreStock: restoreStock,
	}
}

// Create reserva una cita. Si no llega EndTime se deriva de la duración del
// servicio. La verificación de solape y el insert ocurren en la misma
// transacción serializada: dos reservas en conflicto nunca entran ambas.
func (uc *UseCase) Create(ctx context.Context, actor authz.Principal, in dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if in.Customer == "" || in.Service == "" || in.StartTime.IsZero() {
		return nil, domain.ErrInvalidInput
	}

	customer, err := uc.customerRepo.GetByID(in.Customer)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	service, err := uc.serviceRepo.GetByID(in.Service)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}

	end := in.StartTime.Add(time.Duration(service.Duration) * time.Minute)
	if in.EndTime != nil {
		end = *in.EndTime
	}
	if !end.After(in.StartTime) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	appt := &entity.Appointment{
		ID:         uuid.New().String(),
		CustomerID: in.Customer,
		ServiceID:  in.Service,
		StartTime:  in.StartTime,
		EndTime:    end,
		Status:     entity.AppointmentStatusBooked,
		Notes:      in.Notes,
		CreatedBy:  actor.UserID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = uc.txRunner.RunScheduling(ctx, func(apptRepo repository.AppointmentRepository) error {
		taken, err := apptRepo.ExistsOverlapping(appt.StartTime, appt.EndTime, "")
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrSlotTaken
		}
		return apptRepo.Create(appt)
	})
	if err != nil {
		return nil, err
	}

	resp := uc.toResponse(appt)
	resp.CustomerName = customer.Name
	resp.ServiceName = service.Name
	return &resp, nil
}

// Update edita la cita parcialmente. Si el intervalo resultante cambia se
// reverifica el solape excluyendo la propia cita, en la misma transacción
// del update. La transición a cancelled dispara la limpieza de la orden
// ligada según configuración; la orden y la cita cambian en la misma
// transacción.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appt, err := uc.apptRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, domain.ErrNotFound
	}

	wasCancelled := appt.Status == entity.AppointmentStatusCancelled

	if in.Customer != nil {
		customer, err := uc.customerRepo.GetByID(*in.Customer)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
		appt.CustomerID = *in.Customer
	}
	if in.Service != nil {
		service, err := uc.serviceRepo.GetByID(*in.Service)
		if err != nil {
			return nil, err
		}
		if service == nil {
			return nil, domain.ErrNotFound
		}
		appt.ServiceID = *in.Service
	}

	timesChanged := false
	if in.StartTime != nil {
		appt.StartTime = *in.StartTime
		timesChanged = true
	}
	if in.EndTime != nil {
		appt.EndTime = *in.EndTime
		timesChanged = true
	}
	if !appt.EndTime.After(appt.StartTime) {
		return nil, domain.ErrInvalidInput
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.AppointmentStatusBooked, entity.AppointmentStatusCancelled, entity.AppointmentStatusCompleted:
			appt.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Notes != nil {
		appt.Notes = *in.Notes
	}
	appt.UpdatedAt = time.Now()

	// Cancelación con orden ligada: el borrado de la orden y la escritura de
	// la cita comparten transacción; si una falla, ninguna queda a medias.
	// Las citas canceladas no participan del solape, así que no hay nada que
	// verificar en este camino.
	if !wasCancelled && appt.Status == entity.AppointmentStatusCancelled && appt.OrderID != nil {
		orderID := *appt.OrderID
		appt.OrderID = nil
		err := uc.orders.DeleteLinkedOrder(ctx, orderID, uc.restoreStock, func(apptRepo repository.AppointmentRepository) error {
			return apptRepo.Update(appt)
		})
		if err != nil {
			return nil, err
		}
		resp := uc.toResponse(appt)
		return &resp, nil
	}

	// Las citas canceladas no participan del solape; no hay nada que verificar.
	needsCheck := timesChanged && appt.Status != entity.AppointmentStatusCancelled

	err = uc.txRunner.RunScheduling(ctx, func(apptRepo repository.AppointmentRepository) error {
		if needsCheck {
			taken, err := apptRepo.ExistsOverlapping(appt.StartTime, appt.EndTime, appt.ID)
			if err != nil {
				return err
			}
			if taken {
				return domain.ErrSlotTaken
			}
		}
		return apptRepo.Update(appt)
	})
	if err != nil {
		return nil, err
	}

	resp := uc.toResponse(appt)
	return &resp, nil
}

// Delete elimina la cita. Si tiene orden ligada, orden y cita se borran en
// la misma transacción con la misma política que la cancelación.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	appt, err := uc.apptRepo.GetByID(id)
	if err != nil {
		return err
	}
	if appt == nil {
		return domain.ErrNotFound
	}
	if appt.OrderID != nil {
		return uc.orders.DeleteLinkedOrder(ctx, *appt.OrderID, uc.restoreStock, func(apptRepo repository.AppointmentRepository) error {
			return apptRepo.Delete(id)
		})
	}
	return uc.apptRepo.Delete(id)
}

// Get devuelve una cita con nombres de cliente y servicio resueltos.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.AppointmentResponse, error) {
	appt, err := uc.apptRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, domain.ErrNotFound
	}
	resp := uc.toResponse(appt)
	uc.resolveNames(&resp)
	return &resp, nil
}

// List devuelve una página de citas con filtros.
func (uc *UseCase) List(ctx context.Context, filter repository.AppointmentFilter, page dto.PageRequest) (*dto.AppointmentListResponse, error) {
	page.Normalize(20)
	filter.Limit = page.Limit
	filter.Offset = page.Offset()

	appts, total, err := uc.apptRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		resp := uc.toResponse(a)
		uc.resolveNames(&resp)
		out = append(out, resp)
	}
	return &dto.AppointmentListResponse{
		Appointments: out,
		Pagination:   dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// Calendar agrupa las citas del rango por día (YYYY-MM-DD) para la vista de agenda.
func (uc *UseCase) Calendar(ctx context.Context, from, to time.Time) (map[string][]dto.AppointmentResponse, error) {
	if !to.After(from) {
		return nil, domain.ErrInvalidInput
	}
	appts, err := uc.apptRepo.ListRange(from, to)
	if err != nil {
		return nil, err
	}
	calendar := make(map[string][]dto.AppointmentResponse)
	for _, a := range appts {
		resp := uc.toResponse(a)
		uc.resolveNames(&resp)
		day := a.StartTime.Format("2006-01-02")
		calendar[day] = append(calendar[day], resp)
	}
	return calendar, nil
}

// resolveNames completa los nombres de cliente y servicio; los errores de
// lookup no rompen el listado.
func (uc *UseCase) resolveNames(resp *dto.AppointmentResponse) {
	if customer, err := uc.customerRepo.GetByID(resp.CustomerID); err == nil && customer != nil {
		resp.CustomerName = customer.Name
	}
	if service, err := uc.serviceRepo.GetByID(resp.ServiceID); err == nil && service != nil {
		resp.ServiceName = service.Name
	}
}

func (uc *UseCase) toResponse(a *entity.Appointment) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		ID:         a.ID,
		CustomerID: a.CustomerID,
		ServiceID:  a.ServiceID,
		StartTime:  a.StartTime,
		EndTime:    a.EndTime,
		Status:     a.Status,
		Notes:      a.Notes,
		OrderID:    a.OrderID,
		CreatedBy:  a.CreatedBy,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

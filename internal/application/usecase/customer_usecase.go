package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/beautybook-api/internal/application/dto"
	"github.com/tu-usuario/beautybook-api/internal/domain"
	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes. El teléfono es único.
type CustomerUseCase struct {
	repo      repository.CustomerRepository
	apptRepo  repository.AppointmentRepository
	orderRepo repository.OrderRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(
	repo repository.CustomerRepository,
	apptRepo repository.AppointmentRepository,
	orderRepo repository.OrderRepository,
) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, apptRepo: apptRepo, orderRepo: orderRepo}
}

// Create crea un cliente. Rechaza teléfonos duplicados antes del insert; la
// constraint única de la DB respalda el caso de carrera.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Gender != "" && !validGender(in.Gender) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByPhone(in.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrPhoneAlreadyExists
	}

	now := time.Now()
	customer := &entity.Customer{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Phone:       in.Phone,
		Email:       in.Email,
		LineID:      in.LineID,
		Gender:      in.Gender,
		DateOfBirth: in.DateOfBirth,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// Update edita campos del cliente. Cambiar el teléfono re-verifica unicidad.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Phone != nil && *in.Phone != customer.Phone {
		existing, err := uc.repo.GetByPhone(*in.Phone)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrPhoneAlreadyExists
		}
		customer.Phone = *in.Phone
	}
	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.LineID != nil {
		customer.LineID = *in.LineID
	}
	if in.Gender != nil {
		if !validGender(*in.Gender) {
			return nil, domain.ErrInvalidInput
		}
		customer.Gender = *in.Gender
	}
	if in.DateOfBirth != nil {
		customer.DateOfBirth = in.DateOfBirth
	}
	if in.Notes != nil {
		customer.Notes = *in.Notes
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List busca clientes por nombre, teléfono o email, paginado.
func (uc *CustomerUseCase) List(search string, page dto.PageRequest) ([]dto.CustomerResponse, dto.Pagination, error) {
	page.Normalize(20)
	customers, total, err := uc.repo.List(repository.CustomerFilter{
		Search: search,
		Limit:  page.Limit,
		Offset: page.Offset(),
	})
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, *toCustomerResponse(c))
	}
	return out, dto.NewPagination(page.Page, page.Limit, total), nil
}

// History devuelve citas y órdenes recientes del cliente.
func (uc *CustomerUseCase) History(id string, limit int) (*dto.CustomerHistoryResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if limit <= 0 {
		limit = 20
	}

	appts, err := uc.apptRepo.ListByCustomer(id, limit)
	if err != nil {
		return nil, err
	}
	orders, err := uc.orderRepo.ListByCustomer(id, limit)
	if err != nil {
		return nil, err
	}

	history := &dto.CustomerHistoryResponse{
		Appointments: make([]dto.AppointmentResponse, 0, len(appts)),
		Orders:       make([]dto.OrderResponse, 0, len(orders)),
	}
	for _, a := range appts {
		history.Appointments = append(history.Appointments, dto.AppointmentResponse{
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
		})
	}
	for _, o := range orders {
		items := make([]dto.OrderItemResponse, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, dto.OrderItemResponse{
				Type:       string(it.Ref.Kind),
				ItemID:     it.Ref.ID,
				ItemName:   it.ItemName,
				Quantity:   it.Quantity,
				UnitPrice:  it.UnitPrice,
				TotalPrice: it.TotalPrice,
			})
		}
		history.Orders = append(history.Orders, dto.OrderResponse{
			ID:             o.ID,
			CustomerID:     o.CustomerID,
			Items:          items,
			Subtotal:       o.Subtotal,
			DiscountType:   o.DiscountType,
			DiscountValue:  o.DiscountValue,
			DiscountAmount: o.DiscountAmount,
			ShippingFee:    o.ShippingFee,
			TotalAmount:    o.TotalAmount,
			Status:         o.Status,
			AppointmentID:  o.AppointmentID,
			CreatedBy:      o.CreatedBy,
			CreatedAt:      o.CreatedAt,
			UpdatedAt:      o.UpdatedAt,
		})
	}
	return history, nil
}

// Birthdays lista los clientes que cumplen años en el mes dado (1-12).
func (uc *CustomerUseCase) Birthdays(month int) ([]dto.CustomerResponse, error) {
	if month < 1 || month > 12 {
		return nil, domain.ErrInvalidInput
	}
	customers, err := uc.repo.ListByBirthMonth(month)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

// Delete borra un cliente. Solo admin (la ruta lo exige).
func (uc *CustomerUseCase) Delete(id string) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func validGender(g string) bool {
	return g == entity.GenderMale || g == entity.GenderFemale || g == entity.GenderOther
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Phone:       c.Phone,
		Email:       c.Email,
		LineID:      c.LineID,
		Gender:      c.Gender,
		DateOfBirth: c.DateOfBirth,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

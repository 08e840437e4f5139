package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/beautybook-api/internal/application/dto"
	"github.com/tu-usuario/beautybook-api/internal/domain"
	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

// ServiceUseCase casos de uso CRUD para el catálogo de servicios.
type ServiceUseCase struct {
	repo repository.ServiceRepository
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(repo repository.ServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

// Create crea un servicio. La duración en minutos debe ser positiva porque
// de ella se deriva el fin de las citas.
func (uc *ServiceUseCase) Create(in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if in.Name == "" || in.Duration < 1 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	service := &entity.Service{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Duration:    in.Duration,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.IsActive != nil {
		service.IsActive = *in.IsActive
	}
	if err := uc.repo.Create(service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// GetByID obtiene un servicio por ID.
func (uc *ServiceUseCase) GetByID(id string) (*dto.ServiceResponse, error) {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	return toServiceResponse(service), nil
}

// Update edita campos del servicio.
func (uc *ServiceUseCase) Update(id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		service.Name = *in.Name
	}
	if in.Description != nil {
		service.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		service.Price = *in.Price
	}
	if in.Duration != nil {
		if *in.Duration < 1 {
			return nil, domain.ErrInvalidInput
		}
		service.Duration = *in.Duration
	}
	if in.IsActive != nil {
		service.IsActive = *in.IsActive
	}
	service.UpdatedAt = time.Now()
	if err := uc.repo.Update(service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// List lista servicios, opcionalmente solo activos.
func (uc *ServiceUseCase) List(isActive *bool) ([]dto.ServiceResponse, error) {
	services, err := uc.repo.List(isActive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, *toServiceResponse(s))
	}
	return out, nil
}

// Delete borra un servicio.
func (uc *ServiceUseCase) Delete(id string) error {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if service == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Duration:    s.Duration,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

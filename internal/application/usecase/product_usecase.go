package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/beautybook-api/internal/application/dto"
	"github.com/tu-usuario/beautybook-api/internal/domain"
	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. CurrentStock se maneja
// exclusivamente vía movimientos; el CRUD nunca lo escribe.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un producto con stock 0; las existencias entran por movimientos.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SellingPrice.IsNegative() || in.CostPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Description:  in.Description,
		SellingPrice: in.SellingPrice,
		CostPrice:    in.CostPrice,
		Unit:         in.Unit,
		CurrentStock: 0,
		CategoryID:   in.CategoryID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.MinStockAlert != nil {
		product.MinStockAlert = *in.MinStockAlert
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	if in.IsDiscontinued != nil {
		product.IsDiscontinued = *in.IsDiscontinued
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update edita campos del producto. No admite CurrentStock: un descontinuado
// puede reactivarse aquí explícitamente (IsActive/IsDiscontinued), nunca de
// forma automática.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.SellingPrice != nil {
		if in.SellingPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.SellingPrice = *in.SellingPrice
	}
	if in.CostPrice != nil {
		if in.CostPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.CostPrice = *in.CostPrice
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.MinStockAlert != nil {
		product.MinStockAlert = *in.MinStockAlert
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = in.CategoryID
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	if in.IsDiscontinued != nil {
		product.IsDiscontinued = *in.IsDiscontinued
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con filtros de actividad y stock bajo.
func (uc *ProductUseCase) List(filter repository.ProductFilter) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Delete borra un producto.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		SellingPrice:   p.SellingPrice,
		CostPrice:      p.CostPrice,
		Unit:           p.Unit,
		CurrentStock:   p.CurrentStock,
		MinStockAlert:  p.MinStockAlert,
		CategoryID:     p.CategoryID,
		IsActive:       p.IsActive,
		IsDiscontinued: p.IsDiscontinued,
		LowStock:       p.LowStock(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

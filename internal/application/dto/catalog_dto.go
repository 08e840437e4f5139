package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateServiceRequest alta de servicio de catálogo.
type CreateServiceRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Duration    int             `json:"duration"` // minutos
	IsActive    *bool           `json:"isActive"`
}

// UpdateServiceRequest edición parcial de servicio.
type UpdateServiceRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Duration    *int             `json:"duration"`
	IsActive    *bool            `json:"isActive"`
}

// ServiceResponse servicio serializado.
type ServiceResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Duration    int             `json:"duration"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ServiceStatsResponse uso del servicio en órdenes y citas.
type ServiceStatsResponse struct {
	AppointmentCount int             `json:"appointmentCount"`
	OrderCount       int             `json:"orderCount"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
}

// CreateCategoryRequest alta de categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateCategoryRequest edición parcial de categoría.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CategoryResponse categoría serializada.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

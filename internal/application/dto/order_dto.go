package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de orden tal como llega del cliente.
// El precio unitario se toma del request tal cual (no se reprecia contra el
// catálogo); ver notas de diseño.
type OrderItemRequest struct {
	Type      string          `json:"type"` // product | service
	Item      string          `json:"item"` // id del producto o servicio
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// CreateOrderRequest alta de orden.
type CreateOrderRequest struct {
	Customer      string             `json:"customer"`
	Items         []OrderItemRequest `json:"items"`
	DiscountType  string             `json:"discountType"`
	DiscountValue decimal.Decimal    `json:"discountValue"`
	ShippingFee   decimal.Decimal    `json:"shippingFee"`
	AppointmentID *string            `json:"appointmentId"`
}

// UpdateOrderRequest reemplazo de líneas y recálculo de totales.
type UpdateOrderRequest struct {
	Customer      string             `json:"customer"`
	Items         []OrderItemRequest `json:"items"`
	DiscountType  string             `json:"discountType"`
	DiscountValue decimal.Decimal    `json:"discountValue"`
	ShippingFee   decimal.Decimal    `json:"shippingFee"`
}

// UpdateOrderStatusRequest asignación directa de estado (sin máquina de estados).
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse línea serializada con nombre resuelto.
type OrderItemResponse struct {
	Type       string          `json:"type"`
	ItemID     string          `json:"item"`
	ItemName   string          `json:"itemName"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// OrderResponse orden serializada.
type OrderResponse struct {
	ID             string              `json:"id"`
	CustomerID     string              `json:"customer"`
	CustomerName   string              `json:"customerName,omitempty"`
	CustomerPhone  string              `json:"customerPhone,omitempty"`
	Items          []OrderItemResponse `json:"items"`
	Subtotal       decimal.Decimal     `json:"subtotal"`
	DiscountType   string              `json:"discountType"`
	DiscountValue  decimal.Decimal     `json:"discountValue"`
	DiscountAmount decimal.Decimal     `json:"discountAmount"`
	ShippingFee    decimal.Decimal     `json:"shippingFee"`
	TotalAmount    decimal.Decimal     `json:"totalAmount"`
	Status         string              `json:"status"`
	Images         []string            `json:"images,omitempty"`
	AppointmentID  *string             `json:"appointmentId,omitempty"`
	CreatedBy      string              `json:"createdBy"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// OrderListResponse página de órdenes.
type OrderListResponse struct {
	Orders     []OrderResponse `json:"orders"`
	Pagination Pagination      `json:"pagination"`
}

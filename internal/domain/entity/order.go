package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden. Sin máquina de estados: cualquier transición es válida.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Tipos de descuento.
const (
	DiscountNone       = "none"
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// ItemKind discrimina la referencia de un ítem de orden.
type ItemKind string

const (
	ItemKindProduct ItemKind = "product"
	ItemKindService ItemKind = "service"
)

// ItemRef es la unión etiquetada {Product(ref) | Service(ref)}: un ítem de
// orden referencia exactamente una de las dos colecciones según Kind.
type ItemRef struct {
	Kind ItemKind
	ID   string
}

// Valid reporta si la referencia tiene tipo conocido e id no vacío.
func (r ItemRef) Valid() bool {
	return r.ID != "" && (r.Kind == ItemKindProduct || r.Kind == ItemKindService)
}

// IsProduct reporta si la referencia apunta a un producto (afecta inventario).
func (r ItemRef) IsProduct() bool { return r.Kind == ItemKindProduct }

// OrderItem es una línea embebida de la orden (sin identidad propia fuera de ella).
type OrderItem struct {
	Ref        ItemRef
	ItemName   string // nombre resuelto para mostrar; no participa en cálculos
	Quantity   int64  // >= 1
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal // Quantity × UnitPrice
}

// Order es una venta de mostrador: líneas de producto/servicio, descuento,
// envío y un vínculo opcional a la cita que la originó.
type Order struct {
	ID             string
	CustomerID     string
	Items          []OrderItem
	Subtotal       decimal.Decimal
	DiscountType   string
	DiscountValue  decimal.Decimal
	DiscountAmount decimal.Decimal
	ShippingFee    decimal.Decimal
	TotalAmount    decimal.Decimal
	Status         string
	Images         []string
	AppointmentID  *string
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

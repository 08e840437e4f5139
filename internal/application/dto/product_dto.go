package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto. El stock inicial siempre es 0:
// las existencias entran por movimientos, nunca por el CRUD.
type CreateProductRequest struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	SellingPrice   decimal.Decimal `json:"sellingPrice"`
	CostPrice      decimal.Decimal `json:"costPrice"`
	Unit           string          `json:"unit"`
	MinStockAlert  *int64          `json:"minStockAlert"`
	CategoryID     *string         `json:"category"`
	IsActive       *bool           `json:"isActive"`
	IsDiscontinued *bool           `json:"isDiscontinued"`
}

// UpdateProductRequest edición parcial; no admite CurrentStock.
type UpdateProductRequest struct {
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	SellingPrice   *decimal.Decimal `json:"sellingPrice"`
	CostPrice      *decimal.Decimal `json:"costPrice"`
	Unit           *string          `json:"unit"`
	MinStockAlert  *int64           `json:"minStockAlert"`
	CategoryID     *string          `json:"category"`
	IsActive       *bool            `json:"isActive"`
	IsDiscontinued *bool            `json:"isDiscontinued"`
}

// ProductResponse producto serializado.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	SellingPrice   decimal.Decimal `json:"sellingPrice"`
	CostPrice      decimal.Decimal `json:"costPrice"`
	Unit           string          `json:"unit"`
	CurrentStock   int64           `json:"currentStock"`
	MinStockAlert  int64           `json:"minStockAlert"`
	CategoryID     *string         `json:"category,omitempty"`
	IsActive       bool            `json:"isActive"`
	IsDiscontinued bool            `json:"isDiscontinued"`
	LowStock       bool            `json:"lowStock"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// StockChangeRequest entrada o ajuste manual de stock.
// En add la cantidad debe ser positiva; en adjust puede ser negativa.
type StockChangeRequest struct {
	Quantity int64  `json:"quantity"`
	Reason   string `json:"reason"`
	Notes    string `json:"notes"`
}

// MovementResponse entrada del ledger serializada.
type MovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product"`
	Type      string    `json:"type"`
	Quantity  int64     `json:"quantity"`
	Reason    string    `json:"reason"`
	Notes     string    `json:"notes,omitempty"`
	OrderID   *string   `json:"orderId,omitempty"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIn         = "in"
	MovementTypeOut        = "out"
	MovementTypeAdjustment = "adjustment"
)

// StockMovement es una entrada del libro mayor de inventario: append-only e
// inmutable una vez creada. Las salidas guardan cantidad negativa por
// convención. El balance vigente vive en Product.CurrentStock (lectura O(1));
// el ledger es la pista de auditoría, no la fuente de verdad.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string
	Quantity  int64 // con signo: negativo en salidas
	Reason    string
	Notes     string
	OrderID   *string
	CreatedBy string
	CreatedAt time.Time
}

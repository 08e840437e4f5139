package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/beautybook-api/internal/domain"
	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

// Razones estándar de movimientos generados por el motor de órdenes.
const (
	ReasonSale        = "Sale"
	ReasonSaleUpdated = "Sale (Updated)"
)

// DeltaInput describe una mutación de stock a registrar en el ledger.
type DeltaInput struct {
	ProductID string
	Delta     int64 // con signo; las ventas pasan -cantidad
	Type      string
	Reason    string
	Notes     string
	OrderID   *string
	Actor     string
}

// Manager es el único componente autorizado a mutar Product.CurrentStock.
// Cada mutación bloquea la fila del producto, aplica el delta con piso en
// cero y agrega la entrada correspondiente al ledger, todo dentro de la
// transacción vigente.
type Manager struct {
	txRunner TxRunner
	movRepo  repository.StockMovementRepository
}

// NewManager construye el gestor de inventario.
func NewManager(txRunner TxRunner, movRepo repository.StockMovementRepository) *Manager {
	return &Manager{txRunner: txRunner, movRepo: movRepo}
}

// ApplyDeltaTx aplica un delta usando los repositorios de la transacción del
// caller. El stock resultante es max(0, actual+delta): sobrevender está
// permitido pero el inventario nunca reporta negativo. Si el stock llega a 0
// el producto pasa a inactivo y descontinuado (transición de una sola vía).
func ApplyDeltaTx(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	in DeltaInput,
) (*entity.StockMovement, error) {
	product, err := productRepo.GetForUpdate(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	newStock := product.CurrentStock + in.Delta
	if newStock < 0 {
		newStock = 0
	}

	isActive := product.IsActive
	isDiscontinued := product.IsDiscontinued
	if newStock == 0 {
		isActive = false
		isDiscontinued = true
	}
	if err := productRepo.UpdateStock(in.ProductID, newStock, isActive, isDiscontinued); err != nil {
		return nil, err
	}

	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Delta,
		Reason:    in.Reason,
		Notes:     in.Notes,
		OrderID:   in.OrderID,
		CreatedBy: in.Actor,
		CreatedAt: time.Now(),
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// RevertDeltaTx devuelve cantidad al stock sin piso en cero: los reverts
// asumen que la deducción original fue válida. No reactiva un producto
// descontinuado; eso requiere intervención manual.
func RevertDeltaTx(productRepo repository.ProductRepository, productID string, quantity int64) error {
	product, err := productRepo.GetForUpdate(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return productRepo.UpdateStock(productID, product.CurrentStock+quantity, product.IsActive, product.IsDiscontinued)
}

// AddStock registra una entrada manual (tipo "in"). Cantidad estrictamente positiva.
func (m *Manager) AddStock(ctx context.Context, productID string, in DeltaInput) (*entity.StockMovement, error) {
	if in.Delta <= 0 || in.Reason == "" {
		return nil, domain.ErrInvalidInput
	}
	in.ProductID = productID
	in.Type = entity.MovementTypeIn
	var mov *entity.StockMovement
	err := m.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.StockMovementRepository) error {
		var err error
		mov, err = ApplyDeltaTx(productRepo, movRepo, in)
		return err
	})
	return mov, err
}

// AdjustStock registra un ajuste manual (tipo "adjustment"); el delta puede
// ser negativo y se aplica con piso en cero.
func (m *Manager) AdjustStock(ctx context.Context, productID string, in DeltaInput) (*entity.StockMovement, error) {
	if in.Delta == 0 || in.Reason == "" {
		return nil, domain.ErrInvalidInput
	}
	in.ProductID = productID
	in.Type = entity.MovementTypeAdjustment
	var mov *entity.StockMovement
	err := m.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.StockMovementRepository) error {
		var err error
		mov, err = ApplyDeltaTx(productRepo, movRepo, in)
		return err
	})
	return mov, err
}

// ListMovements lista el ledger con filtros de producto/tipo/fechas.
func (m *Manager) ListMovements(filter repository.MovementFilter) ([]*entity.StockMovement, int, error) {
	return m.movRepo.List(filter)
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/beautybook-api/internal/application/inventory"
	"github.com/tu-usuario/beautybook-api/internal/application/order"
	"github.com/tu-usuario/beautybook-api/internal/application/scheduling"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

// Ensure TxRunner implements the application tx ports.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ order.TxRunner = (*TxRunner)(nil)
var _ scheduling.TxRunner = (*TxRunner)(nil)

// Clave del advisory lock transaccional que serializa a los agendadores.
// El lock se libera solo en commit/rollback.
const schedulingLockKey = 7345001

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos de inventario atados a la
// tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx), NewStockMovementRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunOrder inicia una transacción con los repos que muta el motor de órdenes:
// orden, productos, ledger y el vínculo con la cita.
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	apptRepo repository.AppointmentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = fn(
		NewOrderRepository(tx),
		NewProductRepository(tx),
		NewStockMovementRepository(tx),
		NewAppointmentRepository(tx),
	)
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunScheduling inicia una transacción y toma el advisory lock de agenda
// antes de ejecutar fn: la verificación de solape y el insert/update de la
// cita quedan serializados frente a cualquier otra reserva concurrente.
func (r *TxRunner) RunScheduling(ctx context.Context, fn func(
	apptRepo repository.AppointmentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", schedulingLockKey); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}
	if err := fn(NewAppointmentRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

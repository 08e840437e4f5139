package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, product_id, type, quantity, reason, notes, order_id, created_by, created_at`

// StockMovementRepo implementación del libro mayor sobre PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste una entrada del ledger.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, product_id, type, quantity, reason, notes, order_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Type, movement.Quantity,
		movement.Reason, movement.Notes, movement.OrderID, movement.CreatedBy, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// List lista el ledger con filtros y devuelve el total sin paginar.
func (r *StockMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		where += fmt.Sprintf(" AND product_id = $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		where += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		where += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where += fmt.Sprintf(" AND created_at < $%d", len(args))
	}

	var total int
	if err := r.q.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM stock_movements"+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock movements: %w", err)
	}

	query := `SELECT ` + movementColumns + ` FROM stock_movements` + where + ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	movements, err := scanMovements(rows)
	if err != nil {
		return nil, 0, err
	}
	return movements, total, nil
}

// ListByOrder lista las entradas generadas por una orden, en orden de inserción.
func (r *StockMovementRepo) ListByOrder(orderID string) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+movementColumns+` FROM stock_movements WHERE order_id = $1 ORDER BY created_at ASC`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("list movements by order: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// DeleteByOrder borra en bloque las entradas de una orden (update/delete de la orden).
func (r *StockMovementRepo) DeleteByOrder(orderID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM stock_movements WHERE order_id = $1`, orderID,
	)
	if err != nil {
		return fmt.Errorf("delete movements by order: %w", err)
	}
	return nil
}

func scanMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	var movements []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Reason, &m.Notes,
			&m.OrderID, &m.CreatedBy, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		movements = append(movements, &m)
	}
	return movements, rows.Err()
}

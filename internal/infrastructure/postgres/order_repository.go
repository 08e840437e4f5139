package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, customer_id, subtotal, discount_type, discount_value, discount_amount,
	shipping_fee, total_amount, status, images, appointment_id, created_by, created_at, updated_at`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL
// (usable con pool o tx). Las líneas viven en order_items y se cargan y
// reescriben junto con la cabecera.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste cabecera y líneas.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, customer_id, subtotal, discount_type, discount_value, discount_amount,
			shipping_fee, total_amount, status, images, appointment_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CustomerID, order.Subtotal, order.DiscountType, order.DiscountValue,
		order.DiscountAmount, order.ShippingFee, order.TotalAmount, order.Status,
		order.Images, order.AppointmentID, order.CreatedBy, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return r.insertItems(order)
}

// GetByID obtiene una orden con sus líneas.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	var o entity.Order
	err := r.q.QueryRow(context.Background(),
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id,
	).Scan(
		&o.ID, &o.CustomerID, &o.Subtotal, &o.DiscountType, &o.DiscountValue, &o.DiscountAmount,
		&o.ShippingFee, &o.TotalAmount, &o.Status, &o.Images, &o.AppointmentID,
		&o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := r.loadItems(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

// Update reescribe cabecera y líneas (las líneas son propiedad de la orden).
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders SET customer_id = $2, subtotal = $3, discount_type = $4, discount_value = $5,
			discount_amount = $6, shipping_fee = $7, total_amount = $8, status = $9,
			appointment_id = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CustomerID, order.Subtotal, order.DiscountType, order.DiscountValue,
		order.DiscountAmount, order.ShippingFee, order.TotalAmount, order.Status,
		order.AppointmentID, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM order_items WHERE order_id = $1`, order.ID,
	); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	return r.insertItems(order)
}

// UpdateStatus asigna el estado directamente.
func (r *OrderRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, id, status,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// UpdateImages reemplaza el arreglo de URLs de imágenes.
func (r *OrderRepo) UpdateImages(id string, images []string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET images = $2, updated_at = now() WHERE id = $1`, id, images,
	)
	if err != nil {
		return fmt.Errorf("update order images: %w", err)
	}
	return nil
}

// List lista órdenes con filtros y total sin paginar. Search busca por
// nombre o teléfono del cliente.
func (r *OrderRepo) List(filter repository.OrderFilter) ([]*entity.Order, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		where += fmt.Sprintf(" AND o.customer_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND o.status = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM customers c WHERE c.id = o.customer_id AND (c.name ILIKE $%d OR c.phone ILIKE $%d))", len(args), len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		where += fmt.Sprintf(" AND o.created_at >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where += fmt.Sprintf(" AND o.created_at < $%d", len(args))
	}

	var total int
	if err := r.q.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM orders o"+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	query := `SELECT ` + orderColumnsPrefixed + ` FROM orders o` + where + ` ORDER BY o.created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	orders, err := r.queryOrders(query, args...)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// ListByCustomer lista las órdenes recientes de un cliente.
func (r *OrderRepo) ListByCustomer(customerID string, limit int) ([]*entity.Order, error) {
	return r.queryOrders(
		`SELECT `+orderColumnsPrefixed+` FROM orders o WHERE o.customer_id = $1 ORDER BY o.created_at DESC LIMIT $2`,
		customerID, limit,
	)
}

// Delete borra la orden; las líneas caen en cascada. No toca el ledger.
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

const orderColumnsPrefixed = `o.id, o.customer_id, o.subtotal, o.discount_type, o.discount_value,
	o.discount_amount, o.shipping_fee, o.total_amount, o.status, o.images, o.appointment_id,
	o.created_by, o.created_at, o.updated_at`

func (r *OrderRepo) queryOrders(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.Subtotal, &o.DiscountType, &o.DiscountValue, &o.DiscountAmount,
			&o.ShippingFee, &o.TotalAmount, &o.Status, &o.Images, &o.AppointmentID,
			&o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range orders {
		if err := r.loadItems(o); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *OrderRepo) insertItems(order *entity.Order) error {
	for i, it := range order.Items {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO order_items (order_id, position, item_kind, item_id, item_name, quantity, unit_price, total_price)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			order.ID, i, string(it.Ref.Kind), it.Ref.ID, it.ItemName,
			it.Quantity, it.UnitPrice, it.TotalPrice,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

func (r *OrderRepo) loadItems(order *entity.Order) error {
	rows, err := r.q.Query(context.Background(), `
		SELECT item_kind, item_id, item_name, quantity, unit_price, total_price
		FROM order_items WHERE order_id = $1 ORDER BY position ASC`,
		order.ID,
	)
	if err != nil {
		return fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()

	order.Items = order.Items[:0]
	for rows.Next() {
		var it entity.OrderItem
		var kind string
		if err := rows.Scan(&kind, &it.Ref.ID, &it.ItemName, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		it.Ref.Kind = entity.ItemKind(kind)
		order.Items = append(order.Items, it)
	}
	return rows.Err()
}

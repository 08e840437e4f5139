package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de agregación de solo lectura. Las órdenes canceladas
// no cuentan como ingreso.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// formatos de agrupación por período para to_char.
var periodFormats = map[string]string{
	"day":   "YYYY-MM-DD",
	"week":  `IYYY-"W"IW`,
	"month": "YYYY-MM",
	"year":  "YYYY",
}

// Revenue agrupa ingresos por período y devuelve la serie más el resumen del rango.
func (r *ReportRepo) Revenue(from, to *time.Time, period string) ([]repository.RevenuePoint, *repository.RevenueSummary, error) {
	format, ok := periodFormats[period]
	if !ok {
		format = periodFormats["day"]
	}

	where := " WHERE o.status <> 'cancelled'"
	args := []any{format}
	if from != nil {
		args = append(args, *from)
		where += fmt.Sprintf(" AND o.created_at >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		where += fmt.Sprintf(" AND o.created_at < $%d", len(args))
	}

	query := `
		SELECT to_char(o.created_at, $1) AS period,
		       COALESCE(SUM(o.total_amount), 0) AS total_revenue,
		       COUNT(*) AS total_orders,
		       COALESCE(AVG(o.total_amount), 0) AS average_order
		FROM orders o` + where + `
		GROUP BY period
		ORDER BY period ASC`

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("revenue report: %w", err)
	}
	defer rows.Close()

	var points []repository.RevenuePoint
	for rows.Next() {
		var p repository.RevenuePoint
		if err := rows.Scan(&p.Period, &p.TotalRevenue, &p.TotalOrders, &p.AverageOrder); err != nil {
			return nil, nil, fmt.Errorf("scan revenue point: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	summary := &repository.RevenueSummary{}
	for _, p := range points {
		summary.Total = summary.Total.Add(p.TotalRevenue)
		summary.Count += p.TotalOrders
	}
	return points, summary, nil
}

// TopSelling agrega las líneas de órdenes no canceladas por ítem.
func (r *ReportRepo) TopSelling(from, to *time.Time, itemType string, limit int) ([]repository.TopSellingRow, error) {
	where := " WHERE o.status <> 'cancelled'"
	args := []any{}
	if itemType != "" {
		args = append(args, itemType)
		where += fmt.Sprintf(" AND oi.item_kind = $%d", len(args))
	}
	if from != nil {
		args = append(args, *from)
		where += fmt.Sprintf(" AND o.created_at >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		where += fmt.Sprintf(" AND o.created_at < $%d", len(args))
	}
	args = append(args, limit)

	query := `
		SELECT oi.item_id, oi.item_kind, MAX(oi.item_name) AS item_name,
		       COALESCE(SUM(oi.quantity), 0) AS total_quantity,
		       COALESCE(SUM(oi.total_price), 0) AS total_revenue,
		       COUNT(DISTINCT o.id) AS order_count
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id` + where + `
		GROUP BY oi.item_id, oi.item_kind
		ORDER BY total_quantity DESC
		LIMIT $` + fmt.Sprint(len(args))

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("top selling report: %w", err)
	}
	defer rows.Close()

	var out []repository.TopSellingRow
	for rows.Next() {
		var row repository.TopSellingRow
		if err := rows.Scan(&row.ItemID, &row.ItemType, &row.ItemName, &row.TotalQuantity, &row.TotalRevenue, &row.OrderCount); err != nil {
			return nil, fmt.Errorf("scan top selling row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// CustomerStats ranking de clientes por gasto en el rango.
func (r *ReportRepo) CustomerStats(from, to *time.Time, limit int) ([]repository.CustomerStatsRow, error) {
	where := " WHERE o.status <> 'cancelled'"
	args := []any{}
	if from != nil {
		args = append(args, *from)
		where += fmt.Sprintf(" AND o.created_at >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		where += fmt.Sprintf(" AND o.created_at < $%d", len(args))
	}
	args = append(args, limit)

	query := `
		SELECT c.id, c.name, c.phone,
		       COUNT(o.id) AS order_count,
		       COALESCE(SUM(o.total_amount), 0) AS total_spent,
		       MAX(o.created_at) AS last_order
		FROM customers c
		JOIN orders o ON o.customer_id = c.id` + where + `
		GROUP BY c.id, c.name, c.phone
		ORDER BY total_spent DESC
		LIMIT $` + fmt.Sprint(len(args))

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("customer stats report: %w", err)
	}
	defer rows.Close()

	var out []repository.CustomerStatsRow
	for rows.Next() {
		var row repository.CustomerStatsRow
		if err := rows.Scan(&row.CustomerID, &row.Name, &row.Phone, &row.OrderCount, &row.TotalSpent, &row.LastOrder); err != nil {
			return nil, fmt.Errorf("scan customer stats row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// NewCustomers cuenta clientes creados dentro del rango.
func (r *ReportRepo) NewCustomers(from, to *time.Time) (int, error) {
	where := " WHERE 1=1"
	args := []any{}
	if from != nil {
		args = append(args, *from)
		where += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		where += fmt.Sprintf(" AND created_at < $%d", len(args))
	}
	var count int
	err := r.pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM customers"+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("new customers report: %w", err)
	}
	return count, nil
}

// ServiceStats uso de un servicio en citas no canceladas y órdenes no canceladas.
func (r *ReportRepo) ServiceStats(serviceID string) (*repository.ServiceStatsRow, error) {
	var row repository.ServiceStatsRow
	err := r.pool.QueryRow(context.Background(), `
		SELECT
			(SELECT COUNT(*) FROM appointments WHERE service_id = $1 AND status <> 'cancelled'),
			(SELECT COUNT(DISTINCT o.id)
			 FROM order_items oi JOIN orders o ON o.id = oi.order_id
			 WHERE oi.item_kind = 'service' AND oi.item_id = $1 AND o.status <> 'cancelled'),
			(SELECT COALESCE(SUM(oi.total_price), 0)
			 FROM order_items oi JOIN orders o ON o.id = oi.order_id
			 WHERE oi.item_kind = 'service' AND oi.item_id = $1 AND o.status <> 'cancelled')`,
		serviceID,
	).Scan(&row.AppointmentCount, &row.OrderCount, &row.TotalRevenue)
	if err != nil {
		return nil, fmt.Errorf("service stats report: %w", err)
	}
	return &row, nil
}

// Inventory estado del inventario con valor de stock (stock × costo).
func (r *ReportRepo) Inventory() ([]repository.InventoryReportRow, error) {
	rows, err := r.pool.Query(context.Background(), `
		SELECT id, name, unit, current_stock, min_stock_alert, cost_price, selling_price,
		       current_stock * cost_price AS stock_value,
		       current_stock <= min_stock_alert AS low_stock
		FROM products
		ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("inventory report: %w", err)
	}
	defer rows.Close()

	var out []repository.InventoryReportRow
	for rows.Next() {
		var row repository.InventoryReportRow
		if err := rows.Scan(
			&row.ProductID, &row.Name, &row.Unit, &row.CurrentStock, &row.MinStockAlert,
			&row.CostPrice, &row.SellingPrice, &row.StockValue, &row.LowStock,
		); err != nil {
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Dashboard contadores de la portada calculados respecto a now.
func (r *ReportRepo) Dashboard(now time.Time) (*repository.DashboardOverview, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var d repository.DashboardOverview
	err := r.pool.QueryRow(context.Background(), `
		SELECT
			(SELECT COALESCE(SUM(total_amount), 0) FROM orders
			 WHERE status <> 'cancelled' AND created_at >= $1 AND created_at < $2),
			(SELECT COUNT(*) FROM orders WHERE created_at >= $1 AND created_at < $2),
			(SELECT COUNT(*) FROM appointments
			 WHERE status <> 'cancelled' AND start_time >= $1 AND start_time < $2),
			(SELECT COUNT(*) FROM reminders WHERE status = 'pending'),
			(SELECT COUNT(*) FROM products WHERE is_active AND current_stock <= min_stock_alert),
			(SELECT COUNT(*) FROM customers),
			(SELECT COALESCE(SUM(total_amount), 0) FROM orders
			 WHERE status <> 'cancelled' AND created_at >= $3 AND created_at < $2)`,
		dayStart, dayEnd, monthStart,
	).Scan(
		&d.TodayRevenue, &d.TodayOrders, &d.TodayAppointments,
		&d.PendingReminders, &d.LowStockProducts, &d.TotalCustomers, &d.MonthRevenue,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard report: %w", err)
	}
	return &d, nil
}

package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenuePoint es un punto de la serie de ingresos agrupada por período.
type RevenuePoint struct {
	Period       string // 2024-05-03, 2024-W18, 2024-05, 2024 según agrupación
	TotalRevenue decimal.Decimal
	TotalOrders  int
	AverageOrder decimal.Decimal
}

// RevenueSummary es el total del rango consultado.
type RevenueSummary struct {
	Total decimal.Decimal
	Count int
}

// TopSellingRow es un ítem del ranking de más vendidos.
type TopSellingRow struct {
	ItemID        string
	ItemType      string // product | service
	ItemName      string
	TotalQuantity int64
	TotalRevenue  decimal.Decimal
	OrderCount    int
}

// CustomerStatsRow resume la actividad de un cliente en el rango.
type CustomerStatsRow struct {
	CustomerID string
	Name       string
	Phone      string
	OrderCount int
	TotalSpent decimal.Decimal
	LastOrder  *time.Time
}

// InventoryReportRow es una fila del reporte de inventario.
type InventoryReportRow struct {
	ProductID     string
	Name          string
	Unit          string
	CurrentStock  int64
	MinStockAlert int64
	CostPrice     decimal.Decimal
	SellingPrice  decimal.Decimal
	StockValue    decimal.Decimal // currentStock × costPrice
	LowStock      bool
}

// ServiceStatsRow resume el uso de un servicio en citas y órdenes.
type ServiceStatsRow struct {
	AppointmentCount int
	OrderCount       int
	TotalRevenue     decimal.Decimal
}

// DashboardOverview son los contadores de la portada.
type DashboardOverview struct {
	TodayRevenue      decimal.Decimal
	TodayOrders       int
	TodayAppointments int
	PendingReminders  int
	LowStockProducts  int
	TotalCustomers    int
	MonthRevenue      decimal.Decimal
}

// ReportRepository define el puerto de consultas de agregación (solo lectura).
type ReportRepository interface {
	Revenue(from, to *time.Time, period string) ([]RevenuePoint, *RevenueSummary, error)
	TopSelling(from, to *time.Time, itemType string, limit int) ([]TopSellingRow, error)
	CustomerStats(from, to *time.Time, limit int) ([]CustomerStatsRow, error)
	NewCustomers(from, to *time.Time) (int, error)
	ServiceStats(serviceID string) (*ServiceStatsRow, error)
	Inventory() ([]InventoryReportRow, error)
	Dashboard(now time.Time) (*DashboardOverview, error)
}

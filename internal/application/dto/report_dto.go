package dto

import "github.com/shopspring/decimal"

// RevenuePointDTO punto de la serie de ingresos.
type RevenuePointDTO struct {
	Period       string          `json:"period"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalOrders  int             `json:"totalOrders"`
	AverageOrder decimal.Decimal `json:"averageOrderValue"`
}

// RevenueReportResponse serie más resumen del rango.
type RevenueReportResponse struct {
	RevenueData []RevenuePointDTO `json:"revenueData"`
	Summary     struct {
		Total decimal.Decimal `json:"total"`
		Count int             `json:"count"`
	} `json:"summary"`
}

// TopSellingDTO ítem del ranking de más vendidos.
type TopSellingDTO struct {
	ItemID        string          `json:"item"`
	ItemType      string          `json:"type"`
	ItemName      string          `json:"name"`
	TotalQuantity int64           `json:"totalQuantity"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	OrderCount    int             `json:"orderCount"`
}

// CustomerReportResponse retención y ranking de clientes.
type CustomerReportResponse struct {
	NewCustomers int                `json:"newCustomers"`
	TopCustomers []CustomerStatsDTO `json:"topCustomers"`
}

// CustomerStatsDTO actividad de un cliente en el rango.
type CustomerStatsDTO struct {
	CustomerID string          `json:"customer"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	OrderCount int             `json:"orderCount"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
	LastOrder  string          `json:"lastOrder,omitempty"`
}

// InventoryReportDTO fila del reporte de inventario.
type InventoryReportDTO struct {
	ProductID     string          `json:"product"`
	Name          string          `json:"name"`
	Unit          string          `json:"unit"`
	CurrentStock  int64           `json:"currentStock"`
	MinStockAlert int64           `json:"minStockAlert"`
	CostPrice     decimal.Decimal `json:"costPrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	StockValue    decimal.Decimal `json:"stockValue"`
	LowStock      bool            `json:"lowStock"`
}

// DashboardResponse contadores de portada.
type DashboardResponse struct {
	TodayRevenue      decimal.Decimal `json:"todayRevenue"`
	TodayOrders       int             `json:"todayOrders"`
	TodayAppointments int             `json:"todayAppointments"`
	PendingReminders  int             `json:"pendingReminders"`
	LowStockProducts  int             `json:"lowStockProducts"`
	TotalCustomers    int             `json:"totalCustomers"`
	MonthRevenue      decimal.Decimal `json:"monthRevenue"`
}

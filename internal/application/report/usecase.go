package report

import (
	"time"

	"github.com/tu-usuario/beautybook-api/internal/application/dto"
	"github.com/tu-usuario/beautybook-api/internal/domain"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

// Agrupaciones válidas de la serie de ingresos.
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// InventoryExporter vuelca el reporte de inventario a un archivo Excel.
type InventoryExporter interface {
	Export(rows []repository.InventoryReportRow) ([]byte, error)
}

// UseCase expone los reportes de negocio: ingresos, más vendidos, clientes,
// inventario y el dashboard. Solo lectura; las agregaciones viven en SQL.
type UseCase struct {
	repo     repository.ReportRepository
	exporter InventoryExporter
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(repo repository.ReportRepository, exporter InventoryExporter) *UseCase {
	return &UseCase{repo: repo, exporter: exporter}
}

// Revenue devuelve la serie de ingresos agrupada por período más el resumen.
func (uc *UseCase) Revenue(from, to *time.Time, period string) (*dto.RevenueReportResponse, error) {
	switch period {
	case "":
		period = PeriodDay
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
	default:
		return nil, domain.ErrInvalidInput
	}
	points, summary, err := uc.repo.Revenue(from, to, period)
	if err != nil {
		return nil, err
	}
	resp := &dto.RevenueReportResponse{
		RevenueData: make([]dto.RevenuePointDTO, 0, len(points)),
	}
	for _, p := range points {
		resp.RevenueData = append(resp.RevenueData, dto.RevenuePointDTO{
			Period:       p.Period,
			TotalRevenue: p.TotalRevenue,
			TotalOrders:  p.TotalOrders,
			AverageOrder: p.AverageOrder,
		})
	}
	if summary != nil {
		resp.Summary.Total = summary.Total
		resp.Summary.Count = summary.Count
	}
	return resp, nil
}

// TopSelling devuelve el ranking de productos/servicios más vendidos.
func (uc *UseCase) TopSelling(from, to *time.Time, itemType string, limit int) ([]dto.TopSellingDTO, error) {
	switch itemType {
	case "", "product", "service":
	default:
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = 10
	}
	rows, err := uc.repo.TopSelling(from, to, itemType, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopSellingDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopSellingDTO{
			ItemID:        r.ItemID,
			ItemType:      r.ItemType,
			ItemName:      r.ItemName,
			TotalQuantity: r.TotalQuantity,
			TotalRevenue:  r.TotalRevenue,
			OrderCount:    r.OrderCount,
		})
	}
	return out, nil
}

// Customers combina clientes nuevos del rango con el ranking por gasto.
func (uc *UseCase) Customers(from, to *time.Time, limit int) (*dto.CustomerReportResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	newCount, err := uc.repo.NewCustomers(from, to)
	if err != nil {
		return nil, err
	}
	rows, err := uc.repo.CustomerStats(from, to, limit)
	if err != nil {
		return nil, err
	}
	resp := &dto.CustomerReportResponse{
		NewCustomers: newCount,
		TopCustomers: make([]dto.CustomerStatsDTO, 0, len(rows)),
	}
	for _, r := range rows {
		d := dto.CustomerStatsDTO{
			CustomerID: r.CustomerID,
			Name:       r.Name,
			Phone:      r.Phone,
			OrderCount: r.OrderCount,
			TotalSpent: r.TotalSpent,
		}
		if r.LastOrder != nil {
			d.LastOrder = r.LastOrder.Format(time.RFC3339)
		}
		resp.TopCustomers = append(resp.TopCustomers, d)
	}
	return resp, nil
}

// ServiceStats devuelve el uso de un servicio en citas y órdenes.
func (uc *UseCase) ServiceStats(serviceID string) (*dto.ServiceStatsResponse, error) {
	row, err := uc.repo.ServiceStats(serviceID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.ServiceStatsResponse{
		AppointmentCount: row.AppointmentCount,
		OrderCount:       row.OrderCount,
		TotalRevenue:     row.TotalRevenue,
	}, nil
}

// Inventory devuelve el estado del inventario con valor de stock por producto.
func (uc *UseCase) Inventory() ([]dto.InventoryReportDTO, error) {
	rows, err := uc.repo.Inventory()
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryReportDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.InventoryReportDTO{
			ProductID:     r.ProductID,
			Name:          r.Name,
			Unit:          r.Unit,
			CurrentStock:  r.CurrentStock,
			MinStockAlert: r.MinStockAlert,
			CostPrice:     r.CostPrice,
			SellingPrice:  r.SellingPrice,
			StockValue:    r.StockValue,
			LowStock:      r.LowStock,
		})
	}
	return out, nil
}

// InventoryExcel exporta el reporte de inventario a un .xlsx.
func (uc *UseCase) InventoryExcel() ([]byte, error) {
	rows, err := uc.repo.Inventory()
	if err != nil {
		return nil, err
	}
	return uc.exporter.Export(rows)
}

// Dashboard devuelve los contadores de la portada.
func (uc *UseCase) Dashboard(now time.Time) (*dto.DashboardResponse, error) {
	overview, err := uc.repo.Dashboard(now)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		TodayRevenue:      overview.TodayRevenue,
		TodayOrders:       overview.TodayOrders,
		TodayAppointments: overview.TodayAppointments,
		PendingReminders:  overview.PendingReminders,
		LowStockProducts:  overview.LowStockProducts,
		TotalCustomers:    overview.TotalCustomers,
		MonthRevenue:      overview.MonthRevenue,
	}, nil
}

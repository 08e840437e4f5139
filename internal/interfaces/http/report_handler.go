package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/beautybook-api/internal/application/report"
)

// ReportHandler maneja los reportes agregados y el dashboard.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Revenue godoc
// @Summary      Reporte de ingresos agrupado por período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "fecha desde (YYYY-MM-DD)"
// @Param        to      query  string  false  "fecha hasta (YYYY-MM-DD)"
// @Param        period  query  string  false  "day | week | month | year"  default(day)
// @Success      200     {object}  dto.RevenueReportResponse
// @Router       /api/reports/revenue [get]
func (h *ReportHandler) Revenue(c *fiber.Ctx) error {
	from, err := parseDateQuery(c.Query("from"))
	if err != nil {
		return badRequest(c, "fecha 'from' inválida")
	}
	to, err := parseDateQuery(c.Query("to"))
	if err != nil {
		return badRequest(c, "fecha 'to' inválida")
	}
	out, err := h.uc.Revenue(from, to, c.Query("period"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "report": out})
}

// TopSelling godoc
// @Summary      Productos/servicios más vendidos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from   query  string  false  "fecha desde (YYYY-MM-DD)"
// @Param        to     query  string  false  "fecha hasta (YYYY-MM-DD)"
// @Param        type   query  string  false  "product | service"
// @Param        limit  query  int     false  "máximo de filas"  default(10)
// @Success      200    {array}  dto.TopSellingDTO
// @Router       /api/reports/top-selling [get]
func (h *ReportHandler) TopSelling(c *fiber.Ctx) error {
	from, err := parseDateQuery(c.Query("from"))
	if err != nil {
		return badRequest(c, "fecha 'from' inválida")
	}
	to, err := parseDateQuery(c.Query("to"))
	if err != nil {
		return badRequest(c, "fecha 'to' inválida")
	}
	out, err := h.uc.TopSelling(from, to, c.Query("type"), c.QueryInt("limit", 10))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "items": out})
}

// Customers godoc
// @Summary      Reporte de clientes (nuevos vs recurrentes, top por gasto)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from   query  string  false  "fecha desde (YYYY-MM-DD)"
// @Param        to     query  string  false  "fecha hasta (YYYY-MM-DD)"
// @Param        limit  query  int     false  "máximo de filas"  default(10)
// @Success      200    {object}  dto.CustomerReportResponse
// @Router       /api/reports/customers [get]
func (h *ReportHandler) Customers(c *fiber.Ctx) error {
	from, err := parseDateQuery(c.Query("from"))
	if err != nil {
		return badRequest(c, "fecha 'from' inválida")
	}
	to, err := parseDateQuery(c.Query("to"))
	if err != nil {
		return badRequest(c, "fecha 'to' inválida")
	}
	out, err := h.uc.Customers(from, to, c.QueryInt("limit", 10))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "report": out})
}

// Inventory godoc
// @Summary      Reporte de inventario valorizado
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InventoryReportDTO
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.Inventory()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "inventory": out})
}

// InventoryExcel godoc
// @Summary      Reporte de inventario en Excel
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/reports/inventory.xlsx [get]
func (h *ReportHandler) InventoryExcel(c *fiber.Ctx) error {
	data, err := h.uc.InventoryExcel()
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.xlsx"`)
	return c.Send(data)
}

// Dashboard godoc
// @Summary      Resumen del día y del mes para el tablero
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(time.Now())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "dashboard": out})
}

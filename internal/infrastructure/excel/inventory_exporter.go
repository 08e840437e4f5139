// Package excel exporta el reporte de inventario a .xlsx con excelize.
package excel

import (
	"bytes"
	"fmt"

	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
	"github.com/xuri/excelize/v2"
)

// InventoryExporter implementa report.InventoryExporter.
type InventoryExporter struct{}

// NewInventoryExporter construye el exportador.
func NewInventoryExporter() *InventoryExporter { return &InventoryExporter{} }

var headers = []string{
	"Producto", "Unidad", "Stock actual", "Alerta mínima",
	"Costo", "Precio venta", "Valor de stock", "Stock bajo",
}

// Export vuelca las filas del reporte en una hoja "Inventario".
func (e *InventoryExporter) Export(rows []repository.InventoryReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Inventario"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("excel: borrar hoja por defecto: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("excel: encabezado: %w", err)
		}
	}

	for i, r := range rows {
		lowStock := "No"
		if r.LowStock {
			lowStock = "Sí"
		}
		values := []any{
			r.Name, r.Unit, r.CurrentStock, r.MinStockAlert,
			r.CostPrice.StringFixed(2), r.SellingPrice.StringFixed(2),
			r.StockValue.StringFixed(2), lowStock,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("excel: fila %d: %w", i+2, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir archivo: %w", err)
	}
	return buf.Bytes(), nil
}

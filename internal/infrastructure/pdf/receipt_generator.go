// Package pdf genera el recibo de venta de una orden con Maroto v2.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 110, Green: 60, Blue: 160}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReceiptGenerator implementa order.ReceiptGenerator usando Maroto v2.
type ReceiptGenerator struct{}

// NewReceiptGenerator construye el generador.
func NewReceiptGenerator() *ReceiptGenerator { return &ReceiptGenerator{} }

// Receipt genera el PDF del recibo y devuelve sus bytes.
func (g *ReceiptGenerator) Receipt(order *entity.Order, customer *entity.Customer, settings *entity.Settings) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de venta", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order, settings))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, it := range order.Items {
		m.AddRows(itemRow(it, settings.Currency))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range totalRows(order, settings.Currency) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(order *entity.Order, settings *entity.Settings) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(settings.BusinessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(settings.BusinessPhone, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("RECIBO DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(order.ID, props.Text{Size: 8, Align: align.Right, Top: 7, Color: colorGray}),
			text.New(order.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 12,
			}),
		),
	)
}

func customerRow(customer *entity.Customer) core.Row {
	name, phone := "", ""
	if customer != nil {
		name, phone = customer.Name, customer.Phone
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Cliente: "+name, props.Text{Size: 9, Top: 1}),
			text.New("Tel: "+phone, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	return row.New(6).Add(
		col.New(6).Add(text.New("Descripción", header)),
		col.New(2).Add(text.New("Cant.", mergeAlign(header, align.Right))),
		col.New(2).Add(text.New("P.Unit", mergeAlign(header, align.Right))),
		col.New(2).Add(text.New("Total", mergeAlign(header, align.Right))),
	)
}

func itemRow(it entity.OrderItem, currency string) core.Row {
	cell := props.Text{Size: 8}
	return row.New(5).Add(
		col.New(6).Add(text.New(it.ItemName, cell)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", it.Quantity), mergeAlign(cell, align.Right))),
		col.New(2).Add(text.New(money(it.UnitPrice, currency), mergeAlign(cell, align.Right))),
		col.New(2).Add(text.New(money(it.TotalPrice, currency), mergeAlign(cell, align.Right))),
	)
}

func totalRows(order *entity.Order, currency string) []core.Row {
	label := props.Text{Size: 8, Align: align.Right, Color: colorGray}
	value := props.Text{Size: 8, Align: align.Right}
	rows := []core.Row{
		row.New(5).Add(
			col.New(10).Add(text.New("Subtotal", label)),
			col.New(2).Add(text.New(money(order.Subtotal, currency), value)),
		),
	}
	if order.DiscountType != entity.DiscountNone {
		rows = append(rows, row.New(5).Add(
			col.New(10).Add(text.New("Descuento", label)),
			col.New(2).Add(text.New("-"+money(order.DiscountAmount, currency), value)),
		))
	}
	if !order.ShippingFee.IsZero() {
		rows = append(rows, row.New(5).Add(
			col.New(10).Add(text.New("Envío", label)),
			col.New(2).Add(text.New(money(order.ShippingFee, currency), value)),
		))
	}
	rows = append(rows, row.New(7).Add(
		col.New(10).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1,
		})),
		col.New(2).Add(text.New(money(order.TotalAmount, currency), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
		})),
	))
	return rows
}

func money(d decimal.Decimal, currency string) string {
	return d.StringFixed(2) + " " + currency
}

func mergeAlign(t props.Text, a align.Type) props.Text {
	t.Align = a
	return t
}

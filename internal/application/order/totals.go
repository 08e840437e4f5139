package order

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
)

// Totals es el resultado del cálculo monetario de una orden.
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
}

// ComputeTotals calcula subtotal, descuento y total de una orden.
// Función pura: mismas líneas y parámetros -> mismos montos.
//
// El descuento NO se acota: un fijo mayor al subtotal o un porcentaje fuera
// de [0,100] produce el total que la aritmética diga, incluso negativo. El
// operador es responsable de lo que teclea.
func ComputeTotals(items []entity.OrderItem, discountType string, discountValue, shippingFee decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.TotalPrice)
	}

	var discountAmount decimal.Decimal
	switch discountType {
	case entity.DiscountPercentage:
		discountAmount = subtotal.Mul(discountValue).Div(decimal.NewFromInt(100))
	case entity.DiscountFixed:
		discountAmount = discountValue
	default:
		discountAmount = decimal.Zero
	}

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		TotalAmount:    subtotal.Sub(discountAmount).Add(shippingFee),
	}
}

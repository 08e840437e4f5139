package order_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/beautybook-api/internal/application/order"
	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func item(qty int64, unitPrice string) entity.OrderItem {
	price := decimal.RequireFromString(unitPrice)
	return entity.OrderItem{
		Ref:        entity.ItemRef{Kind: entity.ItemKindProduct, ID: "p1"},
		Quantity:   qty,
		UnitPrice:  price,
		TotalPrice: price.Mul(decimal.NewFromInt(qty)),
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Tests ComputeTotals
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeTotals_SinDescuento(t *testing.T) {
	got := order.ComputeTotals(
		[]entity.OrderItem{item(2, "150.00"), item(1, "200.00")},
		entity.DiscountNone, decimal.Zero, decimal.Zero,
	)

	assert.True(t, dec("500.00").Equal(got.Subtotal), "subtotal = 2×150 + 200")
	assert.True(t, got.DiscountAmount.IsZero())
	assert.True(t, dec("500.00").Equal(got.TotalAmount))
}

func TestComputeTotals_DescuentoPorcentaje(t *testing.T) {
	got := order.ComputeTotals(
		[]entity.OrderItem{item(2, "150.00"), item(1, "200.00")},
		entity.DiscountPercentage, dec("10"), dec("20.00"),
	)

	assert.True(t, dec("500.00").Equal(got.Subtotal))
	assert.True(t, dec("50.00").Equal(got.DiscountAmount), "10% de 500")
	assert.True(t, dec("470.00").Equal(got.TotalAmount), "500 - 50 + 20 de envío")
}

func TestComputeTotals_DescuentoFijo(t *testing.T) {
	got := order.ComputeTotals(
		[]entity.OrderItem{item(1, "300.00")},
		entity.DiscountFixed, dec("75.50"), decimal.Zero,
	)

	assert.True(t, dec("75.50").Equal(got.DiscountAmount))
	assert.True(t, dec("224.50").Equal(got.TotalAmount))
}

// El descuento no se acota: un fijo mayor al subtotal produce total negativo.
func TestComputeTotals_DescuentoFijoMayorAlSubtotal_TotalNegativo(t *testing.T) {
	got := order.ComputeTotals(
		[]entity.OrderItem{item(1, "100.00")},
		entity.DiscountFixed, dec("150.00"), decimal.Zero,
	)

	assert.True(t, dec("-50.00").Equal(got.TotalAmount),
		"el total puede quedar negativo; no hay clamp")
}

// Porcentaje fuera de [0,100] tampoco se valida.
func TestComputeTotals_PorcentajeMayorA100(t *testing.T) {
	got := order.ComputeTotals(
		[]entity.OrderItem{item(1, "200.00")},
		entity.DiscountPercentage, dec("150"), decimal.Zero,
	)

	assert.True(t, dec("300.00").Equal(got.DiscountAmount))
	assert.True(t, dec("-100.00").Equal(got.TotalAmount))
}

// Tipo de descuento desconocido se trata como sin descuento.
func TestComputeTotals_TipoDesconocidoEsCero(t *testing.T) {
	got := order.ComputeTotals(
		[]entity.OrderItem{item(1, "100.00")},
		"coupon", dec("99"), decimal.Zero,
	)

	assert.True(t, got.DiscountAmount.IsZero())
	assert.True(t, dec("100.00").Equal(got.TotalAmount))
}

func TestComputeTotals_OrdenVacia(t *testing.T) {
	got := order.ComputeTotals(nil, entity.DiscountNone, decimal.Zero, dec("10.00"))

	assert.True(t, got.Subtotal.IsZero())
	assert.True(t, dec("10.00").Equal(got.TotalAmount), "solo el envío")
}

// Función pura: mismas entradas, mismos montos.
func TestComputeTotals_Determinista(t *testing.T) {
	items := []entity.OrderItem{item(3, "33.33")}
	a := order.ComputeTotals(items, entity.DiscountPercentage, dec("5"), dec("7.00"))
	b := order.ComputeTotals(items, entity.DiscountPercentage, dec("5"), dec("7.00"))

	assert.True(t, a.Subtotal.Equal(b.Subtotal))
	assert.True(t, a.DiscountAmount.Equal(b.DiscountAmount))
	assert.True(t, a.TotalAmount.Equal(b.TotalAmount))
}

package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/beautybook-api/internal/application/inventory"
	"github.com/tu-usuario/beautybook-api/internal/domain"
	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }

func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }

func (r *fakeProductRepo) UpdateStock(id string, stock int64, isActive, isDiscontinued bool) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStock = stock
	p.IsActive = isActive
	p.IsDiscontinued = isDiscontinued
	return nil
}

func (r *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Delete(id string) error { delete(r.products, id); return nil }

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, m)
	return nil
}

func (r *fakeMovementRepo) List(f repository.MovementFilter) ([]*entity.StockMovement, int, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if f.ProductID != "" && m.ProductID != f.ProductID {
			continue
		}
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		out = append(out, m)
	}
	return out, len(out), nil
}

func (r *fakeMovementRepo) ListByOrder(orderID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.OrderID != nil && *m.OrderID == orderID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) DeleteByOrder(orderID string) error {
	kept := r.movements[:0]
	for _, m := range r.movements {
		if m.OrderID == nil || *m.OrderID != orderID {
			kept = append(kept, m)
		}
	}
	r.movements = kept
	return nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes; las
// garantías transaccionales no son objeto de estos tests.
type fakeTxRunner struct {
	products *fakeProductRepo
	movs     *fakeMovementRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.ProductRepository, repository.StockMovementRepository) error) error {
	return fn(r.products, r.movs)
}

func productWithStock(stock int64) *entity.Product {
	return &entity.Product{
		ID:            "p1",
		Name:          "Shampoo reparador",
		CurrentStock:  stock,
		MinStockAlert: 10,
		IsActive:      true,
	}
}

func setup(stock int64) (*inventory.Manager, *fakeProductRepo, *fakeMovementRepo) {
	products := newFakeProductRepo(productWithStock(stock))
	movs := &fakeMovementRepo{}
	m := inventory.NewManager(&fakeTxRunner{products: products, movs: movs}, movs)
	return m, products, movs
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ApplyDeltaTx
// ──────────────────────────────────────────────────────────────────────────────

// Un delta negativo mayor al stock deja el inventario en 0, nunca negativo.
func TestApplyDelta_PisoEnCero(t *testing.T) {
	products := newFakeProductRepo(productWithStock(3))
	movs := &fakeMovementRepo{}

	mov, err := inventory.ApplyDeltaTx(products, movs, inventory.DeltaInput{
		ProductID: "p1", Delta: -10, Type: entity.MovementTypeOut,
		Reason: inventory.ReasonSale, Actor: "u1",
	})
	require.NoError(t, err)

	p, _ := products.GetByID("p1")
	assert.Equal(t, int64(0), p.CurrentStock, "el stock nunca queda negativo")
	assert.Equal(t, int64(-10), mov.Quantity, "el ledger registra el delta pedido, no el aplicado")
}

// Al llegar a 0 el producto pasa a inactivo y descontinuado.
func TestApplyDelta_DescontinuaAlLlegarACero(t *testing.T) {
	products := newFakeProductRepo(productWithStock(2))
	movs := &fakeMovementRepo{}

	_, err := inventory.ApplyDeltaTx(products, movs, inventory.DeltaInput{
		ProductID: "p1", Delta: -2, Type: entity.MovementTypeOut,
		Reason: inventory.ReasonSale, Actor: "u1",
	})
	require.NoError(t, err)

	p, _ := products.GetByID("p1")
	assert.False(t, p.IsActive)
	assert.True(t, p.IsDiscontinued)
}

// La transición es de una sola vía: reponer stock por encima de 0 no
// reactiva el producto.
func TestApplyDelta_ReponerNoReactiva(t *testing.T) {
	products := newFakeProductRepo(&entity.Product{
		ID: "p1", CurrentStock: 0, IsActive: false, IsDiscontinued: true,
	})
	movs := &fakeMovementRepo{}

	_, err := inventory.ApplyDeltaTx(products, movs, inventory.DeltaInput{
		ProductID: "p1", Delta: 5, Type: entity.MovementTypeIn,
		Reason: "Restock", Actor: "u1",
	})
	require.NoError(t, err)

	p, _ := products.GetByID("p1")
	assert.Equal(t, int64(5), p.CurrentStock)
	assert.False(t, p.IsActive, "la reactivación es manual, nunca automática")
	assert.True(t, p.IsDiscontinued)
}

func TestApplyDelta_ProductoInexistente(t *testing.T) {
	products := newFakeProductRepo()
	movs := &fakeMovementRepo{}

	_, err := inventory.ApplyDeltaTx(products, movs, inventory.DeltaInput{
		ProductID: "nope", Delta: 1, Type: entity.MovementTypeIn, Reason: "x",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Cada delta aplicado agrega exactamente una entrada al ledger.
func TestApplyDelta_AgregaEntradaAlLedger(t *testing.T) {
	products := newFakeProductRepo(productWithStock(10))
	movs := &fakeMovementRepo{}

	mov, err := inventory.ApplyDeltaTx(products, movs, inventory.DeltaInput{
		ProductID: "p1", Delta: -4, Type: entity.MovementTypeOut,
		Reason: inventory.ReasonSale, Notes: "venta mostrador", Actor: "u1",
	})
	require.NoError(t, err)
	require.Len(t, movs.movements, 1)

	assert.NotEmpty(t, mov.ID)
	assert.Equal(t, entity.MovementTypeOut, mov.Type)
	assert.Equal(t, inventory.ReasonSale, mov.Reason)
	assert.Equal(t, "u1", mov.CreatedBy)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RevertDeltaTx
// ──────────────────────────────────────────────────────────────────────────────

// El revert suma sin piso y no toca los flags.
func TestRevertDelta_SumaSinTocarFlags(t *testing.T) {
	products := newFakeProductRepo(&entity.Product{
		ID: "p1", CurrentStock: 0, IsActive: false, IsDiscontinued: true,
	})

	require.NoError(t, inventory.RevertDeltaTx(products, "p1", 3))

	p, _ := products.GetByID("p1")
	assert.Equal(t, int64(3), p.CurrentStock)
	assert.False(t, p.IsActive)
	assert.True(t, p.IsDiscontinued)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Manager.AddStock / AdjustStock
// ──────────────────────────────────────────────────────────────────────────────

func TestAddStock_CantidadPositivaObligatoria(t *testing.T) {
	m, _, _ := setup(5)

	_, err := m.AddStock(context.Background(), "p1", inventory.DeltaInput{Delta: -1, Reason: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = m.AddStock(context.Background(), "p1", inventory.DeltaInput{Delta: 0, Reason: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddStock_RegistraEntrada(t *testing.T) {
	m, products, movs := setup(5)

	mov, err := m.AddStock(context.Background(), "p1", inventory.DeltaInput{
		Delta: 7, Reason: "Compra proveedor", Actor: "u1",
	})
	require.NoError(t, err)

	p, _ := products.GetByID("p1")
	assert.Equal(t, int64(12), p.CurrentStock)
	assert.Equal(t, entity.MovementTypeIn, mov.Type)
	assert.Len(t, movs.movements, 1)
}

func TestAdjustStock_DeltaNegativoConPiso(t *testing.T) {
	m, products, _ := setup(5)

	mov, err := m.AdjustStock(context.Background(), "p1", inventory.DeltaInput{
		Delta: -8, Reason: "Merma", Actor: "u1",
	})
	require.NoError(t, err)

	p, _ := products.GetByID("p1")
	assert.Equal(t, int64(0), p.CurrentStock)
	assert.Equal(t, entity.MovementTypeAdjustment, mov.Type)
}

func TestAdjustStock_DeltaCeroInvalido(t *testing.T) {
	m, _, _ := setup(5)

	_, err := m.AdjustStock(context.Background(), "p1", inventory.DeltaInput{Delta: 0, Reason: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjustStock_SinRazonInvalido(t *testing.T) {
	m, _, _ := setup(5)

	_, err := m.AdjustStock(context.Background(), "p1", inventory.DeltaInput{Delta: 2})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

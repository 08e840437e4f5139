package order_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/beautybook-api/internal/application/authz"
	"github.com/tu-usuario/beautybook-api/internal/application/dto"
	"github.com/tu-usuario/beautybook-api/internal/application/inventory"
	"github.com/tu-usuario/beautybook-api/internal/application/order"
	"github.com/tu-usuario/beautybook-api/internal/domain"
	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos
// ──────────────────────────────────────────────────────────────────────────────

type memProducts struct{ items map[string]*entity.Product }

func (r *memProducts) Create(p *entity.Product) error { r.items[p.ID] = p; return nil }
func (r *memProducts) GetByID(id string) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *memProducts) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }
func (r *memProducts) Update(p *entity.Product) error                  { r.items[p.ID] = p; return nil }
func (r *memProducts) UpdateStock(id string, stock int64, isActive, isDiscontinued bool) error {
	p, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStock = stock
	p.IsActive = isActive
	p.IsDiscontinued = isDiscontinued
	return nil
}
func (r *memProducts) List(repository.ProductFilter) ([]*entity.Product, error) { return nil, nil }
func (r *memProducts) Delete(id string) error                                   { delete(r.items, id); return nil }

type memMovements struct{ items []*entity.StockMovement }

func (r *memMovements) Create(m *entity.StockMovement) error { r.items = append(r.items, m); return nil }
func (r *memMovements) List(repository.MovementFilter) ([]*entity.StockMovement, int, error) {
	return r.items, len(r.items), nil
}
func (r *memMovements) ListByOrder(orderID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.items {
		if m.OrderID != nil && *m.OrderID == orderID {
			out = append(out, m)
		}
	}
	return out, nil
}
func (r *memMovements) DeleteByOrder(orderID string) error {
	kept := r.items[:0]
	for _, m := range r.items {
		if m.OrderID == nil || *m.OrderID != orderID {
			kept = append(kept, m)
		}
	}
	r.items = kept
	return nil
}

type memOrders struct{ items map[string]*entity.Order }

func (r *memOrders) Create(o *entity.Order) error { r.items[o.ID] = o; return nil }
func (r *memOrders) GetByID(id string) (*entity.Order, error) {
	o, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}
func (r *memOrders) Update(o *entity.Order) error { r.items[o.ID] = o; return nil }
func (r *memOrders) UpdateStatus(id, status string) error {
	o, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}
func (r *memOrders) UpdateImages(id string, images []string) error {
	o, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Images = images
	return nil
}
func (r *memOrders) List(repository.OrderFilter) ([]*entity.Order, int, error) {
	return nil, 0, nil
}
func (r *memOrders) Delete(id string) error { delete(r.items, id); return nil }
func (r *memOrders) ListByCustomer(string, int) ([]*entity.Order, error) {
	return nil, nil
}

type memCustomers struct{ items map[string]*entity.Customer }

func (r *memCustomers) Create(c *entity.Customer) error { r.items[c.ID] = c; return nil }
func (r *memCustomers) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *memCustomers) GetByPhone(string) (*entity.Customer, error) { return nil, nil }
func (r *memCustomers) Update(c *entity.Customer) error             { r.items[c.ID] = c; return nil }
func (r *memCustomers) List(repository.CustomerFilter) ([]*entity.Customer, int, error) {
	return nil, 0, nil
}
func (r *memCustomers) ListByBirthMonth(int) ([]*entity.Customer, error) { return nil, nil }
func (r *memCustomers) Delete(id string) error                           { delete(r.items, id); return nil }

type memServices struct{ items map[string]*entity.Service }

func (r *memServices) Create(s *entity.Service) error { r.items[s.ID] = s; return nil }
func (r *memServices) GetByID(id string) (*entity.Service, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}
func (r *memServices) Update(s *entity.Service) error             { r.items[s.ID] = s; return nil }
func (r *memServices) List(*bool) ([]*entity.Service, error)      { return nil, nil }
func (r *memServices) Delete(id string) error                     { delete(r.items, id); return nil }

type memAppointments struct{ items map[string]*entity.Appointment }

func (r *memAppointments) Create(a *entity.Appointment) error { r.items[a.ID] = a; return nil }
func (r *memAppointments) GetByID(id string) (*entity.Appointment, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}
func (r *memAppointments) Update(a *entity.Appointment) error { r.items[a.ID] = a; return nil }
func (r *memAppointments) SetOrderLink(id string, orderID *string, status string) error {
	a, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.OrderID = orderID
	a.Status = status
	return nil
}
func (r *memAppointments) ExistsOverlapping(_, _ time.Time, _ string) (bool, error) {
	return false, nil
}
func (r *memAppointments) List(repository.AppointmentFilter) ([]*entity.Appointment, int, error) {
	return nil, 0, nil
}
func (r *memAppointments) ListRange(_, _ time.Time) ([]*entity.Appointment, error) { return nil, nil }
func (r *memAppointments) ListByCustomer(string, int) ([]*entity.Appointment, error) {
	return nil, nil
}
func (r *memAppointments) Delete(id string) error { delete(r.items, id); return nil }

type memSettings struct{ s *entity.Settings }

func (r *memSettings) Get() (*entity.Settings, error)    { return r.s, nil }
func (r *memSettings) Upsert(s *entity.Settings) error   { r.s = s; return nil }

// stubTxRunner ejecuta el callback directamente sobre los fakes.
type stubTxRunner struct {
	orders   *memOrders
	products *memProducts
	movs     *memMovements
	appts    *memAppointments
}

func (r *stubTxRunner) RunOrder(_ context.Context, fn func(
	repository.OrderRepository,
	repository.ProductRepository,
	repository.StockMovementRepository,
	repository.AppointmentRepository,
) error) error {
	return fn(r.orders, r.products, r.movs, r.appts)
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del entorno de test
// ──────────────────────────────────────────────────────────────────────────────

type env struct {
	uc       *order.UseCase
	orders   *memOrders
	products *memProducts
	movs     *memMovements
	appts    *memAppointments
}

var (
	adminActor    = authz.Principal{UserID: "admin-1", Role: "admin"}
	employeeActor = authz.Principal{UserID: "emp-1", Role: "employee"}
)

func newEnv() *env {
	products := &memProducts{items: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", Name: "Shampoo", CurrentStock: 10, MinStockAlert: 2, IsActive: true},
	}}
	services := &memServices{items: map[string]*entity.Service{
		"svc-1": {ID: "svc-1", Name: "Corte de cabello", Duration: 30, IsActive: true},
	}}
	customers := &memCustomers{items: map[string]*entity.Customer{
		"cust-1": {ID: "cust-1", Name: "Ana Gómez", Phone: "555-0001"},
	}}
	appts := &memAppointments{items: map[string]*entity.Appointment{
		"appt-1": {ID: "appt-1", CustomerID: "cust-1", ServiceID: "svc-1", Status: entity.AppointmentStatusBooked},
	}}
	orders := &memOrders{items: map[string]*entity.Order{}}
	movs := &memMovements{}
	runner := &stubTxRunner{orders: orders, products: products, movs: movs, appts: appts}

	uc := order.NewUseCase(runner, orders, customers, products, services, appts, movs, &memSettings{}, nil, nil)
	return &env{uc: uc, orders: orders, products: products, movs: movs, appts: appts}
}

func createReq(qty int64) dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		Customer: "cust-1",
		Items: []dto.OrderItemRequest{
			{Type: "product", Item: "prod-1", Quantity: qty, UnitPrice: dec("100.00")},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_DescuentaStockYRegistraLedger(t *testing.T) {
	e := newEnv()

	resp, err := e.uc.Create(context.Background(), employeeActor, createReq(3))
	require.NoError(t, err)

	p, _ := e.products.GetByID("prod-1")
	assert.Equal(t, int64(7), p.CurrentStock, "10 - 3 vendidas")

	movs, _ := e.movs.ListByOrder(resp.ID)
	require.Len(t, movs, 1)
	assert.Equal(t, int64(-3), movs[0].Quantity)
	assert.Equal(t, inventory.ReasonSale, movs[0].Reason)
	assert.Equal(t, entity.MovementTypeOut, movs[0].Type)

	assert.True(t, dec("300.00").Equal(resp.TotalAmount))
	assert.Equal(t, entity.OrderStatusPending, resp.Status)
	assert.Equal(t, "Ana Gómez", resp.CustomerName)
}

func TestCreate_LineaDeServicioNoTocaInventario(t *testing.T) {
	e := newEnv()

	resp, err := e.uc.Create(context.Background(), adminActor, dto.CreateOrderRequest{
		Customer: "cust-1",
		Items: []dto.OrderItemRequest{
			{Type: "service", Item: "svc-1", Quantity: 1, UnitPrice: dec("50.00")},
		},
	})
	require.NoError(t, err)

	p, _ := e.products.GetByID("prod-1")
	assert.Equal(t, int64(10), p.CurrentStock, "los servicios no descuentan stock")

	movs, _ := e.movs.ListByOrder(resp.ID)
	assert.Empty(t, movs)
	assert.Equal(t, "Corte de cabello", resp.Items[0].ItemName)
}

func TestCreate_EnlazaCitaComoCompletada(t *testing.T) {
	e := newEnv()

	in := createReq(1)
	apptID := "appt-1"
	in.AppointmentID = &apptID

	resp, err := e.uc.Create(context.Background(), adminActor, in)
	require.NoError(t, err)

	appt, _ := e.appts.GetByID("appt-1")
	assert.Equal(t, entity.AppointmentStatusCompleted, appt.Status)
	require.NotNil(t, appt.OrderID)
	assert.Equal(t, resp.ID, *appt.OrderID)
}

func TestCreate_CitaConOrdenPrevia_Conflicto(t *testing.T) {
	e := newEnv()
	existing := "order-previa"
	e.appts.items["appt-1"].OrderID = &existing

	in := createReq(1)
	apptID := "appt-1"
	in.AppointmentID = &apptID

	_, err := e.uc.Create(context.Background(), adminActor, in)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreate_ProductoInexistente(t *testing.T) {
	e := newEnv()

	_, err := e.uc.Create(context.Background(), adminActor, dto.CreateOrderRequest{
		Customer: "cust-1",
		Items: []dto.OrderItemRequest{
			{Type: "product", Item: "nope", Quantity: 1, UnitPrice: dec("10.00")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_TipoDeItemInvalido(t *testing.T) {
	e := newEnv()

	_, err := e.uc.Create(context.Background(), adminActor, dto.CreateOrderRequest{
		Customer: "cust-1",
		Items: []dto.OrderItemRequest{
			{Type: "bundle", Item: "prod-1", Quantity: 1, UnitPrice: dec("10.00")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update
// ──────────────────────────────────────────────────────────────────────────────

// Reducir 3 → 1 unidades devuelve 2 al stock y deja una sola entrada nueva
// en el ledger con la razón de actualización.
func TestUpdate_RevertirYReaplicar(t *testing.T) {
	e := newEnv()

	resp, err := e.uc.Create(context.Background(), adminActor, createReq(3))
	require.NoError(t, err)

	_, err = e.uc.Update(context.Background(), adminActor, resp.ID, dto.UpdateOrderRequest{
		Customer: "cust-1",
		Items: []dto.OrderItemRequest{
			{Type: "product", Item: "prod-1", Quantity: 1, UnitPrice: dec("100.00")},
		},
	})
	require.NoError(t, err)

	p, _ := e.products.GetByID("prod-1")
	assert.Equal(t, int64(9), p.CurrentStock, "10 - 3 + 3 - 1")

	movs, _ := e.movs.ListByOrder(resp.ID)
	require.Len(t, movs, 1, "las entradas originales se reemplazan")
	assert.Equal(t, inventory.ReasonSaleUpdated, movs[0].Reason)
	assert.Equal(t, int64(-1), movs[0].Quantity)
}

func TestUpdate_EmployeeDenegado(t *testing.T) {
	e := newEnv()

	resp, err := e.uc.Create(context.Background(), adminActor, createReq(1))
	require.NoError(t, err)

	_, err = e.uc.Update(context.Background(), employeeActor, resp.ID, dto.UpdateOrderRequest{
		Customer: "cust-1",
		Items: []dto.OrderItemRequest{
			{Type: "product", Item: "prod-1", Quantity: 2, UnitPrice: dec("100.00")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateStatus_EstadoInvalido(t *testing.T) {
	e := newEnv()

	resp, err := e.uc.Create(context.Background(), adminActor, createReq(1))
	require.NoError(t, err)

	err = e.uc.UpdateStatus(context.Background(), resp.ID, dto.UpdateOrderStatusRequest{Status: "archived"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = e.uc.UpdateStatus(context.Background(), resp.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderStatusDelivered})
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Delete
// ──────────────────────────────────────────────────────────────────────────────

// Crear y borrar deja el sistema como estaba: stock restaurado, ledger sin
// rastros de la orden y la cita de vuelta en booked.
func TestDelete_RestauraStockYDesenlazaCita(t *testing.T) {
	e := newEnv()

	in := createReq(4)
	apptID := "appt-1"
	in.AppointmentID = &apptID
	resp, err := e.uc.Create(context.Background(), adminActor, in)
	require.NoError(t, err)

	require.NoError(t, e.uc.Delete(context.Background(), adminActor, resp.ID))

	p, _ := e.products.GetByID("prod-1")
	assert.Equal(t, int64(10), p.CurrentStock, "el stock vuelve al punto de partida")

	movs, _ := e.movs.ListByOrder(resp.ID)
	assert.Empty(t, movs, "el ledger queda sin entradas de la orden")

	appt, _ := e.appts.GetByID("appt-1")
	assert.Equal(t, entity.AppointmentStatusBooked, appt.Status)
	assert.Nil(t, appt.OrderID)

	gone, _ := e.orders.GetByID(resp.ID)
	assert.Nil(t, gone)
}

func TestDelete_EmployeeDenegado(t *testing.T) {
	e := newEnv()

	resp, err := e.uc.Create(context.Background(), adminActor, createReq(1))
	require.NoError(t, err)

	err = e.uc.Delete(context.Background(), employeeActor, resp.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests DeleteLinkedOrder (cancelación de cita)
// ──────────────────────────────────────────────────────────────────────────────

// Sin restoreStock la orden desaparece pero la venta se da por perdida:
// stock intacto y ledger conservado como auditoría.
func TestDeleteLinkedOrder_SinRestaurarStock(t *testing.T) {
	e := newEnv()

	resp, err := e.uc.Create(context.Background(), adminActor, createReq(3))
	require.NoError(t, err)

	require.NoError(t, e.uc.DeleteLinkedOrder(context.Background(), resp.ID, false, nil))

	p, _ := e.products.GetByID("prod-1")
	assert.Equal(t, int64(7), p.CurrentStock, "el stock no se devuelve")

	movs, _ := e.movs.ListByOrder(resp.ID)
	assert.Len(t, movs, 1, "el ledger queda como auditoría")

	gone, _ := e.orders.GetByID(resp.ID)
	assert.Nil(t, gone)
}

// Con restoreStock el borrado revierte inventario y ledger como Delete.
func TestDeleteLinkedOrder_RestaurandoStock(t *testing.T) {
	e := newEnv()

	resp, err := e.uc.Create(context.Background(), adminActor, createReq(3))
	require.NoError(t, err)

	require.NoError(t, e.uc.DeleteLinkedOrder(context.Background(), resp.ID, true, nil))

	p, _ := e.products.GetByID("prod-1")
	assert.Equal(t, int64(10), p.CurrentStock)

	movs, _ := e.movs.ListByOrder(resp.ID)
	assert.Empty(t, movs)
}

// La escritura de la cita que dispara el borrado corre dentro de la misma
// transacción que elimina la orden.
func TestDeleteLinkedOrder_MutaLaCitaEnLaMismaTransaccion(t *testing.T) {
	e := newEnv()

	in := createReq(2)
	apptID := "appt-1"
	in.AppointmentID = &apptID
	resp, err := e.uc.Create(context.Background(), adminActor, in)
	require.NoError(t, err)

	err = e.uc.DeleteLinkedOrder(context.Background(), resp.ID, true, func(apptRepo repository.AppointmentRepository) error {
		return apptRepo.SetOrderLink("appt-1", nil, entity.AppointmentStatusCancelled)
	})
	require.NoError(t, err)

	gone, _ := e.orders.GetByID(resp.ID)
	assert.Nil(t, gone)
	appt, _ := e.appts.GetByID("appt-1")
	assert.Equal(t, entity.AppointmentStatusCancelled, appt.Status)
	assert.Nil(t, appt.OrderID)
}

// Una orden ya inexistente no es error; la mutación de la cita igual se
// ejecuta para que la cancelación no quede atascada en un enlace roto.
func TestDeleteLinkedOrder_OrdenInexistente(t *testing.T) {
	e := newEnv()

	require.NoError(t, e.uc.DeleteLinkedOrder(context.Background(), "nope", true, nil))

	ran := false
	err := e.uc.DeleteLinkedOrder(context.Background(), "nope", true, func(repository.AppointmentRepository) error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
}

package scheduling

import (
	"context"

	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

// TxRunner ejecuta el callback dentro de una transacción que además
// serializa a los agendadores concurrentes (advisory lock transaccional):
// entre la verificación de solape y el insert no puede colarse otra reserva.
type TxRunner interface {
	RunScheduling(ctx context.Context, fn func(
		apptRepo repository.AppointmentRepository,
	) error) error
}

// LinkedOrderDeleter borra la orden ligada cuando una cita se cancela o se
// elimina. restoreStock decide si el inventario se revierte o la venta se da
// por perdida. La escritura de la cita que dispara el borrado viaja en then
// y se ejecuta dentro de la misma transacción que elimina la orden.
type LinkedOrderDeleter interface {
	DeleteLinkedOrder(ctx context.Context, orderID string, restoreStock bool, then func(repository.AppointmentRepository) error) error
}

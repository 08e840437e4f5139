package order

import (
	"context"
	"io"

	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

// TxRunner ejecuta el callback dentro de una transacción con los repos que
// necesita el motor de órdenes: la orden, el stock y el vínculo con la cita
// se mutan juntos o no se muta nada.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		apptRepo repository.AppointmentRepository,
	) error) error
}

// ImageUploader sube una imagen a un host externo y devuelve su URL pública.
// La API nunca persiste bytes de imagen, solo URLs.
type ImageUploader interface {
	Upload(ctx context.Context, filename string, content io.Reader) (string, error)
}

// ReceiptGenerator genera el PDF de recibo de una orden.
type ReceiptGenerator interface {
	Receipt(order *entity.Order, customer *entity.Customer, settings *entity.Settings) ([]byte, error)
}

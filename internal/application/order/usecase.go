package order

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/beautybook-api/internal/application/authz"
	"github.com/tu-usuario/beautybook-api/internal/application/dto"
	"github.com/tu-usuario/beautybook-api/internal/application/inventory"
	"github.com/tu-usuario/beautybook-api/internal/domain"
	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

// UseCase implementa las ventas de mostrador: creación con descuento de
// stock, edición con revert-y-reaplicar, borrado con restauración y el
// vínculo bidireccional con citas. Toda mutación ocurre en una transacción.
type UseCase struct {
	txRunner     TxRunner
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	serviceRepo  repository.ServiceRepository
	apptRepo     repository.AppointmentRepository
	movRepo      repository.StockMovementRepository
	settingsRepo repository.SettingsRepository
	uploader     ImageUploader
	receipts     ReceiptGenerator
}

// NewUseCase construye el caso de uso de órdenes.
func NewUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	serviceRepo repository.ServiceRepository,
	apptRepo repository.AppointmentRepository,
	movRepo repository.StockMovementRepository,
	settingsRepo repository.SettingsRepository,
	uploader ImageUploader,
	receipts ReceiptGenerator,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		serviceRepo:  serviceRepo,
		apptRepo:     apptRepo,
		movRepo:      movRepo,
		settingsRepo: settingsRepo,
		uploader:     uploader,
		receipts:     receipts,
	}
}

// Create crea una orden: valida fuera de la tx, y dentro inserta la orden,
// descuenta stock de cada línea de producto y completa la cita ligada si la hay.
func (uc *UseCase) Create(ctx context.Context, actor authz.Principal, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.Customer == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	customer, err := uc.customerRepo.GetByID(in.Customer)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	items, err := uc.buildItems(in.Items)
	if err != nil {
		return nil, err
	}
	discountType, err := normalizeDiscount(in.DiscountType)
	if err != nil {
		return nil, err
	}

	// La cita ligada debe existir y no tener ya una orden
	if in.AppointmentID != nil {
		appt, err := uc.apptRepo.GetByID(*in.AppointmentID)
		if err != nil {
			return nil, err
		}
		if appt == nil {
			return nil, domain.ErrNotFound
		}
		if appt.OrderID != nil {
			return nil, domain.ErrConflict
		}
	}

	totals := ComputeTotals(items, discountType, in.DiscountValue, in.ShippingFee)

	now := time.Now()
	order := &entity.Order{
		ID:             uuid.New().String(),
		CustomerID:     in.Customer,
		Items:          items,
		Subtotal:       totals.Subtotal,
		DiscountType:   discountType,
		DiscountValue:  in.DiscountValue,
		DiscountAmount: totals.DiscountAmount,
		ShippingFee:    in.ShippingFee,
		TotalAmount:    totals.TotalAmount,
		Status:         entity.OrderStatusPending,
		AppointmentID:  in.AppointmentID,
		CreatedBy:      actor.UserID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		apptRepo repository.AppointmentRepository,
	) error {
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		if err := deductItems(productRepo, movRepo, order, inventory.ReasonSale, actor.UserID); err != nil {
			return err
		}
		if order.AppointmentID != nil {
			// La cita pasa a completada y apunta a esta orden
			return apptRepo.SetOrderLink(*order.AppointmentID, &order.ID, entity.AppointmentStatusCompleted)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toOrderResponse(order)
	resp.CustomerName = customer.Name
	resp.CustomerPhone = customer.Phone
	return &resp, nil
}

// Update reemplaza las líneas y recalcula totales. Solo admin. El inventario
// se concilia por revert-y-reaplicar: se devuelven las deducciones previas
// (leídas del ledger), se borran esas entradas y se aplican las nuevas con
// razón "Sale (Updated)", todo en una transacción.
func (uc *UseCase) Update(ctx context.Context, actor authz.Principal, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	if !authz.Allow(actor, authz.ActionOrderUpdate) {
		return nil, domain.ErrForbidden
	}
	if in.Customer == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	customer, err := uc.customerRepo.GetByID(in.Customer)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	items, err := uc.buildItems(in.Items)
	if err != nil {
		return nil, err
	}
	discountType, err := normalizeDiscount(in.DiscountType)
	if err != nil {
		return nil, err
	}
	totals := ComputeTotals(items, discountType, in.DiscountValue, in.ShippingFee)

	order.CustomerID = in.Customer
	order.Items = items
	order.Subtotal = totals.Subtotal
	order.DiscountType = discountType
	order.DiscountValue = in.DiscountValue
	order.DiscountAmount = totals.DiscountAmount
	order.ShippingFee = in.ShippingFee
	order.TotalAmount = totals.TotalAmount
	order.UpdatedAt = time.Now()

	err = uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		apptRepo repository.AppointmentRepository,
	) error {
		if err := revertOrderMovements(productRepo, movRepo, order.ID); err != nil {
			return err
		}
		if err := orderRepo.Update(order); err != nil {
			return err
		}
		return deductItems(productRepo, movRepo, order, inventory.ReasonSaleUpdated, actor.UserID)
	})
	if err != nil {
		return nil, err
	}

	resp := toOrderResponse(order)
	resp.CustomerName = customer.Name
	resp.CustomerPhone = customer.Phone
	return &resp, nil
}

// UpdateStatus asigna el estado directamente, sin máquina de estados.
func (uc *UseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateOrderStatusRequest) error {
	switch in.Status {
	case entity.OrderStatusPending, entity.OrderStatusConfirmed, entity.OrderStatusProcessing,
		entity.OrderStatusShipped, entity.OrderStatusDelivered, entity.OrderStatusCancelled:
	default:
		return domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.UpdateStatus(id, in.Status)
}

// Delete borra la orden restaurando inventario: devuelve cada deducción del
// ledger, elimina las entradas y, si había cita ligada, la devuelve a booked
// sin orden. Solo admin.
func (uc *UseCase) Delete(ctx context.Context, actor authz.Principal, id string) error {
	if !authz.Allow(actor, authz.ActionOrderDelete) {
		return domain.ErrForbidden
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}

	return uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		apptRepo repository.AppointmentRepository,
	) error {
		if err := revertOrderMovements(productRepo, movRepo, order.ID); err != nil {
			return err
		}
		if order.AppointmentID != nil {
			if err := apptRepo.SetOrderLink(*order.AppointmentID, nil, entity.AppointmentStatusBooked); err != nil {
				return err
			}
		}
		return orderRepo.Delete(order.ID)
	})
}

// DeleteLinkedOrder borra la orden ligada a una cita que se cancela o borra.
// Con restoreStock el inventario y el ledger se revierten como en Delete;
// sin él la orden se borra tal cual: la venta se da por perdida y las
// entradas del ledger quedan como auditoría. La mutación de la cita que
// dispara el borrado llega en then y corre en la misma transacción: la
// orden y la cita cambian juntas o no cambia ninguna.
func (uc *UseCase) DeleteLinkedOrder(ctx context.Context, orderID string, restoreStock bool, then func(repository.AppointmentRepository) error) error {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil && then == nil {
		return nil // ya no existe; nada que limpiar
	}
	return uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		apptRepo repository.AppointmentRepository,
	) error {
		if order != nil {
			if restoreStock {
				if err := revertOrderMovements(productRepo, movRepo, orderID); err != nil {
					return err
				}
			}
			if err := orderRepo.Delete(orderID); err != nil {
				return err
			}
		}
		if then != nil {
			return then(apptRepo)
		}
		return nil
	})
}

// Get devuelve una orden con los datos del cliente resueltos.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	resp := toOrderResponse(order)
	if customer, err := uc.customerRepo.GetByID(order.CustomerID); err == nil && customer != nil {
		resp.CustomerName = customer.Name
		resp.CustomerPhone = customer.Phone
	}
	return &resp, nil
}

// List devuelve una página de órdenes con filtros.
func (uc *UseCase) List(ctx context.Context, filter repository.OrderFilter, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.Normalize(20)
	filter.Limit = page.Limit
	filter.Offset = page.Offset()

	orders, total, err := uc.orderRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Orders:     out,
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// Movements devuelve las entradas del ledger generadas por la orden.
func (uc *UseCase) Movements(ctx context.Context, id string) ([]*entity.StockMovement, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return uc.movRepo.ListByOrder(id)
}

// UploadImage sube una imagen al host externo y agrega su URL a la orden.
func (uc *UseCase) UploadImage(ctx context.Context, id, filename string, content io.Reader) (string, error) {
	if uc.uploader == nil {
		return "", fmt.Errorf("subida de imágenes deshabilitada: %w", domain.ErrInvalidInput)
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return "", err
	}
	if order == nil {
		return "", domain.ErrNotFound
	}
	url, err := uc.uploader.Upload(ctx, filename, content)
	if err != nil {
		return "", err
	}
	images := append(order.Images, url)
	if err := uc.orderRepo.UpdateImages(id, images); err != nil {
		return "", err
	}
	return url, nil
}

// Receipt genera el PDF de recibo de la orden.
func (uc *UseCase) Receipt(ctx context.Context, id string) ([]byte, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(order.CustomerID)
	if err != nil {
		return nil, err
	}
	settings, err := uc.settingsRepo.Get()
	if err != nil || settings == nil {
		settings = entity.DefaultSettings()
	}
	return uc.receipts.Receipt(order, customer, settings)
}

// buildItems valida las líneas del request y resuelve los nombres contra el
// catálogo. El precio unitario se toma del request tal cual.
func (uc *UseCase) buildItems(reqs []dto.OrderItemRequest) ([]entity.OrderItem, error) {
	items := make([]entity.OrderItem, 0, len(reqs))
	for _, r := range reqs {
		ref := entity.ItemRef{Kind: entity.ItemKind(r.Type), ID: r.Item}
		if !ref.Valid() || r.Quantity < 1 || r.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}

		var name string
		if ref.IsProduct() {
			product, err := uc.productRepo.GetByID(ref.ID)
			if err != nil {
				return nil, err
			}
			if product == nil {
				return nil, domain.ErrNotFound
			}
			name = product.Name
		} else {
			service, err := uc.serviceRepo.GetByID(ref.ID)
			if err != nil {
				return nil, err
			}
			if service == nil {
				return nil, domain.ErrNotFound
			}
			name = service.Name
		}

		qty := decimal.NewFromInt(r.Quantity)
		items = append(items, entity.OrderItem{
			Ref:        ref,
			ItemName:   name,
			Quantity:   r.Quantity,
			UnitPrice:  r.UnitPrice,
			TotalPrice: r.UnitPrice.Mul(qty),
		})
	}
	return items, nil
}

// deductItems descuenta stock por cada línea de producto (las de servicio no
// tocan inventario) y registra las entradas del ledger ligadas a la orden.
func deductItems(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	order *entity.Order,
	reason, actor string,
) error {
	for _, it := range order.Items {
		if !it.Ref.IsProduct() {
			continue
		}
		_, err := inventory.ApplyDeltaTx(productRepo, movRepo, inventory.DeltaInput{
			ProductID: it.Ref.ID,
			Delta:     -it.Quantity,
			Type:      entity.MovementTypeOut,
			Reason:    reason,
			OrderID:   &order.ID,
			Actor:     actor,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// revertOrderMovements devuelve al stock cada deducción registrada por la
// orden y borra esas entradas del ledger. El revert no tiene piso en cero y
// no reactiva productos descontinuados.
func revertOrderMovements(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	orderID string,
) error {
	movements, err := movRepo.ListByOrder(orderID)
	if err != nil {
		return err
	}
	for _, mov := range movements {
		// Quantity es negativa en salidas: devolver -Quantity
		if err := inventory.RevertDeltaTx(productRepo, mov.ProductID, -mov.Quantity); err != nil {
			return err
		}
	}
	return movRepo.DeleteByOrder(orderID)
}

func normalizeDiscount(discountType string) (string, error) {
	switch discountType {
	case "":
		return entity.DiscountNone, nil
	case entity.DiscountNone, entity.DiscountPercentage, entity.DiscountFixed:
		return discountType, nil
	default:
		return "", domain.ErrInvalidInput
	}
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			Type:       string(it.Ref.Kind),
			ItemID:     it.Ref.ID,
			ItemName:   it.ItemName,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		})
	}
	return dto.OrderResponse{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		Items:          items,
		Subtotal:       o.Subtotal,
		DiscountType:   o.DiscountType,
		DiscountValue:  o.DiscountValue,
		DiscountAmount: o.DiscountAmount,
		ShippingFee:    o.ShippingFee,
		TotalAmount:    o.TotalAmount,
		Status:         o.Status,
		Images:         o.Images,
		AppointmentID:  o.AppointmentID,
		CreatedBy:      o.CreatedBy,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

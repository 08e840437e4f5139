package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/beautybook-api/internal/application/dto"
	"github.com/tu-usuario/beautybook-api/internal/application/order"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

// OrderHandler maneja las peticiones HTTP para Order.
type OrderHandler struct {
	uc *order.UseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *order.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden (descuenta stock y enlaza cita en una transacción)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Datos de la orden"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), GetPrincipal(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "order": out})
}

// List godoc
// @Summary      Listar órdenes
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        customer  query  string  false  "ID de cliente"
// @Param        status    query  string  false  "estado"
// @Param        search    query  string  false  "nombre/teléfono del cliente"
// @Param        from      query  string  false  "fecha desde (YYYY-MM-DD)"
// @Param        to        query  string  false  "fecha hasta (YYYY-MM-DD)"
// @Param        page      query  int     false  "página"  default(1)
// @Param        limit     query  int     false  "tamaño"  default(20)
// @Success      200       {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "parámetros inválidos")
	}
	filter := repository.OrderFilter{
		CustomerID: c.Query("customer"),
		Status:     c.Query("status"),
		Search:     c.Query("search"),
	}
	var err error
	if filter.From, err = parseDateQuery(c.Query("from")); err != nil {
		return badRequest(c, "fecha 'from' inválida")
	}
	if filter.To, err = parseDateQuery(c.Query("to")); err != nil {
		return badRequest(c, "fecha 'to' inválida")
	}
	out, err := h.uc.List(c.Context(), filter, page)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "orders": out.Orders, "pagination": out.Pagination})
}

// GetByID godoc
// @Summary      Obtener orden por ID
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "order": out})
}

// Update godoc
// @Summary      Actualizar orden (revierte y reaplica stock; solo admin)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateOrderRequest  true  "líneas y descuentos"
// @Success      200   {object}  dto.OrderResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "order": out})
}

// UpdateStatus godoc
// @Summary      Cambiar estado (asignación directa, sin máquina de estados)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "nuevo estado"
// @Success      200   {object}  map[string]bool
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// Delete godoc
// @Summary      Eliminar orden (restaura stock y desenlaza la cita; solo admin)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  map[string]bool
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetPrincipal(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// Movements godoc
// @Summary      Movimientos de stock generados por la orden
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/orders/{id}/movements [get]
func (h *OrderHandler) Movements(c *fiber.Ctx) error {
	movs, err := h.uc.Movements(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "movements": movementsToResponses(movs)})
}

// UploadImages godoc
// @Summary      Subir imágenes de la orden (multipart, campo "images")
// @Tags         orders
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {array}  string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/images [post]
func (h *OrderHandler) UploadImages(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return badRequest(c, "multipart inválido")
	}
	files := form.File["images"]
	if len(files) == 0 {
		return badRequest(c, "se requiere al menos un archivo en 'images'")
	}
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return badRequest(c, "no se pudo leer el archivo")
		}
		url, err := h.uc.UploadImage(c.Context(), c.Params("id"), fh.Filename, f)
		f.Close()
		if err != nil {
			return fail(c, err)
		}
		urls = append(urls, url)
	}
	return c.JSON(fiber.Map{"success": true, "images": urls})
}

// Receipt godoc
// @Summary      Recibo de la orden en PDF
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {file}  binary
// @Router       /api/orders/{id}/receipt.pdf [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	pdf, err := h.uc.Receipt(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo-`+c.Params("id")+`.pdf"`)
	return c.Send(pdf)
}

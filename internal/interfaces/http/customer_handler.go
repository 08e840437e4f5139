package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/beautybook-api/internal/application/dto"
	"github.com/tu-usuario/beautybook-api/internal/application/usecase"
)

// CustomerHandler maneja las peticiones HTTP para Customer.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "customer": out})
}

// List godoc
// @Summary      Listar clientes (búsqueda por nombre/teléfono/email)
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "texto a buscar"
// @Param        page    query  int     false  "página"   default(1)
// @Param        limit   query  int     false  "tamaño"   default(20)
// @Success      200     {object}  map[string]interface{}
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "parámetros inválidos")
	}
	customers, pagination, err := h.uc.List(c.Query("search"), page)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "customers": customers, "pagination": pagination})
}

// GetByID godoc
// @Summary      Obtener cliente por ID
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "customer": out})
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cliente"
// @Param        body  body  dto.UpdateCustomerRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "customer": out})
}

// History godoc
// @Summary      Historial del cliente (citas y órdenes)
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del cliente"
// @Param        limit  query  int     false  "máximo de entradas por lista"  default(20)
// @Success      200    {object}  dto.CustomerHistoryResponse
// @Router       /api/customers/{id}/history [get]
func (h *CustomerHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.Params("id"), c.QueryInt("limit", 20))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "history": out})
}

// Birthdays godoc
// @Summary      Clientes que cumplen años en el mes dado
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        month  path  int  true  "mes 1-12"
// @Success      200    {array}  dto.CustomerResponse
// @Router       /api/customers/birthday/{month} [get]
func (h *CustomerHandler) Birthdays(c *fiber.Ctx) error {
	month, err := c.ParamsInt("month")
	if err != nil {
		return badRequest(c, "mes inválido")
	}
	out, err := h.uc.Birthdays(month)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "customers": out})
}

// Delete godoc
// @Summary      Eliminar cliente (admin)
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del cliente"
// @Success      200  {object}  map[string]bool
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

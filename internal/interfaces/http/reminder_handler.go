package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/beautybook-api/internal/application/dto"
	"github.com/tu-usuario/beautybook-api/internal/application/reminder"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

// ReminderHandler maneja recordatorios y sus plantillas.
type ReminderHandler struct {
	uc *reminder.UseCase
}

// NewReminderHandler construye el handler.
func NewReminderHandler(uc *reminder.UseCase) *ReminderHandler {
	return &ReminderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear recordatorio
// @Tags         reminders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReminderRequest  true  "Datos del recordatorio"
// @Success      201   {object}  dto.ReminderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reminders [post]
func (h *ReminderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReminderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(GetPrincipal(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "reminder": out})
}

// CreateFromOrder godoc
// @Summary      Crear recordatorio enlazado a una orden
// @Tags         reminders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        orderId  path  string  true  "ID de la orden"
// @Param        body     body  dto.CreateReminderRequest  true  "Datos del recordatorio"
// @Success      201      {object}  dto.ReminderResponse
// @Router       /api/reminders/from-order/{orderId} [post]
func (h *ReminderHandler) CreateFromOrder(c *fiber.Ctx) error {
	var in dto.CreateReminderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	orderID := c.Params("orderId")
	in.OrderID = &orderID
	out, err := h.uc.Create(GetPrincipal(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "reminder": out})
}

// List godoc
// @Summary      Listar recordatorios
// @Tags         reminders
// @Security     Bearer
// @Produce      json
// @Param        customer  query  string  false  "ID de cliente"
// @Param        status    query  string  false  "pending | completed | skipped"
// @Param        from      query  string  false  "fecha desde (YYYY-MM-DD)"
// @Param        to        query  string  false  "fecha hasta (YYYY-MM-DD)"
// @Param        page      query  int     false  "página"  default(1)
// @Param        limit     query  int     false  "tamaño"  default(20)
// @Success      200       {object}  dto.ReminderListResponse
// @Router       /api/reminders [get]
func (h *ReminderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "parámetros inválidos")
	}
	filter := repository.ReminderFilter{
		CustomerID: c.Query("customer"),
	}
	if status := c.Query("status"); status != "" {
		filter.Statuses = []string{status}
	}
	var err error
	if filter.From, err = parseDateQuery(c.Query("from")); err != nil {
		return badRequest(c, "fecha 'from' inválida")
	}
	if filter.To, err = parseDateQuery(c.Query("to")); err != nil {
		return badRequest(c, "fecha 'to' inválida")
	}
	out, err := h.uc.List(filter, page)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "reminders": out.Reminders, "pagination": out.Pagination})
}

// Today godoc
// @Summary      Recordatorios pendientes de hoy
// @Tags         reminders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReminderListResponse
// @Router       /api/reminders/today [get]
func (h *ReminderHandler) Today(c *fiber.Ctx) error {
	out, err := h.uc.Today(time.Now())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "reminders": out.Reminders})
}

// Week godoc
// @Summary      Recordatorios pendientes de la semana en curso, agrupados por fecha
// @Tags         reminders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string][]dto.ReminderResponse
// @Router       /api/reminders/week [get]
func (h *ReminderHandler) Week(c *fiber.Ctx) error {
	out, err := h.uc.Week(time.Now())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "reminders": out})
}

// Update godoc
// @Summary      Actualizar recordatorio
// @Tags         reminders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del recordatorio"
// @Param        body  body  dto.UpdateReminderRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.ReminderResponse
// @Router       /api/reminders/{id} [put]
func (h *ReminderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateReminderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "reminder": out})
}

// Complete godoc
// @Summary      Marcar recordatorio como completado
// @Tags         reminders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del recordatorio"
// @Success      200  {object}  dto.ReminderResponse
// @Router       /api/reminders/{id}/complete [patch]
func (h *ReminderHandler) Complete(c *fiber.Ctx) error {
	out, err := h.uc.Complete(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "reminder": out})
}

// Skip godoc
// @Summary      Marcar recordatorio como omitido
// @Tags         reminders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del recordatorio"
// @Success      200  {object}  dto.ReminderResponse
// @Router       /api/reminders/{id}/skip [patch]
func (h *ReminderHandler) Skip(c *fiber.Ctx) error {
	out, err := h.uc.Skip(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "reminder": out})
}

// Delete godoc
// @Summary      Eliminar recordatorio
// @Tags         reminders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del recordatorio"
// @Success      200  {object}  map[string]bool
// @Router       /api/reminders/{id} [delete]
func (h *ReminderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// CreateTemplate godoc
// @Summary      Crear plantilla de recordatorio
// @Tags         reminders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TemplateRequest  true  "Datos de la plantilla"
// @Success      201   {object}  dto.TemplateResponse
// @Router       /api/reminders/templates [post]
func (h *ReminderHandler) CreateTemplate(c *fiber.Ctx) error {
	var in dto.TemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.CreateTemplate(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "template": out})
}

// ListTemplates godoc
// @Summary      Listar plantillas de recordatorio
// @Tags         reminders
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TemplateResponse
// @Router       /api/reminders/templates [get]
func (h *ReminderHandler) ListTemplates(c *fiber.Ctx) error {
	out, err := h.uc.ListTemplates()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "templates": out})
}

// UpdateTemplate godoc
// @Summary      Actualizar plantilla de recordatorio
// @Tags         reminders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la plantilla"
// @Param        body  body  dto.TemplateRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.TemplateResponse
// @Router       /api/reminders/templates/{id} [put]
func (h *ReminderHandler) UpdateTemplate(c *fiber.Ctx) error {
	var in dto.TemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.UpdateTemplate(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "template": out})
}

// DeleteTemplate godoc
// @Summary      Eliminar plantilla de recordatorio
// @Tags         reminders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la plantilla"
// @Success      200  {object}  map[string]bool
// @Router       /api/reminders/templates/{id} [delete]
func (h *ReminderHandler) DeleteTemplate(c *fiber.Ctx) error {
	if err := h.uc.DeleteTemplate(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

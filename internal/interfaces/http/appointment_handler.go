package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/beautybook-api/internal/application/dto"
	"github.com/tu-usuario/beautybook-api/internal/application/scheduling"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

// AppointmentHandler maneja las peticiones HTTP para Appointment.
type AppointmentHandler struct {
	uc *scheduling.UseCase
}

// NewAppointmentHandler construye el handler.
func NewAppointmentHandler(uc *scheduling.UseCase) *AppointmentHandler {
	return &AppointmentHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cita (rechaza solapes con ErrSlotTaken)
// @Tags         appointments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAppointmentRequest  true  "Datos de la cita"
// @Success      201   {object}  dto.AppointmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/appointments [post]
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), GetPrincipal(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "appointment": out})
}

// List godoc
// @Summary      Listar citas
// @Tags         appointments
// @Security     Bearer
// @Produce      json
// @Param        customer  query  string  false  "ID de cliente"
// @Param        status    query  string  false  "booked | cancelled | completed"
// @Param        from      query  string  false  "fecha desde (YYYY-MM-DD)"
// @Param        to        query  string  false  "fecha hasta (YYYY-MM-DD)"
// @Param        page      query  int     false  "página"  default(1)
// @Param        limit     query  int     false  "tamaño"  default(20)
// @Success      200       {object}  dto.AppointmentListResponse
// @Router       /api/appointments [get]
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "parámetros inválidos")
	}
	filter := repository.AppointmentFilter{
		CustomerID: c.Query("customer"),
		Status:     c.Query("status"),
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
	return c.JSON(fiber.Map{"success": true, "appointments": out.Appointments, "pagination": out.Pagination})
}

// Calendar godoc
// @Summary      Vista calendario: citas del rango agrupadas por día
// @Tags         appointments
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  true  "fecha desde (YYYY-MM-DD)"
// @Param        to    query  string  true  "fecha hasta (YYYY-MM-DD)"
// @Success      200   {object}  map[string][]dto.AppointmentResponse
// @Router       /api/appointments/calendar [get]
func (h *AppointmentHandler) Calendar(c *fiber.Ctx) error {
	from, err := parseDateQuery(c.Query("from"))
	if err != nil || from == nil {
		return badRequest(c, "fecha 'from' requerida (YYYY-MM-DD)")
	}
	to, err := parseDateQuery(c.Query("to"))
	if err != nil || to == nil {
		return badRequest(c, "fecha 'to' requerida (YYYY-MM-DD)")
	}
	out, err := h.uc.Calendar(c.Context(), *from, *to)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "calendar": out})
}

// GetByID godoc
// @Summary      Obtener cita por ID
// @Tags         appointments
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la cita"
// @Success      200  {object}  dto.AppointmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/appointments/{id} [get]
func (h *AppointmentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "appointment": out})
}

// Update godoc
// @Summary      Actualizar cita (recheck de solape; cancelar borra la orden enlazada)
// @Tags         appointments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cita"
// @Param        body  body  dto.UpdateAppointmentRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.AppointmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/appointments/{id} [put]
func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "appointment": out})
}

// Delete godoc
// @Summary      Eliminar cita (borra primero la orden enlazada)
// @Tags         appointments
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la cita"
// @Success      200  {object}  map[string]bool
// @Router       /api/appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/beautybook-api/internal/application/dto"
	"github.com/tu-usuario/beautybook-api/internal/application/report"
	"github.com/tu-usuario/beautybook-api/internal/application/usecase"
)

// ServiceHandler maneja las peticiones HTTP para Service.
type ServiceHandler struct {
	uc      *usecase.ServiceUseCase
	reports *report.UseCase
}

// NewServiceHandler construye el handler.
func NewServiceHandler(uc *usecase.ServiceUseCase, reports *report.UseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc, reports: reports}
}

// Create godoc
// @Summary      Crear servicio
// @Tags         services
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateServiceRequest  true  "Datos del servicio"
// @Success      201   {object}  dto.ServiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/services [post]
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "service": out})
}

// List godoc
// @Summary      Listar servicios
// @Tags         services
// @Security     Bearer
// @Produce      json
// @Param        isActive  query  bool  false  "filtrar por activo"
// @Success      200  {array}  dto.ServiceResponse
// @Router       /api/services [get]
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	var isActive *bool
	if raw := c.Query("isActive"); raw != "" {
		v := raw == "true"
		isActive = &v
	}
	out, err := h.uc.List(isActive)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "services": out})
}

// GetByID godoc
// @Summary      Obtener servicio por ID
// @Tags         services
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del servicio"
// @Success      200  {object}  dto.ServiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/services/{id} [get]
func (h *ServiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "service": out})
}

// Update godoc
// @Summary      Actualizar servicio
// @Tags         services
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del servicio"
// @Param        body  body  dto.UpdateServiceRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.ServiceResponse
// @Router       /api/services/{id} [put]
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "service": out})
}

// Stats godoc
// @Summary      Estadísticas de uso del servicio
// @Tags         services
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del servicio"
// @Success      200  {object}  dto.ServiceStatsResponse
// @Router       /api/services/{id}/stats [get]
func (h *ServiceHandler) Stats(c *fiber.Ctx) error {
	out, err := h.reports.ServiceStats(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "stats": out})
}

// Delete godoc
// @Summary      Eliminar servicio
// @Tags         services
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del servicio"
// @Success      200  {object}  map[string]bool
// @Router       /api/services/{id} [delete]
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/beautybook-api/internal/application/dto"
	"github.com/tu-usuario/beautybook-api/internal/application/usecase"
)

// SettingsHandler maneja el registro único de configuración.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener configuración (defaults si nunca se guardó)
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "settings": out})
}

// Update godoc
// @Summary      Actualizar configuración (parcial, solo admin)
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateSettingsRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "settings": out})
}

// Reset godoc
// @Summary      Restaurar configuración por defecto (solo admin)
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/settings/reset [post]
func (h *SettingsHandler) Reset(c *fiber.Ctx) error {
	out, err := h.uc.Reset()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "settings": out})
}

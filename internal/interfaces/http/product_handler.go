package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/beautybook-api/internal/application/dto"
	"github.com/tu-usuario/beautybook-api/internal/application/inventory"
	"github.com/tu-usuario/beautybook-api/internal/application/usecase"
	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

// ProductHandler maneja las peticiones HTTP de productos y stock.
type ProductHandler struct {
	uc        *usecase.ProductUseCase
	inventory *inventory.Manager
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, inv *inventory.Manager) *ProductHandler {
	return &ProductHandler{uc: uc, inventory: inv}
}

// Create godoc
// @Summary      Crear producto (stock inicial 0)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "product": out})
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        isActive  query  bool  false  "filtrar por activo"
// @Param        lowStock  query  bool  false  "solo stock bajo (stock <= alerta)"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var filter repository.ProductFilter
	if raw := c.Query("isActive"); raw != "" {
		v := raw == "true"
		filter.IsActive = &v
	}
	filter.LowStock = c.QueryBool("lowStock", false)
	out, err := h.uc.List(filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "products": out})
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "product": out})
}

// Update godoc
// @Summary      Actualizar producto (no admite currentStock)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "product": out})
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  map[string]bool
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// AddStock godoc
// @Summary      Entrada manual de stock
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.StockChangeRequest  true  "cantidad (>0) y razón"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock/add [post]
func (h *ProductHandler) AddStock(c *fiber.Ctx) error {
	var in dto.StockChangeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	mov, err := h.inventory.AddStock(c.Context(), c.Params("id"), inventory.DeltaInput{
		Delta:  in.Quantity,
		Reason: in.Reason,
		Notes:  in.Notes,
		Actor:  GetUserID(c),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "movement": movementToResponse(mov)})
}

// AdjustStock godoc
// @Summary      Ajuste manual de stock (delta con signo, piso en 0)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.StockChangeRequest  true  "cantidad (≠0) y razón"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock/adjust [post]
func (h *ProductHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.StockChangeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	mov, err := h.inventory.AdjustStock(c.Context(), c.Params("id"), inventory.DeltaInput{
		Delta:  in.Quantity,
		Reason: in.Reason,
		Notes:  in.Notes,
		Actor:  GetUserID(c),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "movement": movementToResponse(mov)})
}

// StockHistory godoc
// @Summary      Historial de movimientos de un producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del producto"
// @Param        page   query  int     false  "página"  default(1)
// @Param        limit  query  int     false  "tamaño"  default(20)
// @Success      200    {object}  map[string]interface{}
// @Router       /api/products/{id}/stock-history [get]
func (h *ProductHandler) StockHistory(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "parámetros inválidos")
	}
	page.Normalize(20)
	filter := repository.MovementFilter{
		ProductID: c.Params("id"),
		Limit:     page.Limit,
		Offset:    page.Offset(),
	}
	movs, total, err := h.inventory.ListMovements(filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"movements":  movementsToResponses(movs),
		"pagination": dto.NewPagination(page.Page, page.Limit, total),
	})
}

// ListMovements godoc
// @Summary      Listado global del ledger de stock
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        product  query  string  false  "ID de producto"
// @Param        type     query  string  false  "in | out | adjustment"
// @Param        from     query  string  false  "fecha desde (YYYY-MM-DD)"
// @Param        to       query  string  false  "fecha hasta (YYYY-MM-DD)"
// @Param        page     query  int     false  "página"  default(1)
// @Param        limit    query  int     false  "tamaño"  default(20)
// @Success      200      {object}  map[string]interface{}
// @Router       /api/products/stock-movements [get]
func (h *ProductHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "parámetros inválidos")
	}
	page.Normalize(20)
	filter := repository.MovementFilter{
		ProductID: c.Query("product"),
		Type:      c.Query("type"),
		Limit:     page.Limit,
		Offset:    page.Offset(),
	}
	var err error
	if filter.From, err = parseDateQuery(c.Query("from")); err != nil {
		return badRequest(c, "fecha 'from' inválida")
	}
	if filter.To, err = parseDateQuery(c.Query("to")); err != nil {
		return badRequest(c, "fecha 'to' inválida")
	}
	movs, total, err := h.inventory.ListMovements(filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"movements":  movementsToResponses(movs),
		"pagination": dto.NewPagination(page.Page, page.Limit, total),
	})
}

// parseDateQuery acepta YYYY-MM-DD o RFC3339; cadena vacía devuelve nil.
func parseDateQuery(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func movementToResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		Notes:     m.Notes,
		OrderID:   m.OrderID,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	}
}

func movementsToResponses(movs []*entity.StockMovement) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, movementToResponse(m))
	}
	return out
}

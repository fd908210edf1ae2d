package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/inventory"
)

// InventoryHandler insumos y ajustes de stock.
type InventoryHandler struct {
	uc *inventory.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear insumo
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryItemRequest  true  "Datos del insumo"
// @Success      201   {object}  dto.Envelope{data=dto.InventoryItemResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/inventario [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryItemRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetRestauranteID(c), GetUserID(c), in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, "insumo creado", out)
}

// List godoc
// @Summary      Listar insumos
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        categoria  query  string  false  "Categoría"
// @Param        estado     query  string  false  "normal, bajo, critico, agotado"
// @Param        busqueda   query  string  false  "Texto en nombre o proveedor"
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200        {object}  dto.Envelope{data=dto.InventoryListResponse}
// @Router       /api/inventario [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	in := dto.InventoryListRequest{
		PageRequest: pageQuery(c),
		Categoria:   c.Query("categoria"),
		Estado:      c.Query("estado"),
		Busqueda:    c.Query("busqueda"),
	}
	out, err := h.uc.List(c.UserContext(), GetRestauranteID(c), in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "insumos", out)
}

// Stats godoc
// @Summary      Estadísticas de inventario
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.InventoryStatsResponse}
// @Router       /api/inventario/estadisticas [get]
func (h *InventoryHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext(), GetRestauranteID(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "estadísticas de inventario", out)
}

// Alerts godoc
// @Summary      Alertas de stock y vencimiento
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.InventoryAlertsResponse}
// @Router       /api/inventario/alertas [get]
func (h *InventoryHandler) Alerts(c *fiber.Ctx) error {
	out, err := h.uc.Alerts(c.UserContext(), GetRestauranteID(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "alertas de inventario", out)
}

// GetByID godoc
// @Summary      Obtener insumo
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del insumo"
// @Success      200  {object}  dto.Envelope{data=dto.InventoryItemResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/inventario/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), GetRestauranteID(c), id)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "insumo", out)
}

// Update godoc
// @Summary      Actualizar insumo
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID del insumo"
// @Param        body  body  dto.UpdateInventoryItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Envelope{data=dto.InventoryItemResponse}
// @Router       /api/inventario/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in dto.UpdateInventoryItemRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetRestauranteID(c), id, in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "insumo actualizado", out)
}

// Delete godoc
// @Summary      Eliminar insumo (baja lógica)
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del insumo"
// @Success      200  {object}  dto.Envelope
// @Router       /api/inventario/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), GetRestauranteID(c), id); err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "insumo eliminado", nil)
}

// Adjust godoc
// @Summary      Ajustar stock (entrada / salida)
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del insumo"
// @Param        body  body  dto.AdjustStockRequest  true  "cantidad, tipo, motivo"
// @Success      200   {object}  dto.Envelope{data=dto.InventoryItemResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/inventario/{id}/ajustar [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in dto.AdjustStockRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Adjust(c.UserContext(), GetRestauranteID(c), GetUserID(c), id, in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "stock ajustado", out)
}

// Movements godoc
// @Summary      Historial de movimientos de un insumo
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del insumo"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.Envelope{data=dto.StockMovementListResponse}
// @Router       /api/inventario/{id}/movimientos [get]
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	out, err := h.uc.Movements(c.UserContext(), GetRestauranteID(c), id, pageQuery(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "movimientos", out)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/orders"
	"github.com/jhoicas/Restaurante-api/internal/domain/authz"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// OrderHandler pedidos y vista de cocina.
type OrderHandler struct {
	uc *orders.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pedido
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Mesa, ítems y propina"
// @Success      201   {object}  dto.Envelope{data=dto.OrderResponse}
// @Failure      400   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/pedidos [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetRestauranteID(c), GetUserID(c), in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, "pedido creado", out)
}

// List godoc
// @Summary      Listar pedidos
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        estado    query  string  false  "Estado"
// @Param        mesaId    query  string  false  "Mesa"
// @Param        meseroId  query  string  false  "Mesero"
// @Param        fecha     query  string  false  "Día (YYYY-MM-DD)"
// @Param        limit     query  int     false  "Límite"  default(20)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Success      200       {object}  dto.Envelope{data=dto.OrderListResponse}
// @Router       /api/pedidos [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	in := dto.OrderListRequest{
		PageRequest: pageQuery(c),
		Estado:      c.Query("estado"),
		MesaID:      c.Query("mesaId"),
		MeseroID:    c.Query("meseroId"),
		Fecha:       c.Query("fecha"),
	}
	out, err := h.uc.List(c.UserContext(), GetRestauranteID(c), in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "pedidos", out)
}

// Kitchen godoc
// @Summary      Pedidos activos para cocina (más antiguos primero)
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.OrderResponse}
// @Router       /api/pedidos/cocina [get]
func (h *OrderHandler) Kitchen(c *fiber.Ctx) error {
	out, err := h.uc.Kitchen(c.UserContext(), GetRestauranteID(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "pedidos en cocina", out)
}

// Stats godoc
// @Summary      Estadísticas de pedidos
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        hasta  query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200    {object}  dto.Envelope{data=dto.OrderStatsResponse}
// @Router       /api/pedidos/estadisticas [get]
func (h *OrderHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext(), GetRestauranteID(c), c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "estadísticas de pedidos", out)
}

// GetByID godoc
// @Summary      Obtener pedido
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.Envelope{data=dto.OrderResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/pedidos/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), GetRestauranteID(c), id)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "pedido", out)
}

// Update godoc
// @Summary      Modificar ítems del pedido (solo pendiente)
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderRequest  true  "Ítems, propina, notas"
// @Success      200   {object}  dto.Envelope{data=dto.OrderResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/pedidos/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in dto.UpdateOrderRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.UpdateItems(c.UserContext(), GetRestauranteID(c), id, in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "pedido actualizado", out)
}

// ChangeStatus godoc
// @Summary      Cambiar estado del pedido
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del pedido"
// @Param        body  body  dto.ChangeStatusRequest  true  "estado"
// @Success      200   {object}  dto.Envelope{data=dto.OrderResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/pedidos/{id}/estado [patch]
func (h *OrderHandler) ChangeStatus(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in dto.ChangeStatusRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	// Cancelar por esta vía exige el mismo permiso que DELETE.
	if in.Estado == entity.OrderCancelado && !authz.Can(GetRole(c), authz.PedidosCancelar) {
		return forbidden(c, authz.PedidosCancelar)
	}
	out, err := h.uc.ChangeStatus(c.UserContext(), GetRestauranteID(c), GetUserID(c), id, in.Estado)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "estado del pedido actualizado", out)
}

// Cancel godoc
// @Summary      Cancelar pedido
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.Envelope{data=dto.OrderResponse}
// @Failure      400  {object}  dto.Envelope
// @Router       /api/pedidos/{id} [delete]
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	out, err := h.uc.Cancel(c.UserContext(), GetRestauranteID(c), GetUserID(c), id)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "pedido cancelado", out)
}

// Ticket godoc
// @Summary      Ticket del pedido (PDF)
// @Tags         pedidos
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.Envelope
// @Router       /api/pedidos/{id}/ticket [get]
func (h *OrderHandler) Ticket(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	pdf, filename, err := h.uc.Ticket(c.UserContext(), GetRestauranteID(c), id)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdf)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/reservations"
	"github.com/jhoicas/Restaurante-api/internal/domain/authz"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// ReservationHandler reservaciones.
type ReservationHandler struct {
	uc *reservations.ReservationUseCase
}

// NewReservationHandler construye el handler.
func NewReservationHandler(uc *reservations.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{uc: uc}
}

// Create godoc
// @Summary      Crear reservación
// @Tags         reservaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReservationRequest  true  "Cliente, fecha, hora, personas"
// @Success      201   {object}  dto.Envelope{data=dto.ReservationResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/reservaciones [post]
func (h *ReservationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReservationRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetRestauranteID(c), in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, "reservación creada", out)
}

// List godoc
// @Summary      Listar reservaciones
// @Tags         reservaciones
// @Security     Bearer
// @Produce      json
// @Param        fecha   query  string  false  "Día (YYYY-MM-DD)"
// @Param        estado  query  string  false  "Estado"
// @Param        mesaId  query  string  false  "Mesa"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.Envelope{data=dto.ReservationListResponse}
// @Router       /api/reservaciones [get]
func (h *ReservationHandler) List(c *fiber.Ctx) error {
	in := dto.ReservationListRequest{
		PageRequest: pageQuery(c),
		Fecha:       c.Query("fecha"),
		Estado:      c.Query("estado"),
		MesaID:      c.Query("mesaId"),
	}
	out, err := h.uc.List(c.UserContext(), GetRestauranteID(c), in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "reservaciones", out)
}

// Today godoc
// @Summary      Agenda de hoy
// @Tags         reservaciones
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.ReservationResponse}
// @Router       /api/reservaciones/hoy [get]
func (h *ReservationHandler) Today(c *fiber.Ctx) error {
	out, err := h.uc.Today(c.UserContext(), GetRestauranteID(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "reservaciones de hoy", out)
}

// Stats godoc
// @Summary      Estadísticas de reservaciones
// @Tags         reservaciones
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        hasta  query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200    {object}  dto.Envelope{data=dto.ReservationStatsResponse}
// @Router       /api/reservaciones/estadisticas [get]
func (h *ReservationHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext(), GetRestauranteID(c), c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "estadísticas de reservaciones", out)
}

// GetByID godoc
// @Summary      Obtener reservación
// @Tags         reservaciones
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la reservación"
// @Success      200  {object}  dto.Envelope{data=dto.ReservationResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/reservaciones/{id} [get]
func (h *ReservationHandler) GetByID(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), GetRestauranteID(c), id)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "reservación", out)
}

// Update godoc
// @Summary      Actualizar reservación (pendiente o confirmada)
// @Tags         reservaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID de la reservación"
// @Param        body  body  dto.UpdateReservationRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Envelope{data=dto.ReservationResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/reservaciones/{id} [put]
func (h *ReservationHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in dto.UpdateReservationRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetRestauranteID(c), id, in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "reservación actualizada", out)
}

// ChangeStatus godoc
// @Summary      Cambiar estado de la reservación
// @Tags         reservaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la reservación"
// @Param        body  body  dto.ChangeStatusRequest  true  "estado"
// @Success      200   {object}  dto.Envelope{data=dto.ReservationResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/reservaciones/{id}/estado [patch]
func (h *ReservationHandler) ChangeStatus(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in dto.ChangeStatusRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	if in.Estado == entity.ReservationCancelada && !authz.Can(GetRole(c), authz.ReservacionesCancelar) {
		return forbidden(c, authz.ReservacionesCancelar)
	}
	out, err := h.uc.ChangeStatus(c.UserContext(), GetRestauranteID(c), id, in.Estado)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "estado de la reservación actualizado", out)
}

// AssignTable godoc
// @Summary      Asignar o quitar mesa
// @Tags         reservaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la reservación"
// @Param        body  body  dto.AssignTableRequest  true  "mesaId (null desasigna)"
// @Success      200   {object}  dto.Envelope{data=dto.ReservationResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/reservaciones/{id}/mesa [patch]
func (h *ReservationHandler) AssignTable(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in dto.AssignTableRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.AssignTable(c.UserContext(), GetRestauranteID(c), id, in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "mesa asignada", out)
}

// Cancel godoc
// @Summary      Cancelar reservación
// @Tags         reservaciones
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la reservación"
// @Success      200  {object}  dto.Envelope{data=dto.ReservationResponse}
// @Router       /api/reservaciones/{id} [delete]
func (h *ReservationHandler) Cancel(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	out, err := h.uc.Cancel(c.UserContext(), GetRestauranteID(c), id)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "reservación cancelada", out)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
)

// TableHandler mesas del salón.
type TableHandler struct {
	uc *usecase.TableUseCase
}

// NewTableHandler construye el handler.
func NewTableHandler(uc *usecase.TableUseCase) *TableHandler {
	return &TableHandler{uc: uc}
}

// Create godoc
// @Summary      Crear mesa
// @Tags         mesas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTableRequest  true  "Datos de la mesa"
// @Success      201   {object}  dto.Envelope{data=dto.TableResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/mesas [post]
func (h *TableHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTableRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetRestauranteID(c), in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, "mesa creada", out)
}

// List godoc
// @Summary      Listar mesas
// @Tags         mesas
// @Security     Bearer
// @Produce      json
// @Param        estado     query  string  false  "disponible, ocupada, reservada, en_limpieza"
// @Param        ubicacion  query  string  false  "Ubicación"
// @Param        meseroId   query  string  false  "Mesero asignado"
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200        {object}  dto.Envelope{data=dto.TableListResponse}
// @Router       /api/mesas [get]
func (h *TableHandler) List(c *fiber.Ctx) error {
	in := dto.TableListRequest{
		PageRequest: pageQuery(c),
		Estado:      c.Query("estado"),
		Ubicacion:   c.Query("ubicacion"),
		MeseroID:    c.Query("meseroId"),
	}
	out, err := h.uc.List(c.UserContext(), GetRestauranteID(c), in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "mesas", out)
}

// Stats godoc
// @Summary      Estadísticas de mesas
// @Tags         mesas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.TableStatsResponse}
// @Router       /api/mesas/estadisticas [get]
func (h *TableHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext(), GetRestauranteID(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "estadísticas de mesas", out)
}

// GetByID godoc
// @Summary      Obtener mesa
// @Tags         mesas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la mesa"
// @Success      200  {object}  dto.Envelope{data=dto.TableResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/mesas/{id} [get]
func (h *TableHandler) GetByID(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), GetRestauranteID(c), id)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "mesa", out)
}

// Update godoc
// @Summary      Actualizar mesa
// @Tags         mesas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la mesa"
// @Param        body  body  dto.UpdateTableRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Envelope{data=dto.TableResponse}
// @Router       /api/mesas/{id} [put]
func (h *TableHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in dto.UpdateTableRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetRestauranteID(c), id, in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "mesa actualizada", out)
}

// ChangeStatus godoc
// @Summary      Cambiar estado de la mesa
// @Tags         mesas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la mesa"
// @Param        body  body  dto.ChangeStatusRequest  true  "estado"
// @Success      200   {object}  dto.Envelope{data=dto.TableResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/mesas/{id}/estado [patch]
func (h *TableHandler) ChangeStatus(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in dto.ChangeStatusRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.ChangeStatus(c.UserContext(), GetRestauranteID(c), id, in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "estado de mesa actualizado", out)
}

// AssignWaiter godoc
// @Summary      Asignar o quitar mesero
// @Tags         mesas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la mesa"
// @Param        body  body  dto.AssignWaiterRequest  true  "meseroId (null desasigna)"
// @Success      200   {object}  dto.Envelope{data=dto.TableResponse}
// @Router       /api/mesas/{id}/mesero [patch]
func (h *TableHandler) AssignWaiter(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in dto.AssignWaiterRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.AssignWaiter(c.UserContext(), GetRestauranteID(c), id, in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "mesero asignado", out)
}

// QR godoc
// @Summary      Código QR de la mesa (PNG)
// @Tags         mesas
// @Security     Bearer
// @Produce      png
// @Param        id   path  string  true  "ID de la mesa"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.Envelope
// @Router       /api/mesas/{id}/qr [get]
func (h *TableHandler) QR(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	png, err := h.uc.QR(c.UserContext(), GetRestauranteID(c), id)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// Delete godoc
// @Summary      Eliminar mesa (baja lógica)
// @Tags         mesas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la mesa"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /api/mesas/{id} [delete]
func (h *TableHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), GetRestauranteID(c), id); err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "mesa eliminada", nil)
}

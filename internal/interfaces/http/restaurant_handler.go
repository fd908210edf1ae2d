package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
)

// RestaurantHandler datos del restaurante del usuario autenticado.
type RestaurantHandler struct {
	uc *usecase.RestaurantUseCase
}

// NewRestaurantHandler construye el handler.
func NewRestaurantHandler(uc *usecase.RestaurantUseCase) *RestaurantHandler {
	return &RestaurantHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener restaurante
// @Tags         restaurante
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.RestaurantResponse}
// @Router       /api/restaurante [get]
func (h *RestaurantHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetRestauranteID(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "restaurante", out)
}

// Update godoc
// @Summary      Actualizar restaurante
// @Tags         restaurante
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateRestaurantRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Envelope{data=dto.RestaurantResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/restaurante [put]
func (h *RestaurantHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRestaurantRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetRestauranteID(c), in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "restaurante actualizado", out)
}

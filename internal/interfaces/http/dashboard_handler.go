package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Restaurante-api/internal/application/analytics"
)

// DashboardHandler maneja el resumen del panel principal.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del día y del mes
// @Description  Ventas entregadas de hoy y del mes, pedidos activos, mesas ocupadas, reservaciones de hoy,
// @Description  insumos con stock bajo y los 5 productos más vendidos del mes.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.DashboardSummaryDTO}
// @Router       /api/dashboard/resumen [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext(), GetRestauranteID(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "resumen", summary)
}

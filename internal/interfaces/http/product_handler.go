package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
)

// ProductHandler carta del restaurante.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.Envelope{data=dto.ProductResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/productos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetRestauranteID(c), in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, "producto creado", out)
}

// List godoc
// @Summary      Listar productos
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        categoria   query  string  false  "Categoría"
// @Param        disponible  query  bool    false  "Disponible"
// @Param        destacado   query  bool    false  "Destacado"
// @Param        busqueda    query  string  false  "Texto en nombre o descripción"
// @Param        limit       query  int     false  "Límite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200         {object}  dto.Envelope{data=dto.ProductListResponse}
// @Router       /api/productos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	disponible, err := boolQuery(c, "disponible")
	if err != nil {
		return err
	}
	destacado, err := boolQuery(c, "destacado")
	if err != nil {
		return err
	}
	in := dto.ProductListRequest{
		PageRequest: pageQuery(c),
		Categoria:   c.Query("categoria"),
		Disponible:  disponible,
		Destacado:   destacado,
		Busqueda:    c.Query("busqueda"),
	}
	out, err := h.uc.List(c.UserContext(), GetRestauranteID(c), in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "productos", out)
}

// Stats godoc
// @Summary      Estadísticas de productos
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.ProductStatsResponse}
// @Router       /api/productos/estadisticas [get]
func (h *ProductHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext(), GetRestauranteID(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "estadísticas de productos", out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Envelope{data=dto.ProductResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/productos/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), GetRestauranteID(c), id)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "producto", out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.Envelope{data=dto.ProductResponse}
// @Failure      400   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/productos/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in dto.UpdateProductRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetRestauranteID(c), id, in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "producto actualizado", out)
}

// ToggleAvailability godoc
// @Summary      Cambiar disponibilidad
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "ID del producto"
// @Param        body  body  dto.ToggleAvailabilityRequest  false  "disponible (sin cuerpo invierte)"
// @Success      200   {object}  dto.Envelope{data=dto.ProductResponse}
// @Router       /api/productos/{id}/disponibilidad [patch]
func (h *ProductHandler) ToggleAvailability(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in dto.ToggleAvailabilityRequest
	if len(c.Body()) > 0 {
		if err := parseBody(c, &in); err != nil {
			return err
		}
	}
	out, err := h.uc.ToggleAvailability(c.UserContext(), GetRestauranteID(c), id, in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "disponibilidad actualizada", out)
}

// Delete godoc
// @Summary      Eliminar producto (baja lógica)
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Envelope
// @Router       /api/productos/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), GetRestauranteID(c), id); err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, "producto eliminado", nil)
}

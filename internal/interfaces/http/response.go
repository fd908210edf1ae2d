package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

// ok escribe el envelope de éxito.
func ok(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.Envelope{Success: true, Message: message, Data: data})
}

func fail(c *fiber.Ctx, status int, message string, fields []domain.FieldError) error {
	return c.Status(status).JSON(dto.Envelope{Success: false, Message: message, Errors: fields})
}

// errBadBody cuerpo JSON ilegible.
var errBadBody = domain.NewValidationError("body", "cuerpo JSON inválido")

// statusFor traduce un error de dominio a código HTTP.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrStaleVersion):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// NewErrorHandler ErrorHandler de Fiber: todos los errores devueltos por handlers terminan en el envelope.
// Los 500 se registran; su mensaje solo se expone si exposeInternal.
func NewErrorHandler(log *logger.Logger, exposeInternal bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fail(c, fe.Code, fe.Message, nil)
		}

		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return fail(c, fiber.StatusBadRequest, "datos inválidos", ve.Fields)
		}

		status := statusFor(err)
		if status < fiber.StatusInternalServerError {
			return fail(c, status, err.Error(), nil)
		}

		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("restaurante_id", GetRestauranteID(c)).
			Msg("error interno")
		msg := "error interno del servidor"
		if exposeInternal {
			msg = err.Error()
		}
		return fail(c, status, msg, nil)
	}
}

package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/domain/authz"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/pkg/jwt"
)

// Locals keys para el usuario autenticado.
const (
	LocalUserID        = "user_id"
	LocalRestauranteID = "restaurante_id"
	LocalRole          = "role"
)

// tokenVerifier lo satisface *jwt.Signer.
type tokenVerifier interface {
	Verify(token string) (jwt.Session, error)
}

// userLoader lo satisface repository.UserRepository.
type userLoader interface {
	GetByID(ctx context.Context, restauranteID, id string) (*entity.User, error)
}

// AuthMiddleware valida el Bearer Token JWT, recarga el usuario (debe existir y estar activo en el
// restaurante del token) y guarda en c.Locals el id, el restaurante y el rol vigente.
func AuthMiddleware(tokens tokenVerifier, users userLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return fail(c, fiber.StatusUnauthorized, "Authorization header requerido", nil)
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fail(c, fiber.StatusUnauthorized, "formato: Bearer <token>", nil)
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return fail(c, fiber.StatusUnauthorized, "token vacío", nil)
		}
		sess, err := tokens.Verify(tokenString)
		if errors.Is(err, jwt.ErrExpired) {
			return fail(c, fiber.StatusUnauthorized, "token expirado", nil)
		}
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "token inválido", nil)
		}

		u, err := users.GetByID(c.UserContext(), sess.RestauranteID, sess.UserID)
		if err != nil {
			return err
		}
		if u == nil {
			return fail(c, fiber.StatusUnauthorized, "usuario no encontrado", nil)
		}
		if !u.Active {
			return fail(c, fiber.StatusUnauthorized, "usuario inactivo", nil)
		}

		c.Locals(LocalUserID, u.ID)
		c.Locals(LocalRestauranteID, u.RestauranteID)
		c.Locals(LocalRole, u.Role)
		return c.Next()
	}
}

// RequirePermission exige que el rol del usuario autenticado tenga perm. Va después de AuthMiddleware.
func RequirePermission(perm authz.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return fail(c, fiber.StatusUnauthorized, "no autenticado", nil)
		}
		if !authz.Can(role, perm) {
			return forbidden(c, perm)
		}
		return c.Next()
	}
}

func forbidden(c *fiber.Ctx, perm authz.Permission) error {
	return fail(c, fiber.StatusForbidden, "permiso requerido: "+string(perm), nil)
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetRestauranteID devuelve el restaurante del usuario autenticado.
func GetRestauranteID(c *fiber.Ctx) string { return localString(c, LocalRestauranteID) }

// GetRole devuelve el rol vigente del usuario autenticado.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

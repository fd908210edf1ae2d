package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/apptest"
	"github.com/jhoicas/Restaurante-api/internal/domain/authz"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Restaurante-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Restaurante-api/pkg/jwt"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret     = "test-secret-key-for-unit-tests"
	testUserID        = "00000000-0000-0000-0000-000000000001"
	testRestauranteID = "00000000-0000-0000-0000-000000000002"
	testIssuer        = "restaurante-api-test"
	testExpMin        = 60
)

// seedUser guarda un usuario con el rol indicado en el store.
func seedUser(t *testing.T, store *apptest.Store, role string, active bool) {
	t.Helper()
	now := time.Now()
	err := store.Repos().Users.Create(context.Background(), &entity.User{
		ID: testUserID, RestauranteID: testRestauranteID, Nombre: "Prueba", Email: "prueba@test.co",
		Role: role, Active: active, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y recargar el usuario
//   - RequirePermission para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(store *apptest.Store, perm authz.Permission) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.NewErrorHandler(logger.Nop(), true)})
	app.Get("/protected",
		apphttp.AuthMiddleware(pkgjwt.NewSigner(testJWTSecret, testIssuer, time.Hour), store.Repos().Users),
		apphttp.RequirePermission(perm),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"user_id":        apphttp.GetUserID(c),
				"restaurante_id": apphttp.GetRestauranteID(c),
				"role":           apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	signer := pkgjwt.NewSigner(testJWTSecret, testIssuer, testExpMin*time.Minute)
	tok, err := signer.Issue(pkgjwt.Session{UserID: testUserID, RestauranteID: testRestauranteID, Role: role})
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeMessage(t *testing.T, resp *http.Response) (bool, string) {
	t.Helper()
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Success, body.Message
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermission
// ──────────────────────────────────────────────────────────────────────────────

func TestRequirePermission_AdminPuedeTodo(t *testing.T) {
	store := apptest.NewStore()
	seedUser(t, store, entity.RoleAdmin, true)

	resp := doRequest(t, buildTestApp(store, authz.EmpleadosEliminar), tokenForRole(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testRestauranteID, body["restaurante_id"])
	assert.Equal(t, entity.RoleAdmin, body["role"])
}

func TestRequirePermission_MeseroCreaPedidos(t *testing.T) {
	store := apptest.NewStore()
	seedUser(t, store, entity.RoleMesero, true)

	resp := doRequest(t, buildTestApp(store, authz.PedidosCrear), tokenForRole(t, entity.RoleMesero))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequirePermission_MeseroBloqueadoEnEmpleados(t *testing.T) {
	store := apptest.NewStore()
	seedUser(t, store, entity.RoleMesero, true)

	resp := doRequest(t, buildTestApp(store, authz.EmpleadosVer), tokenForRole(t, entity.RoleMesero))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	success, msg := decodeMessage(t, resp)
	assert.False(t, success)
	assert.Contains(t, msg, "empleados:ver")
}

// El rol vigente es el de la base de datos, no el del token.
func TestRequirePermission_UsaRolActual(t *testing.T) {
	store := apptest.NewStore()
	seedUser(t, store, entity.RoleCocinero, true)

	resp := doRequest(t, buildTestApp(store, authz.EmpleadosVer), tokenForRole(t, entity.RoleAdmin))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	store := apptest.NewStore()
	resp := doRequest(t, buildTestApp(store, authz.PerfilVer), "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	store := apptest.NewStore()
	resp := doRequest(t, buildTestApp(store, authz.PerfilVer), "Token abc")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	store := apptest.NewStore()
	resp := doRequest(t, buildTestApp(store, authz.PerfilVer), "Bearer token.invalido.aqui")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	store := apptest.NewStore()
	seedUser(t, store, entity.RoleAdmin, true)
	emitido := func() time.Time { return time.Now().Add(-2 * time.Hour) }
	signer := pkgjwt.NewSigner(testJWTSecret, testIssuer, time.Hour, pkgjwt.WithClock(emitido))
	tok, err := signer.Issue(pkgjwt.Session{UserID: testUserID, RestauranteID: testRestauranteID, Role: entity.RoleAdmin})
	require.NoError(t, err)

	resp := doRequest(t, buildTestApp(store, authz.PerfilVer), "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_, msg := decodeMessage(t, resp)
	assert.Equal(t, "token expirado", msg)
}

func TestAuthMiddleware_OtroEmisor_Retorna401(t *testing.T) {
	store := apptest.NewStore()
	seedUser(t, store, entity.RoleAdmin, true)
	tok, err := pkgjwt.NewSigner(testJWTSecret, "otra-api", time.Hour).
		Issue(pkgjwt.Session{UserID: testUserID, RestauranteID: testRestauranteID, Role: entity.RoleAdmin})
	require.NoError(t, err)

	resp := doRequest(t, buildTestApp(store, authz.PerfilVer), "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_, msg := decodeMessage(t, resp)
	assert.Equal(t, "token inválido", msg)
}

func TestAuthMiddleware_UsuarioInexistente_Retorna401(t *testing.T) {
	store := apptest.NewStore()
	resp := doRequest(t, buildTestApp(store, authz.PerfilVer), tokenForRole(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_, msg := decodeMessage(t, resp)
	assert.Equal(t, "usuario no encontrado", msg)
}

func TestAuthMiddleware_UsuarioInactivo_Retorna401(t *testing.T) {
	store := apptest.NewStore()
	seedUser(t, store, entity.RoleAdmin, false)

	resp := doRequest(t, buildTestApp(store, authz.PerfilVer), tokenForRole(t, entity.RoleAdmin))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Restaurante-api/internal/application/analytics"
	"github.com/jhoicas/Restaurante-api/internal/application/auth"
	"github.com/jhoicas/Restaurante-api/internal/application/inventory"
	"github.com/jhoicas/Restaurante-api/internal/application/orders"
	"github.com/jhoicas/Restaurante-api/internal/application/reservations"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	"github.com/jhoicas/Restaurante-api/internal/domain/authz"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	RestaurantUC  *usecase.RestaurantUseCase
	UserUC        *usecase.UserUseCase
	ProductUC     *usecase.ProductUseCase
	TableUC       *usecase.TableUseCase
	InventoryUC   *inventory.InventoryUseCase
	OrderUC       *orders.OrderUseCase
	ReservationUC *reservations.ReservationUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	Users         userLoader
	Tokens        tokenVerifier
	ServiceName   string
}

// Router registra las rutas de la API. Las rutas fijas (/estadisticas, /meseros, /hoy, ...) se
// registran antes que /:id.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return ok(c, fiber.StatusOK, "ok", fiber.Map{"service": deps.ServiceName})
	})

	api := app.Group("/api")
	need := RequirePermission

	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/registro", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)

	protected := api.Group("", AuthMiddleware(deps.Tokens, deps.Users))

	authGroup := protected.Group("/auth")
	authGroup.Get("/perfil", need(authz.PerfilVer), authHandler.Profile)
	authGroup.Put("/perfil", need(authz.PerfilEditar), authHandler.UpdateProfile)
	authGroup.Put("/password", need(authz.PerfilEditar), authHandler.ChangePassword)

	restaurantHandler := NewRestaurantHandler(deps.RestaurantUC)
	protected.Get("/restaurante", need(authz.RestauranteVer), restaurantHandler.Get)
	protected.Put("/restaurante", need(authz.RestauranteEditar), restaurantHandler.Update)

	users := protected.Group("/usuarios")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", need(authz.EmpleadosVer), userHandler.List)
	users.Post("/", need(authz.EmpleadosCrear), userHandler.Create)
	users.Get("/meseros", need(authz.MesasVer), userHandler.Waiters)
	users.Get("/estadisticas", need(authz.EmpleadosVer), userHandler.Stats)
	users.Get("/:id", need(authz.EmpleadosVer), userHandler.GetByID)
	users.Put("/:id", need(authz.EmpleadosEditar), userHandler.Update)
	users.Delete("/:id", need(authz.EmpleadosEliminar), userHandler.Delete)

	products := protected.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", need(authz.ProductosVer), productHandler.List)
	products.Post("/", need(authz.ProductosCrear), productHandler.Create)
	products.Get("/estadisticas", need(authz.ProductosVer), productHandler.Stats)
	products.Get("/:id", need(authz.ProductosVer), productHandler.GetByID)
	products.Put("/:id", need(authz.ProductosEditar), productHandler.Update)
	products.Patch("/:id/disponibilidad", need(authz.ProductosEditar), productHandler.ToggleAvailability)
	products.Delete("/:id", need(authz.ProductosEliminar), productHandler.Delete)

	inv := protected.Group("/inventario")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv.Get("/", need(authz.InventarioVer), inventoryHandler.List)
	inv.Post("/", need(authz.InventarioCrear), inventoryHandler.Create)
	inv.Get("/estadisticas", need(authz.InventarioVer), inventoryHandler.Stats)
	inv.Get("/alertas", need(authz.InventarioVer), inventoryHandler.Alerts)
	inv.Get("/:id", need(authz.InventarioVer), inventoryHandler.GetByID)
	inv.Put("/:id", need(authz.InventarioEditar), inventoryHandler.Update)
	inv.Delete("/:id", need(authz.InventarioEliminar), inventoryHandler.Delete)
	inv.Post("/:id/ajustar", need(authz.InventarioAjustar), inventoryHandler.Adjust)
	inv.Get("/:id/movimientos", need(authz.InventarioVer), inventoryHandler.Movements)

	tables := protected.Group("/mesas")
	tableHandler := NewTableHandler(deps.TableUC)
	tables.Get("/", need(authz.MesasVer), tableHandler.List)
	tables.Post("/", need(authz.MesasCrear), tableHandler.Create)
	tables.Get("/estadisticas", need(authz.MesasVer), tableHandler.Stats)
	tables.Get("/:id", need(authz.MesasVer), tableHandler.GetByID)
	tables.Put("/:id", need(authz.MesasEditar), tableHandler.Update)
	tables.Delete("/:id", need(authz.MesasEliminar), tableHandler.Delete)
	tables.Patch("/:id/estado", need(authz.MesasCambiarEstado), tableHandler.ChangeStatus)
	tables.Patch("/:id/mesero", need(authz.MesasAsignarMesero), tableHandler.AssignWaiter)
	tables.Get("/:id/qr", need(authz.MesasVer), tableHandler.QR)

	orderGroup := protected.Group("/pedidos")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orderGroup.Get("/", need(authz.PedidosVer), orderHandler.List)
	orderGroup.Post("/", need(authz.PedidosCrear), orderHandler.Create)
	orderGroup.Get("/estadisticas", need(authz.PedidosVer), orderHandler.Stats)
	orderGroup.Get("/cocina", need(authz.PedidosVer), orderHandler.Kitchen)
	orderGroup.Get("/:id", need(authz.PedidosVer), orderHandler.GetByID)
	orderGroup.Put("/:id", need(authz.PedidosEditar), orderHandler.Update)
	orderGroup.Delete("/:id", need(authz.PedidosCancelar), orderHandler.Cancel)
	orderGroup.Patch("/:id/estado", need(authz.PedidosCambiarEstado), orderHandler.ChangeStatus)
	orderGroup.Get("/:id/ticket", need(authz.PedidosVer), orderHandler.Ticket)

	res := protected.Group("/reservaciones")
	reservationHandler := NewReservationHandler(deps.ReservationUC)
	res.Get("/", need(authz.ReservacionesVer), reservationHandler.List)
	res.Post("/", need(authz.ReservacionesCrear), reservationHandler.Create)
	res.Get("/estadisticas", need(authz.ReservacionesVer), reservationHandler.Stats)
	res.Get("/hoy", need(authz.ReservacionesVer), reservationHandler.Today)
	res.Get("/:id", need(authz.ReservacionesVer), reservationHandler.GetByID)
	res.Put("/:id", need(authz.ReservacionesEditar), reservationHandler.Update)
	res.Delete("/:id", need(authz.ReservacionesCancelar), reservationHandler.Cancel)
	res.Patch("/:id/estado", need(authz.ReservacionesCambiarEstado), reservationHandler.ChangeStatus)
	res.Patch("/:id/mesa", need(authz.ReservacionesAsignarMesa), reservationHandler.AssignTable)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/resumen", need(authz.EstadisticasVer), dashboardHandler.GetSummary)
}

// @title                       Restaurante API
// @version                     1.0
// @description                 Backend multi-restaurante: empleados, carta, inventario, mesas, pedidos y reservaciones.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	_ "github.com/jhoicas/Restaurante-api/docs"
	appanalytics "github.com/jhoicas/Restaurante-api/internal/application/analytics"
	"github.com/jhoicas/Restaurante-api/internal/application/auth"
	"github.com/jhoicas/Restaurante-api/internal/application/inventory"
	"github.com/jhoicas/Restaurante-api/internal/application/orders"
	"github.com/jhoicas/Restaurante-api/internal/application/ports"
	"github.com/jhoicas/Restaurante-api/internal/application/reservations"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	infrapdf "github.com/jhoicas/Restaurante-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/postgres"
	infraqr "github.com/jhoicas/Restaurante-api/internal/infrastructure/qr"
	infraredis "github.com/jhoicas/Restaurante-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/Restaurante-api/internal/interfaces/http"
	"github.com/jhoicas/Restaurante-api/pkg/config"
	"github.com/jhoicas/Restaurante-api/pkg/jwt"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", cfg.App.Timezone).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("dsn", postgres.RedactDSN(cfg.DB.ConnectionString())).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clock := ports.SystemClock{Loc: cfg.App.Location()}
	repos := postgres.NewRepos(pool)
	stats := postgres.NewStatsRepository(pool)

	// Consecutivo de pedidos: Redis si está configurado, si no la tabla contadores_pedidos en la misma tx.
	var sequencer repository.OrderNumberSequencer
	if cfg.Redis.Enabled() {
		rdb, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
		}
		defer rdb.Close()
		sequencer = infraredis.NewSequencer(rdb, postgres.NewOrderRepository(pool))
		log.Info().Str("addr", cfg.Redis.Addr).Msg("consecutivo de pedidos en Redis")
	}
	txRunner := postgres.NewTxRunner(pool, sequencer)

	authUC := auth.NewAuthUseCase(txRunner, repos.Users, repos.Restaurants, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, clock)
	inventoryUC := inventory.NewInventoryUseCase(txRunner, repos.Inventory, clock)
	orderUC := orders.NewOrderUseCase(
		txRunner, repos.Orders, repos.Tables, repos.Users, repos.Restaurants, stats,
		infrapdf.NewTicketRenderer(), clock,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.NewErrorHandler(log, cfg.App.IsDevelopment()),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Restaurante API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		RestaurantUC:  usecase.NewRestaurantUseCase(repos.Restaurants, clock),
		UserUC:        usecase.NewUserUseCase(repos.Users, repos.Restaurants, stats, txRunner, clock),
		ProductUC:     usecase.NewProductUseCase(repos.Products, stats, clock),
		TableUC:       usecase.NewTableUseCase(repos.Tables, repos.Users, stats, infraqr.NewGenerator(), cfg.App.PublicMenuURL, clock),
		InventoryUC:   inventoryUC,
		OrderUC:       orderUC,
		ReservationUC: reservations.NewReservationUseCase(txRunner, repos.Reservations, stats, clock),
		DashboardUC:   appanalytics.NewDashboardUseCase(stats, repos.Restaurants, inventoryUC, clock),
		Users:         repos.Users,
		Tokens:        jwt.NewSigner(cfg.JWT.Secret, cfg.JWT.Issuer, time.Duration(cfg.JWT.Expiration)*time.Minute),
		ServiceName:   cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

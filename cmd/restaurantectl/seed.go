package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/Restaurante-api/internal/application/auth"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/ports"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/postgres"
	infraqr "github.com/jhoicas/Restaurante-api/internal/infrastructure/qr"
)

type seedOptions struct {
	restaurante string
	email       string
	password    string
	mesas       int
}

type seedProduct struct {
	nombre    string
	categoria string
	precio    int64
}

var demoMenu = []seedProduct{
	{"Empanadas de pipián", entity.ProductEntrada, 9000},
	{"Ajiaco santafereño", entity.ProductPlatoPrincipal, 28000},
	{"Bandeja paisa", entity.ProductPlatoPrincipal, 32000},
	{"Arroz con coco", entity.ProductAcompanamiento, 6000},
	{"Tres leches", entity.ProductPostre, 11000},
	{"Limonada de coco", entity.ProductBebida, 9500},
}

func seedCmd() *cobra.Command {
	var opts seedOptions
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Crea un restaurante de demostración con su admin, mesas y carta",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.restaurante, "restaurante", "Restaurante Demo", "nombre del restaurante")
	cmd.Flags().StringVar(&opts.email, "email", "admin@demo.co", "email del administrador")
	cmd.Flags().StringVar(&opts.password, "password", "demo12345", "contraseña del administrador")
	cmd.Flags().IntVar(&opts.mesas, "mesas", 8, "cantidad de mesas")
	return cmd
}

func runSeed(cmd *cobra.Command, opts seedOptions) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	clock := ports.SystemClock{Loc: cfg.App.Location()}
	repos := postgres.NewRepos(pool)
	stats := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool, nil)

	existing, err := repos.Users.FindByEmail(ctx, opts.email)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Info().Str("email", opts.email).Msg("seed omitido: el administrador ya existe")
		return nil
	}

	authUC := auth.NewAuthUseCase(txRunner, repos.Users, repos.Restaurants, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, clock)
	reg, err := authUC.Register(ctx, dto.RegisterRequest{
		Restaurante: dto.RegisterRestaurantRequest{Nombre: opts.restaurante, Horario: "Lun-Dom 12:00-22:00"},
		Nombre:      "Administrador",
		Email:       opts.email,
		Password:    opts.password,
	})
	if err != nil {
		return fmt.Errorf("registrar restaurante: %w", err)
	}
	rid := reg.Restaurante.ID

	tables := usecase.NewTableUseCase(repos.Tables, repos.Users, stats, infraqr.NewGenerator(), cfg.App.PublicMenuURL, clock)
	for n := 1; n <= opts.mesas; n++ {
		ubicacion := entity.LocationInterior
		if n > opts.mesas*3/4 {
			ubicacion = entity.LocationTerraza
		}
		capacidad := 4
		if n%3 == 0 {
			capacidad = 6
		}
		if _, err := tables.Create(ctx, rid, dto.CreateTableRequest{Numero: n, Capacidad: capacidad, Ubicacion: ubicacion}); err != nil {
			return fmt.Errorf("crear mesa %d: %w", n, err)
		}
	}

	products := usecase.NewProductUseCase(repos.Products, stats, clock)
	for _, p := range demoMenu {
		in := dto.CreateProductRequest{Nombre: p.nombre, Categoria: p.categoria, Precio: decimal.NewFromInt(p.precio)}
		if _, err := products.Create(ctx, rid, in); err != nil {
			return fmt.Errorf("crear producto %q: %w", p.nombre, err)
		}
	}

	log.Info().
		Str("restaurante_id", rid).
		Str("email", opts.email).
		Int("mesas", opts.mesas).
		Int("productos", len(demoMenu)).
		Msg("seed completado")
	fmt.Fprintf(cmd.OutOrStdout(), "restaurante %s listo; login con %s\n", rid, opts.email)
	return nil
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/application/auth"
	appcatalog "github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/application/catalog"
	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/infrastructure/datalake"
	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/infrastructure/memory"
	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/infrastructure/postgres"
	httpRouter "github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/interfaces/http"
	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/pkg/config"
	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Carga inicial de las cuatro tablas desde el datalake: sin ellas el
	// proceso no arranca.
	lake, err := datalake.NewClient(ctx, datalake.Config{
		Region:          cfg.Datalake.Region,
		Endpoint:        cfg.Datalake.Endpoint,
		PathStyle:       cfg.Datalake.PathStyle,
		AccessKeyID:     cfg.Datalake.AccessKeyID,
		SecretAccessKey: cfg.Datalake.SecretAccessKey,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cliente de object storage")
	}
	source := datalake.NewSource(lake, cfg.Datalake.SourceBucket)
	tablas, err := source.LoadTables(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("carga de tablas base")
	}
	store, err := memory.NewStore(tablas)
	if err != nil {
		log.Fatal().Err(err).Msg("store en memoria")
	}
	log.Info().
		Int("productos", len(tablas.Productos)).
		Int("stock", len(tablas.Stock)).
		Int("categorias", len(tablas.Categorias)).
		Int("subcategorias", len(tablas.Subcategorias)).
		Msg("tablas cargadas")

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	stockRepo := postgres.NewStockRepository(pool)
	snapshots := datalake.NewSnapshots(lake, cfg.Datalake.SnapshotBucket, cfg.Datalake.SnapshotPrefix)

	catalogUC := appcatalog.NewCatalogUseCase(store)
	stockUC := appcatalog.NewStockUseCase(store, stockRepo, snapshots, cfg.Datalake.WriteTimeout, log)
	creds := auth.Credenciales{User: cfg.Auth.User, Password: cfg.Auth.Password}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,PUT,OPTIONS",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:    catalogUC,
		StockUC:      stockUC,
		Credenciales: creds,
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

package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/application/auth"
	appcatalog "github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/application/catalog"
	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/observability"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC    *appcatalog.CatalogUseCase
	StockUC      *appcatalog.StockUseCase
	Credenciales auth.Verifier
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(contarPeticiones)

	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	app.Get("/productos", catalogHandler.Productos)
	app.Get("/producto/:id_producto", catalogHandler.ProductoPorID)
	app.Get("/categorias", catalogHandler.Categorias)
	app.Get("/categoria/:id_categoria", catalogHandler.ProductosPorCategoria)
	app.Get("/subcategorias", catalogHandler.Subcategorias)
	app.Get("/subcategoria/:id_subcategoria", catalogHandler.ProductosPorSubcategoria)
	app.Get("/categoria/:id_categoria/subcategoria/:id_subcategoria", catalogHandler.ProductosPorCategoriaYSubcategoria)

	stockHandler := NewStockHandler(deps.StockUC, deps.Credenciales)
	app.Put("/producto/:id", stockHandler.Actualizar)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

// contarPeticiones cuenta cada petición atendida por ruta y código de estado.
func contarPeticiones(c *fiber.Ctx) error {
	err := c.Next()
	ruta := c.Route().Path
	estado := strconv.Itoa(c.Response().StatusCode())
	observability.RequestsTotal.WithLabelValues(ruta, estado).Inc()
	return err
}

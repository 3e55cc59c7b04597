package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	appcatalog "github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/application/catalog"
	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/application/dto"
	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/domain"
)

// CatalogHandler maneja las rutas de lectura del catálogo.
type CatalogHandler struct {
	uc *appcatalog.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *appcatalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// paramEntero parsea un parámetro de ruta numérico. Devuelve false si no es un
// entero; en ese caso ya respondió 400.
func paramEntero(c *fiber.Ctx, nombre string) (int, bool) {
	n, err := strconv.Atoi(c.Params(nombre))
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: fmt.Sprintf("El parámetro %s debe ser un número entero.", nombre),
		})
		return 0, false
	}
	return n, true
}

// Productos devuelve todos los productos con su stock por sucursal.
// GET /productos?ignoreEmpty=bool
func (h *CatalogHandler) Productos(c *fiber.Ctx) error {
	return c.JSON(h.uc.Productos(c.QueryBool("ignoreEmpty", false)))
}

// ProductoPorID devuelve el producto que tenga cierto ID.
// GET /producto/:id_producto?ignoreEmpty=bool
func (h *CatalogHandler) ProductoPorID(c *fiber.Ctx) error {
	id, ok := paramEntero(c, "id_producto")
	if !ok {
		return nil
	}
	registros, err := h.uc.ProductoPorCodigo(id, c.QueryBool("ignoreEmpty", false))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: fmt.Sprintf("No existe el producto con id %d.", id),
			})
		}
		return err
	}
	return c.JSON(registros)
}

// Categorias devuelve todas las categorías.
// GET /categorias
func (h *CatalogHandler) Categorias(c *fiber.Ctx) error {
	return c.JSON(h.uc.Categorias())
}

// ProductosPorCategoria devuelve los productos bajo cierta categoría.
// GET /categoria/:id_categoria
func (h *CatalogHandler) ProductosPorCategoria(c *fiber.Ctx) error {
	id, ok := paramEntero(c, "id_categoria")
	if !ok {
		return nil
	}
	registros, err := h.uc.ProductosPorCategoria(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: fmt.Sprintf("No existe la categoria con id %d.", id),
			})
		}
		return err
	}
	return c.JSON(registros)
}

// Subcategorias devuelve todas las subcategorías.
// GET /subcategorias
func (h *CatalogHandler) Subcategorias(c *fiber.Ctx) error {
	return c.JSON(h.uc.Subcategorias())
}

// ProductosPorSubcategoria devuelve los productos bajo cierta subcategoría.
// GET /subcategoria/:id_subcategoria
func (h *CatalogHandler) ProductosPorSubcategoria(c *fiber.Ctx) error {
	id, ok := paramEntero(c, "id_subcategoria")
	if !ok {
		return nil
	}
	registros, err := h.uc.ProductosPorSubcategoria(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: fmt.Sprintf("No existe subcategoria con id %d.", id),
			})
		}
		return err
	}
	return c.JSON(registros)
}

// ProductosPorCategoriaYSubcategoria devuelve los productos de una categoría
// que corresponden a una subcategoría.
// GET /categoria/:id_categoria/subcategoria/:id_subcategoria?ignoreEmpty=bool
func (h *CatalogHandler) ProductosPorCategoriaYSubcategoria(c *fiber.Ctx) error {
	idCat, ok := paramEntero(c, "id_categoria")
	if !ok {
		return nil
	}
	idSub, ok := paramEntero(c, "id_subcategoria")
	if !ok {
		return nil
	}
	registros, err := h.uc.ProductosPorCategoriaYSubcategoria(idCat, idSub, c.QueryBool("ignoreEmpty", false))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: fmt.Sprintf("La subcategoria %d no pertenece a la categoria %d, o alguna de estas dos no existe.", idSub, idCat),
			})
		}
		return err
	}
	return c.JSON(registros)
}

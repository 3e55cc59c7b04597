package catalog

import (
	"context"

	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/domain/entity"
)

// TableStore puerto de lectura/reemplazo sobre las cuatro tablas en memoria.
// La implementación garantiza snapshots consistentes para lectores
// concurrentes; ReplaceStock debe ser atómico desde el punto de vista de los
// lectores.
type TableStore interface {
	Productos() []entity.Producto
	Categorias() []entity.Categoria
	Subcategorias() []entity.Subcategoria
	Stock() []entity.StockSucursal

	ProductoPorCodigo(cod int) []entity.Producto
	PorCategoria(cod int) []entity.Producto
	PorSubcategoria(cod int) []entity.Producto
	PorCategoriaYSubcategoria(codCat, codSub int) []entity.Producto
	StockDeProducto(cod int) []entity.StockSucursal

	ReplaceStock(rows []entity.StockSucursal)
}

// StockSink sumidero relacional: un UPDATE puntual por fila modificada.
type StockSink interface {
	UpdateStock(ctx context.Context, filas []entity.StockSucursal) error
}

// SnapshotStore escritura de la tabla de stock completa a una ubicación
// durable nueva (nunca la de origen).
type SnapshotStore interface {
	Write(ctx context.Context, filas []entity.StockSucursal) (string, error)
}

package catalog

import (
	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/domain"
	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/domain/catalog"
	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/domain/entity"
)

// CatalogUseCase casos de uso de lectura: seleccionar sobre el store, filtrar
// el lado stock si corresponde y componer con el join.
type CatalogUseCase struct {
	store TableStore
}

// NewCatalogUseCase construye el caso de uso de lectura.
func NewCatalogUseCase(store TableStore) *CatalogUseCase {
	return &CatalogUseCase{store: store}
}

func (uc *CatalogUseCase) stock(ignoreEmpty bool) []entity.StockSucursal {
	s := uc.store.Stock()
	if ignoreEmpty {
		return catalog.SinVacias(s)
	}
	return s
}

// Productos devuelve todos los productos con su stock por sucursal.
func (uc *CatalogUseCase) Productos(ignoreEmpty bool) []catalog.Registro {
	return catalog.Join(uc.store.Productos(), uc.stock(ignoreEmpty))
}

// ProductoPorCodigo devuelve el producto pedido con su stock por sucursal.
// ErrNotFound si ningún producto tiene ese código; un producto existente cuyas
// filas quedaron todas filtradas devuelve lista vacía, no error.
func (uc *CatalogUseCase) ProductoPorCodigo(cod int, ignoreEmpty bool) ([]catalog.Registro, error) {
	productos := uc.store.ProductoPorCodigo(cod)
	if len(productos) == 0 {
		return nil, domain.ErrNotFound
	}
	return catalog.Join(productos, uc.stock(ignoreEmpty)), nil
}

// Categorias devuelve la tabla de categorías tal cual.
func (uc *CatalogUseCase) Categorias() []entity.Categoria {
	return uc.store.Categorias()
}

// Subcategorias devuelve la tabla de subcategorías tal cual.
func (uc *CatalogUseCase) Subcategorias() []entity.Subcategoria {
	return uc.store.Subcategorias()
}

// ProductosPorCategoria devuelve los productos de una categoría con su stock.
// ErrNotFound si ningún producto lleva esa categoría.
func (uc *CatalogUseCase) ProductosPorCategoria(cod int) ([]catalog.Registro, error) {
	productos := uc.store.PorCategoria(cod)
	if len(productos) == 0 {
		return nil, domain.ErrNotFound
	}
	return catalog.Join(productos, uc.store.Stock()), nil
}

// ProductosPorSubcategoria devuelve los productos de una subcategoría.
// ErrNotFound si ningún producto lleva esa subcategoría.
func (uc *CatalogUseCase) ProductosPorSubcategoria(cod int) ([]catalog.Registro, error) {
	productos := uc.store.PorSubcategoria(cod)
	if len(productos) == 0 {
		return nil, domain.ErrNotFound
	}
	return catalog.Join(productos, uc.store.Stock()), nil
}

// ProductosPorCategoriaYSubcategoria devuelve los productos que cumplen ambos
// códigos. ErrNotFound si la combinación no selecciona ningún producto.
func (uc *CatalogUseCase) ProductosPorCategoriaYSubcategoria(codCat, codSub int, ignoreEmpty bool) ([]catalog.Registro, error) {
	productos := uc.store.PorCategoriaYSubcategoria(codCat, codSub)
	if len(productos) == 0 {
		return nil, domain.ErrNotFound
	}
	return catalog.Join(productos, uc.stock(ignoreEmpty)), nil
}

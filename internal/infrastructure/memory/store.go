package memory

import (
	"fmt"
	"sync/atomic"

	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/domain/entity"
)

// Tablas agrupa las cuatro tablas base tal como las entrega la fuente de datos
// al arranque.
type Tablas struct {
	Productos     []entity.Producto
	Stock         []entity.StockSucursal
	Categorias    []entity.Categoria
	Subcategorias []entity.Subcategoria
}

// Store mantiene las cuatro tablas en memoria. Productos, Categorias y
// Subcategorias son de solo lectura después de la carga y no necesitan locks.
// Stock es la única tabla mutable: se reemplaza completa con un swap atómico
// de puntero, así los lectores concurrentes ven siempre la tabla anterior o la
// nueva, nunca un estado intermedio.
type Store struct {
	productos     []entity.Producto
	categorias    []entity.Categoria
	subcategorias []entity.Subcategoria
	stock         atomic.Pointer[[]entity.StockSucursal]
}

// NewStore construye el store. Falla si falta alguna de las cuatro tablas: el
// proceso no debe servir peticiones sin el catálogo completo.
func NewStore(t Tablas) (*Store, error) {
	if t.Productos == nil || t.Stock == nil || t.Categorias == nil || t.Subcategorias == nil {
		return nil, fmt.Errorf("faltan tablas base: las cuatro son obligatorias")
	}
	s := &Store{
		productos:     t.Productos,
		categorias:    t.Categorias,
		subcategorias: t.Subcategorias,
	}
	stock := t.Stock
	s.stock.Store(&stock)
	return s, nil
}

// Productos devuelve la tabla maestra completa (solo lectura).
func (s *Store) Productos() []entity.Producto { return s.productos }

// Categorias devuelve la tabla de referencia de categorías (solo lectura).
func (s *Store) Categorias() []entity.Categoria { return s.categorias }

// Subcategorias devuelve la tabla de referencia de subcategorías (solo lectura).
func (s *Store) Subcategorias() []entity.Subcategoria { return s.subcategorias }

// Stock devuelve el snapshot vigente de Producto_Sucursales. El slice es
// inmutable: no escribir sobre él.
func (s *Store) Stock() []entity.StockSucursal { return *s.stock.Load() }

// ReplaceStock reemplaza la tabla de stock completa. Copia la entrada para que
// el snapshot publicado no comparta memoria con el llamador.
func (s *Store) ReplaceStock(rows []entity.StockSucursal) {
	nuevo := make([]entity.StockSucursal, len(rows))
	copy(nuevo, rows)
	s.stock.Store(&nuevo)
}

// ProductoPorCodigo selecciona el producto con ese código (0 o 1 filas).
func (s *Store) ProductoPorCodigo(cod int) []entity.Producto {
	var out []entity.Producto
	for _, p := range s.productos {
		if p.CodProducto == cod {
			out = append(out, p)
		}
	}
	return out
}

// PorCategoria selecciona los productos de una categoría.
func (s *Store) PorCategoria(cod int) []entity.Producto {
	var out []entity.Producto
	for _, p := range s.productos {
		if p.CodCategoria == cod {
			out = append(out, p)
		}
	}
	return out
}

// PorSubcategoria selecciona los productos de una subcategoría.
func (s *Store) PorSubcategoria(cod int) []entity.Producto {
	var out []entity.Producto
	for _, p := range s.productos {
		if p.CodSubcategoria == cod {
			out = append(out, p)
		}
	}
	return out
}

// PorCategoriaYSubcategoria selecciona los productos que cumplen ambas.
func (s *Store) PorCategoriaYSubcategoria(codCat, codSub int) []entity.Producto {
	var out []entity.Producto
	for _, p := range s.productos {
		if p.CodCategoria == codCat && p.CodSubcategoria == codSub {
			out = append(out, p)
		}
	}
	return out
}

// StockDeProducto selecciona las filas de stock de un producto sobre el
// snapshot vigente.
func (s *Store) StockDeProducto(cod int) []entity.StockSucursal {
	var out []entity.StockSucursal
	for _, f := range s.Stock() {
		if f.CodProducto == cod {
			out = append(out, f)
		}
	}
	return out
}

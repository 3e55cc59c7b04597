package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/domain/entity"
)

// Registro es la fila desnormalizada Producto ⋈ StockSucursal que consumen los
// endpoints. Es efímero: se reconstruye en cada petición y nunca se persiste.
type Registro struct {
	CodProducto     int             `json:"Cod_Producto"`
	Nombre          string          `json:"Nombre"`
	Precio          decimal.Decimal `json:"Precio"`
	CodCategoria    int             `json:"Cod_Categoria"`
	CodSubcategoria int             `json:"Cod_Subcategoria"`
	CodSucursal     string          `json:"Cod_Sucursal"`
	Stock           int             `json:"Stock"`
}

// Join combina cada producto con cada fila de stock que comparta Cod_Producto
// (servicio de dominio, composición pura: el filtrado es responsabilidad del
// llamador). Un producto sin filas de stock no aporta filas al resultado.
// El orden de salida sigue el orden de entrada de productos, y dentro de un
// producto el orden de entrada de las filas de stock. No muta sus entradas.
func Join(productos []entity.Producto, stock []entity.StockSucursal) []Registro {
	porProducto := make(map[int][]entity.StockSucursal, len(productos))
	for _, s := range stock {
		porProducto[s.CodProducto] = append(porProducto[s.CodProducto], s)
	}

	out := make([]Registro, 0, len(stock))
	for _, p := range productos {
		for _, s := range porProducto[p.CodProducto] {
			out = append(out, Registro{
				CodProducto:     p.CodProducto,
				Nombre:          p.Nombre,
				Precio:          p.Precio,
				CodCategoria:    p.CodCategoria,
				CodSubcategoria: p.CodSubcategoria,
				CodSucursal:     s.CodSucursal,
				Stock:           s.Stock,
			})
		}
	}
	return out
}

// SinVacias devuelve solo las filas con stock distinto de cero. Es el filtro
// del lado stock para el query parameter ignoreEmpty, componible con cualquier
// selección del lado producto antes de llamar a Join.
func SinVacias(stock []entity.StockSucursal) []entity.StockSucursal {
	out := make([]entity.StockSucursal, 0, len(stock))
	for _, s := range stock {
		if s.Stock != 0 {
			out = append(out, s)
		}
	}
	return out
}

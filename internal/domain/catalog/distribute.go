package catalog

import (
	"sort"

	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/domain"
	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/domain/entity"
)

// Repartir distribuye nuevoTotal unidades de stock entre las sucursales que ya
// tienen fila para el producto, de a una unidad por vuelta en orden ascendente
// de Cod_Sucursal, hasta que la suma de todas las sucursales iguale el total
// pedido. En una baja, la sucursal que llega a cero se saltea; el stock nunca
// queda negativo. No se crean sucursales nuevas: el conjunto es el que ya
// existe para el producto.
//
// Devuelve el conjunto completo de filas del producto, incluidas las que no
// cambiaron (el llamador persiste el conjunto entero). Las filas de otros
// productos se descartan; si ninguna fila pertenece al producto el resultado
// es ErrNotFound. No muta la entrada.
func Repartir(codProducto, nuevoTotal int, filas []entity.StockSucursal) ([]entity.StockSucursal, error) {
	out := make([]entity.StockSucursal, 0, len(filas))
	for _, f := range filas {
		if f.CodProducto == codProducto {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil, domain.ErrNotFound
	}
	if nuevoTotal < 0 {
		return nil, domain.ErrInvalidInput
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CodSucursal < out[j].CodSucursal })

	suma := 0
	for _, f := range out {
		suma += f.Stock
	}

	for suma != nuevoTotal {
		for i := range out {
			if suma == nuevoTotal {
				break
			}
			if suma < nuevoTotal {
				out[i].Stock++
				suma++
				continue
			}
			if out[i].Stock > 0 {
				out[i].Stock--
				suma--
			}
		}
		// suma >= 0 y nuevoTotal >= 0: cada vuelta acerca la suma al total.
	}
	return out, nil
}

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/domain"
	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/domain/catalog"
	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/domain/entity"
)

func filas(stocks map[string]int) []entity.StockSucursal {
	out := make([]entity.StockSucursal, 0, len(stocks))
	for suc, st := range stocks {
		out = append(out, entity.StockSucursal{CodProducto: 101, CodSucursal: suc, Stock: st})
	}
	return out
}

func suma(filas []entity.StockSucursal) int {
	total := 0
	for _, f := range filas {
		total += f.Stock
	}
	return total
}

func porSucursal(filas []entity.StockSucursal) map[string]int {
	out := make(map[string]int, len(filas))
	for _, f := range filas {
		out[f.CodSucursal] = f.Stock
	}
	return out
}

// Vector fijado: {B1:5, B2:0} con total 10. El reparto va de a una unidad en
// round-robin por orden ascendente de sucursal: B1,B2,B1,B2,B1 → {B1:8, B2:2}.
func TestRepartir_VectorRoundRobin(t *testing.T) {
	out, err := catalog.Repartir(101, 10, filas(map[string]int{"B1": 5, "B2": 0}))
	require.NoError(t, err)

	assert.Equal(t, 10, suma(out))
	assert.Equal(t, map[string]int{"B1": 8, "B2": 2}, porSucursal(out))
}

// La suma de las filas devueltas siempre iguala el total pedido.
func TestRepartir_SumaIgualAlTotal(t *testing.T) {
	casos := []struct {
		nombre  string
		inicial map[string]int
		total   int
	}{
		{"subida pareja", map[string]int{"B1": 2, "B2": 2, "B3": 2}, 20},
		{"subida no divisible", map[string]int{"B1": 0, "B2": 0}, 7},
		{"baja", map[string]int{"B1": 9, "B2": 4}, 5},
		{"baja a cero", map[string]int{"B1": 3, "B2": 1}, 0},
		{"sin cambio", map[string]int{"B1": 6}, 6},
		{"una sucursal", map[string]int{"B1": 0}, 13},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			out, err := catalog.Repartir(101, tc.total, filas(tc.inicial))
			require.NoError(t, err)
			assert.Equal(t, tc.total, suma(out))
			assert.Len(t, out, len(tc.inicial), "devuelve el conjunto completo, también filas sin cambio")
			for _, f := range out {
				assert.GreaterOrEqual(t, f.Stock, 0, "el stock nunca queda negativo")
			}
		})
	}
}

// En una baja, la sucursal que llega a cero se saltea y no se revisita.
func TestRepartir_BajaSalteaSucursalesEnCero(t *testing.T) {
	out, err := catalog.Repartir(101, 3, filas(map[string]int{"B1": 5, "B2": 0}))
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"B1": 3, "B2": 0}, porSucursal(out))
}

// No se crean sucursales: el conjunto es el que ya existe para el producto.
func TestRepartir_NoCreaSucursales(t *testing.T) {
	out, err := catalog.Repartir(101, 50, filas(map[string]int{"B7": 1}))
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, "B7", out[0].CodSucursal)
	assert.Equal(t, 50, out[0].Stock)
}

// Producto sin filas de stock: ErrNotFound.
func TestRepartir_SinFilasEsNotFound(t *testing.T) {
	_, err := catalog.Repartir(999, 10, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Solo se reparten las filas del producto pedido: las de otros productos se
// descartan, y si ninguna fila pertenece al producto el resultado es
// ErrNotFound.
func TestRepartir_DescartaFilasDeOtroProducto(t *testing.T) {
	mezcla := []entity.StockSucursal{
		{CodProducto: 101, CodSucursal: "B1", Stock: 5},
		{CodProducto: 202, CodSucursal: "B1", Stock: 9},
		{CodProducto: 101, CodSucursal: "B2", Stock: 0},
	}

	out, err := catalog.Repartir(101, 10, mezcla)
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, f := range out {
		assert.Equal(t, 101, f.CodProducto)
	}
	assert.Equal(t, map[string]int{"B1": 8, "B2": 2}, porSucursal(out))

	_, err = catalog.Repartir(303, 10, mezcla)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Total negativo: ErrInvalidInput.
func TestRepartir_TotalNegativoEsInvalido(t *testing.T) {
	_, err := catalog.Repartir(101, -1, filas(map[string]int{"B1": 5}))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La entrada no se muta: el llamador conserva su snapshot intacto.
func TestRepartir_NoMutaLaEntrada(t *testing.T) {
	entrada := filas(map[string]int{"B1": 5, "B2": 0})
	antes := porSucursal(entrada)

	_, err := catalog.Repartir(101, 10, entrada)
	require.NoError(t, err)

	assert.Equal(t, antes, porSucursal(entrada))
}

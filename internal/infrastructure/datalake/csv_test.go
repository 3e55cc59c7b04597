package datalake_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/domain/entity"
	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/infrastructure/datalake"
)

func TestDecodeProductos(t *testing.T) {
	csv := strings.Join([]string{
		"Cod_Producto,Nombre,Precio,Cod_Categoria,Cod_Subcategoria",
		"101,Notebook,999.99,1,1",
		"202,Mouse,19.90,1,2",
	}, "\n")

	productos, err := datalake.DecodeProductos(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, productos, 2)
	assert.Equal(t, 101, productos[0].CodProducto)
	assert.Equal(t, "Notebook", productos[0].Nombre)
	assert.Equal(t, "999.99", productos[0].Precio.String())
	assert.Equal(t, 1, productos[0].CodCategoria)
	assert.Equal(t, 2, productos[1].CodSubcategoria)
}

// El orden de columnas del CSV de origen no está garantizado: el codec se guía
// por el encabezado.
func TestDecodeStock_ColumnasReordenadas(t *testing.T) {
	csv := strings.Join([]string{
		"Stock,Cod_Sucursal,Cod_Producto",
		"5,B1,101",
	}, "\n")

	stock, err := datalake.DecodeStock(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, stock, 1)
	assert.Equal(t, entity.StockSucursal{CodProducto: 101, CodSucursal: "B1", Stock: 5}, stock[0])
}

func TestDecodeStock_FaltaColumna(t *testing.T) {
	csv := "Cod_Producto,Stock\n101,5\n"

	_, err := datalake.DecodeStock(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cod_Sucursal")
}

func TestDecodeCategorias_ValorNoNumerico(t *testing.T) {
	csv := "Cod_Categoria,Nombre\nuno,Tecnologia\n"

	_, err := datalake.DecodeCategorias(strings.NewReader(csv))
	assert.Error(t, err)
}

func TestDecodeSubcategorias_TablaVacia(t *testing.T) {
	csv := "Cod_Subcategoria,Nombre\n"

	subcategorias, err := datalake.DecodeSubcategorias(strings.NewReader(csv))
	require.NoError(t, err)
	assert.NotNil(t, subcategorias)
	assert.Empty(t, subcategorias)
}

// El snapshot escrito debe poder recargarse con el mismo codec de origen.
func TestEncodeStock_RelecturaConElMismoCodec(t *testing.T) {
	filas := []entity.StockSucursal{
		{CodProducto: 101, CodSucursal: "B1", Stock: 8},
		{CodProducto: 101, CodSucursal: "B2", Stock: 2},
	}

	var buf bytes.Buffer
	require.NoError(t, datalake.EncodeStock(&buf, filas))

	releidas, err := datalake.DecodeStock(&buf)
	require.NoError(t, err)
	assert.Equal(t, filas, releidas)
}

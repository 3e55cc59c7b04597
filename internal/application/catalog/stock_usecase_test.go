package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcatalog "github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/application/catalog"
	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/domain"
	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/domain/entity"
	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/infrastructure/memory"
	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/pkg/logger"
)

// sinkStub registra las filas recibidas por el sumidero relacional y permite
// simular fallos de persistencia.
type sinkStub struct {
	filas [][]entity.StockSucursal
	err   error
}

func (s *sinkStub) UpdateStock(_ context.Context, filas []entity.StockSucursal) error {
	s.filas = append(s.filas, filas)
	return s.err
}

// snapshotStub registra las tablas completas escritas como snapshot.
type snapshotStub struct {
	tablas [][]entity.StockSucursal
	err    error
}

func (s *snapshotStub) Write(_ context.Context, filas []entity.StockSucursal) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.tablas = append(s.tablas, filas)
	return "Producto_Sucursales/test.csv", nil
}

func storeFixture(t *testing.T) *memory.Store {
	t.Helper()
	store, err := memory.NewStore(memory.Tablas{
		Productos: []entity.Producto{
			{CodProducto: 101, Nombre: "Notebook", Precio: decimal.NewFromInt(1000), CodCategoria: 1, CodSubcategoria: 1},
			{CodProducto: 202, Nombre: "Mouse", Precio: decimal.NewFromInt(20), CodCategoria: 1, CodSubcategoria: 2},
		},
		Stock: []entity.StockSucursal{
			{CodProducto: 101, CodSucursal: "B1", Stock: 5},
			{CodProducto: 101, CodSucursal: "B2", Stock: 0},
			{CodProducto: 202, CodSucursal: "B1", Stock: 9},
		},
		Categorias:    []entity.Categoria{{CodCategoria: 1, Nombre: "Tecnologia"}},
		Subcategorias: []entity.Subcategoria{{CodSubcategoria: 1, Nombre: "Computacion"}},
	})
	require.NoError(t, err)
	return store
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func TestActualizarStock_ActualizaMemoriaYPersiste(t *testing.T) {
	store := storeFixture(t)
	sink := &sinkStub{}
	snapshots := &snapshotStub{}
	uc := appcatalog.NewStockUseCase(store, sink, snapshots, 0, testLogger())

	registros, err := uc.ActualizarStock(context.Background(), 101, 10)
	require.NoError(t, err)

	// Respuesta: registros join del producto con la suma pedida.
	require.Len(t, registros, 2)
	assert.Equal(t, 10, registros[0].Stock+registros[1].Stock)
	assert.Equal(t, "Notebook", registros[0].Nombre)

	// La tabla en memoria quedó reemplazada; el otro producto no cambió.
	porClave := map[string]int{}
	for _, f := range store.Stock() {
		if f.CodProducto == 101 {
			porClave[f.CodSucursal] = f.Stock
		}
	}
	assert.Equal(t, map[string]int{"B1": 8, "B2": 2}, porClave)
	assert.Equal(t, 9, store.StockDeProducto(202)[0].Stock)

	// Sumidero relacional: solo las filas del producto. Snapshot: tabla entera.
	require.Len(t, sink.filas, 1)
	assert.Len(t, sink.filas[0], 2)
	require.Len(t, snapshots.tablas, 1)
	assert.Len(t, snapshots.tablas[0], 3)
}

// Fallo de persistencia = éxito degradado: la memoria ya avanzó y la operación
// responde bien igual.
func TestActualizarStock_FalloDePersistenciaNoRevierte(t *testing.T) {
	store := storeFixture(t)
	sink := &sinkStub{err: errors.New("db caida")}
	snapshots := &snapshotStub{err: errors.New("datalake caido")}
	uc := appcatalog.NewStockUseCase(store, sink, snapshots, 0, testLogger())

	registros, err := uc.ActualizarStock(context.Background(), 101, 10)
	require.NoError(t, err)
	assert.Len(t, registros, 2)

	total := 0
	for _, f := range store.StockDeProducto(101) {
		total += f.Stock
	}
	assert.Equal(t, 10, total, "la tabla en memoria queda adelante del estado durable")
}

func TestActualizarStock_ProductoSinSucursales(t *testing.T) {
	store := storeFixture(t)
	uc := appcatalog.NewStockUseCase(store, &sinkStub{}, &snapshotStub{}, 0, testLogger())

	_, err := uc.ActualizarStock(context.Background(), 999, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActualizarStock_TotalNegativoNoTocaNada(t *testing.T) {
	store := storeFixture(t)
	sink := &sinkStub{}
	uc := appcatalog.NewStockUseCase(store, sink, &snapshotStub{}, 0, testLogger())

	_, err := uc.ActualizarStock(context.Background(), 101, -5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, sink.filas)
	assert.Equal(t, 5, store.StockDeProducto(101)[0].Stock)
}

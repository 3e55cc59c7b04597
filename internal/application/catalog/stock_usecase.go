package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/domain/catalog"
	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/domain/entity"
	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/observability"
	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/pkg/logger"
)

// StockUseCase aplica la actualización de stock de un producto bajo un lock
// global de escritura: repartir → swap en memoria → persistir. La tabla en
// memoria se actualiza siempre antes de intentar persistir; los fallos de
// persistencia se registran y cuentan pero no se revierten (éxito degradado,
// el estado durable puede quedar atrás hasta la próxima actualización).
type StockUseCase struct {
	mu        sync.Mutex
	store     TableStore
	sink      StockSink
	snapshots SnapshotStore
	timeout   time.Duration
	log       *logger.Logger
}

// NewStockUseCase construye el caso de uso mutador. timeout acota cada
// escritura externa (0 = 10s).
func NewStockUseCase(store TableStore, sink StockSink, snapshots SnapshotStore, timeout time.Duration, log *logger.Logger) *StockUseCase {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &StockUseCase{store: store, sink: sink, snapshots: snapshots, timeout: timeout, log: log}
}

// ActualizarStock reparte nuevoTotal entre las sucursales existentes del
// producto y devuelve los registros join actualizados del producto.
// ErrNotFound si el producto no tiene filas de stock; ErrInvalidInput si el
// total es negativo.
func (uc *StockUseCase) ActualizarStock(ctx context.Context, codProducto, nuevoTotal int) ([]catalog.Registro, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	actuales := uc.store.StockDeProducto(codProducto)
	nuevas, err := catalog.Repartir(codProducto, nuevoTotal, actuales)
	if err != nil {
		return nil, err
	}

	tabla := mezclarTabla(uc.store.Stock(), codProducto, nuevas)
	uc.store.ReplaceStock(tabla)
	observability.StockUpdatesTotal.Inc()

	// Persistencia tras el swap: ambos pasos se intentan siempre, fallos
	// independientes, sin retry.
	uc.persistir(ctx, codProducto, nuevas, tabla)

	productos := uc.store.ProductoPorCodigo(codProducto)
	return catalog.Join(productos, uc.store.StockDeProducto(codProducto)), nil
}

func (uc *StockUseCase) persistir(ctx context.Context, codProducto int, filas, tabla []entity.StockSucursal) {
	dbCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	if err := uc.sink.UpdateStock(dbCtx, filas); err != nil {
		observability.PersistenceErrorsTotal.WithLabelValues("db").Inc()
		uc.log.Error().Err(err).Int("cod_producto", codProducto).Msg("update de stock en base de datos")
	}

	snapCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	key, err := uc.snapshots.Write(snapCtx, tabla)
	if err != nil {
		observability.PersistenceErrorsTotal.WithLabelValues("snapshot").Inc()
		uc.log.Error().Err(err).Int("cod_producto", codProducto).Msg("escritura de snapshot durable")
		return
	}
	uc.log.Info().Str("key", key).Int("cod_producto", codProducto).Msg("snapshot de stock escrito")
}

// mezclarTabla arma la tabla completa nueva: conserva el orden vigente y
// sustituye las filas del producto por sus valores repartidos.
func mezclarTabla(vigente []entity.StockSucursal, codProducto int, nuevas []entity.StockSucursal) []entity.StockSucursal {
	porSucursal := make(map[string]int, len(nuevas))
	for _, f := range nuevas {
		porSucursal[f.CodSucursal] = f.Stock
	}
	out := make([]entity.StockSucursal, len(vigente))
	copy(out, vigente)
	for i := range out {
		if out[i].CodProducto == codProducto {
			out[i].Stock = porSucursal[out[i].CodSucursal]
		}
	}
	return out
}

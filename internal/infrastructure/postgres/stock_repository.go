package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/application/catalog"
	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/domain/entity"
)

var _ catalog.StockSink = (*StockRepo)(nil)

// StockRepo emite los UPDATE puntuales de Producto_Sucursales tras cada
// actualización de stock (el sumidero relacional del catálogo).
type StockRepo struct {
	pool *pgxpool.Pool
}

// NewStockRepository construye el adaptador sobre el pool.
func NewStockRepository(pool *pgxpool.Pool) *StockRepo {
	return &StockRepo{pool: pool}
}

// UpdateStock actualiza el stock de cada fila, clave (Cod_Producto,
// Cod_Sucursal), en un solo round-trip vía batch. Sin transacción ni retry:
// un fallo se reporta y el estado en memoria ya quedó adelante.
func (r *StockRepo) UpdateStock(ctx context.Context, filas []entity.StockSucursal) error {
	if len(filas) == 0 {
		return nil
	}
	const query = `
		UPDATE Producto_Sucursales
		SET Stock = $1
		WHERE Cod_Producto = $2 AND Cod_Sucursal = $3`

	batch := newBatch(query, filas)
	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range filas {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("update stock: %w", err)
		}
	}
	return nil
}

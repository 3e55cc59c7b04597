package postgres

import (
	"github.com/jackc/pgx/v5"

	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/domain/entity"
)

func newBatch(query string, filas []entity.StockSucursal) *pgx.Batch {
	batch := &pgx.Batch{}
	for _, f := range filas {
		batch.Queue(query, f.Stock, f.CodProducto, f.CodSucursal)
	}
	return batch
}

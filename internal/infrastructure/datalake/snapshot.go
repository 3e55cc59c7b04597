package datalake

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/domain/entity"
)

// Snapshots escribe la tabla de stock completa como CSV en el bucket de
// snapshots, siempre bajo una clave nueva con timestamp y sufijo único. El
// objeto de origen nunca se sobreescribe: bucket distinto y clave versionada.
type Snapshots struct {
	client *Client
	bucket string
	prefix string
}

// NewSnapshots construye el escritor de snapshots.
func NewSnapshots(client *Client, bucket, prefix string) *Snapshots {
	if prefix == "" {
		prefix = "Producto_Sucursales"
	}
	return &Snapshots{client: client, bucket: bucket, prefix: prefix}
}

// Write serializa y sube el snapshot. Devuelve la clave escrita.
func (s *Snapshots) Write(ctx context.Context, filas []entity.StockSucursal) (string, error) {
	var buf bytes.Buffer
	if err := EncodeStock(&buf, filas); err != nil {
		return "", fmt.Errorf("serializar snapshot: %w", err)
	}
	key := fmt.Sprintf("%s/%s_%s.csv", s.prefix, time.Now().UTC().Format("20060102T150405Z"), uuid.NewString())
	if err := s.client.Put(ctx, s.bucket, key, &buf); err != nil {
		return "", fmt.Errorf("subir snapshot: %w", err)
	}
	return key, nil
}

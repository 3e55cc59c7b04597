package datalake

import (
	"context"
	"fmt"
	"io"

	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/infrastructure/memory"
)

// Claves de objeto por defecto (nombres de archivo del datalake original).
const (
	KeyProductos     = "Producto_Unico.csv"
	KeyStock         = "Producto_Sucursales.csv"
	KeyCategorias    = "dboCategoria.csv"
	KeySubcategorias = "dboSubCategoria.csv"
)

// Source carga las cuatro tablas base desde el bucket de origen. Se usa una
// sola vez, al arranque; cualquier fallo es fatal para el proceso.
type Source struct {
	client *Client
	bucket string

	KeyProductos     string
	KeyStock         string
	KeyCategorias    string
	KeySubcategorias string
}

// NewSource construye la fuente con las claves por defecto.
func NewSource(client *Client, bucket string) *Source {
	return &Source{
		client:           client,
		bucket:           bucket,
		KeyProductos:     KeyProductos,
		KeyStock:         KeyStock,
		KeyCategorias:    KeyCategorias,
		KeySubcategorias: KeySubcategorias,
	}
}

// LoadTables descarga y parsea las cuatro tablas.
func (s *Source) LoadTables(ctx context.Context) (memory.Tablas, error) {
	var t memory.Tablas
	var err error

	if t.Productos, err = decodeObjeto(ctx, s, s.KeyProductos, DecodeProductos); err != nil {
		return memory.Tablas{}, err
	}
	if t.Stock, err = decodeObjeto(ctx, s, s.KeyStock, DecodeStock); err != nil {
		return memory.Tablas{}, err
	}
	if t.Categorias, err = decodeObjeto(ctx, s, s.KeyCategorias, DecodeCategorias); err != nil {
		return memory.Tablas{}, err
	}
	if t.Subcategorias, err = decodeObjeto(ctx, s, s.KeySubcategorias, DecodeSubcategorias); err != nil {
		return memory.Tablas{}, err
	}
	return t, nil
}

func decodeObjeto[T any](ctx context.Context, s *Source, key string, decode func(io.Reader) ([]T, error)) ([]T, error) {
	body, err := s.client.Get(ctx, s.bucket, key)
	if err != nil {
		return nil, fmt.Errorf("cargar %s: %w", key, err)
	}
	defer body.Close()
	filas, err := decode(body)
	if err != nil {
		return nil, fmt.Errorf("parsear %s: %w", key, err)
	}
	return filas, nil
}

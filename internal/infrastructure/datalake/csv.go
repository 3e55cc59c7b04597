package datalake

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/domain/entity"
)

// Codec CSV de las cuatro tablas base. Primera fila: encabezado con los
// nombres de columna originales; el orden de columnas no importa.

type columnas map[string]int

func leerEncabezado(r *csv.Reader, requeridas ...string) (columnas, error) {
	fila, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	cols := make(columnas, len(fila))
	for i, nombre := range fila {
		cols[nombre] = i
	}
	for _, req := range requeridas {
		if _, ok := cols[req]; !ok {
			return nil, fmt.Errorf("falta la columna %q en el encabezado", req)
		}
	}
	return cols, nil
}

func (c columnas) entero(fila []string, nombre string) (int, error) {
	n, err := strconv.Atoi(fila[c[nombre]])
	if err != nil {
		return 0, fmt.Errorf("columna %s: %w", nombre, err)
	}
	return n, nil
}

// DecodeProductos parsea Producto_Unico.csv.
func DecodeProductos(r io.Reader) ([]entity.Producto, error) {
	cr := csv.NewReader(r)
	cols, err := leerEncabezado(cr, "Cod_Producto", "Nombre", "Precio", "Cod_Categoria", "Cod_Subcategoria")
	if err != nil {
		return nil, err
	}
	out := []entity.Producto{}
	for {
		fila, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		var p entity.Producto
		if p.CodProducto, err = cols.entero(fila, "Cod_Producto"); err != nil {
			return nil, err
		}
		p.Nombre = fila[cols["Nombre"]]
		if p.Precio, err = decimal.NewFromString(fila[cols["Precio"]]); err != nil {
			return nil, fmt.Errorf("columna Precio: %w", err)
		}
		if p.CodCategoria, err = cols.entero(fila, "Cod_Categoria"); err != nil {
			return nil, err
		}
		if p.CodSubcategoria, err = cols.entero(fila, "Cod_Subcategoria"); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
}

// DecodeStock parsea Producto_Sucursales.csv.
func DecodeStock(r io.Reader) ([]entity.StockSucursal, error) {
	cr := csv.NewReader(r)
	cols, err := leerEncabezado(cr, "Cod_Producto", "Cod_Sucursal", "Stock")
	if err != nil {
		return nil, err
	}
	out := []entity.StockSucursal{}
	for {
		fila, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		var s entity.StockSucursal
		if s.CodProducto, err = cols.entero(fila, "Cod_Producto"); err != nil {
			return nil, err
		}
		s.CodSucursal = fila[cols["Cod_Sucursal"]]
		if s.Stock, err = cols.entero(fila, "Stock"); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
}

// DecodeCategorias parsea dboCategoria.csv.
func DecodeCategorias(r io.Reader) ([]entity.Categoria, error) {
	cr := csv.NewReader(r)
	cols, err := leerEncabezado(cr, "Cod_Categoria", "Nombre")
	if err != nil {
		return nil, err
	}
	out := []entity.Categoria{}
	for {
		fila, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		var c entity.Categoria
		if c.CodCategoria, err = cols.entero(fila, "Cod_Categoria"); err != nil {
			return nil, err
		}
		c.Nombre = fila[cols["Nombre"]]
		out = append(out, c)
	}
}

// DecodeSubcategorias parsea dboSubCategoria.csv.
func DecodeSubcategorias(r io.Reader) ([]entity.Subcategoria, error) {
	cr := csv.NewReader(r)
	cols, err := leerEncabezado(cr, "Cod_Subcategoria", "Nombre")
	if err != nil {
		return nil, err
	}
	out := []entity.Subcategoria{}
	for {
		fila, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		var s entity.Subcategoria
		if s.CodSubcategoria, err = cols.entero(fila, "Cod_Subcategoria"); err != nil {
			return nil, err
		}
		s.Nombre = fila[cols["Nombre"]]
		out = append(out, s)
	}
}

// EncodeStock serializa la tabla de stock completa con el mismo encabezado que
// el CSV de origen, para el snapshot durable.
func EncodeStock(w io.Writer, filas []entity.StockSucursal) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Cod_Producto", "Cod_Sucursal", "Stock"}); err != nil {
		return err
	}
	for _, f := range filas {
		registro := []string{strconv.Itoa(f.CodProducto), f.CodSucursal, strconv.Itoa(f.Stock)}
		if err := cw.Write(registro); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

package entity

import "github.com/shopspring/decimal"

// Precio viaja como número JSON, igual que las columnas numéricas del CSV de
// origen. Sin esto decimal serializa entre comillas.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Producto es una fila de la tabla maestra Producto_Unico. Los nombres JSON
// coinciden con las columnas del CSV de origen; la tabla es inmutable después
// de la carga inicial.
type Producto struct {
	CodProducto     int             `json:"Cod_Producto"`
	Nombre          string          `json:"Nombre"`
	Precio          decimal.Decimal `json:"Precio"`
	CodCategoria    int             `json:"Cod_Categoria"`
	CodSubcategoria int             `json:"Cod_Subcategoria"`
}

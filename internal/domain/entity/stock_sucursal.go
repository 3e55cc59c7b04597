package entity

// StockSucursal es una fila de Producto_Sucursales: stock de un producto en
// una sucursal. Identidad compuesta (CodProducto, CodSucursal). Es la única
// tabla mutable: cada actualización la reemplaza completa, nunca fila a fila.
type StockSucursal struct {
	CodProducto int    `json:"Cod_Producto"`
	CodSucursal string `json:"Cod_Sucursal"`
	Stock       int    `json:"Stock"`
}

package entity

// Categoria es una fila de la tabla de referencia dboCategoria (solo lectura).
type Categoria struct {
	CodCategoria int    `json:"Cod_Categoria"`
	Nombre       string `json:"Nombre"`
}

// Subcategoria es una fila de dboSubCategoria (solo lectura).
type Subcategoria struct {
	CodSubcategoria int    `json:"Cod_Subcategoria"`
	Nombre          string `json:"Nombre"`
}

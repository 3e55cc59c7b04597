package dto

// ActualizarStockRequest cuerpo del PUT /producto/:id. Las credenciales viajan
// en el body (par usuario/contraseña fijo, no hay emisión de tokens).
type ActualizarStockRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
	Stock    int    `json:"stock"`
}

// ErrorResponse cuerpo de error para 404 y 400: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MensajeResponse cuerpo del 401 de la ruta mutadora: {"message": "..."}.
type MensajeResponse struct {
	Message string `json:"message"`
}

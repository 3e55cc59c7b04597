package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/application/auth"
	appcatalog "github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/application/catalog"
	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/application/dto"
	"github.com/AzurePipelineGrupo1Siglo21/catalogo-api/internal/domain"
)

// StockHandler maneja la ruta mutadora de stock (autenticada).
type StockHandler struct {
	uc    *appcatalog.StockUseCase
	creds auth.Verifier
}

// NewStockHandler construye el handler con el verificador de credenciales
// inyectado.
func NewStockHandler(uc *appcatalog.StockUseCase, creds auth.Verifier) *StockHandler {
	return &StockHandler{uc: uc, creds: creds}
}

// Actualizar reparte el nuevo total de stock entre las sucursales del
// producto. Credenciales en el body; se validan antes de tocar estado.
// PUT /producto/:id body {user, password, stock}
func (h *StockHandler) Actualizar(c *fiber.Ctx) error {
	id, ok := paramEntero(c, "id")
	if !ok {
		return nil
	}
	var in dto.ActualizarStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo de la petición inválido."})
	}
	if !h.creds.Verificar(in.User, in.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MensajeResponse{
			Message: "El usuario o la contraseña no son validos",
		})
	}

	registros, err := h.uc.ActualizarStock(c.UserContext(), id, in.Stock)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: fmt.Sprintf("No existe el producto con id %d.", id),
			})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "El stock no puede ser negativo.",
			})
		default:
			return err
		}
	}
	return c.JSON(registros)
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billmate-pos/internal/application/dto"
	"github.com/jhoicas/billmate-pos/internal/application/usecase"
	"github.com/jhoicas/billmate-pos/internal/domain"
)

// SettingsHandler maneja las peticiones HTTP de configuración.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// GetAll godoc
// @Summary      Configuración completa de la tienda
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) GetAll(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Set godoc
// @Summary      Actualizar una clave de configuración
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        key   path  string  true  "Clave (shop_name, currency, low_stock_threshold)"
// @Param        body  body  dto.UpdateSettingRequest  true  "Nuevo valor"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/settings/{key} [put]
func (h *SettingsHandler) Set(c *fiber.Ctx) error {
	var in dto.UpdateSettingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Set(c.UserContext(), c.Params("key"), in.Value); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "clave desconocida"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "valor inválido para la clave"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "configuración guardada"})
}

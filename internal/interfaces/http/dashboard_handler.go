package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billmate-pos/internal/application/analytics"
	"github.com/jhoicas/billmate-pos/internal/application/dto"
)

// DashboardHandler maneja el resumen de la pantalla principal.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del día: ventas, stock bajo y top de productos
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

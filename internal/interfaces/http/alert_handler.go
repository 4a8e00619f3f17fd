package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billmate-pos/internal/application/alerts"
	"github.com/jhoicas/billmate-pos/internal/application/dto"
	"github.com/jhoicas/billmate-pos/internal/domain/entity"
	"github.com/jhoicas/billmate-pos/internal/domain/repository"
)

// AlertHandler maneja las peticiones HTTP del centro de notificaciones.
// El filtrado contra descartes ocurre aquí: el motor genera siempre la
// lista completa.
type AlertHandler struct {
	engine    *alerts.Engine
	poller    *alerts.Poller
	dismissed repository.DismissedAlertRepository
}

// NewAlertHandler construye el handler.
func NewAlertHandler(engine *alerts.Engine, poller *alerts.Poller, dismissed repository.DismissedAlertRepository) *AlertHandler {
	return &AlertHandler{engine: engine, poller: poller, dismissed: dismissed}
}

// List godoc
// @Summary      Alertas activas (sin las descartadas)
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  dto.AlertListResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	active, err := h.activeAlerts(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := dto.AlertListResponse{Alerts: make([]dto.AlertResponse, 0, len(active))}
	for _, a := range active {
		out.Alerts = append(out.Alerts, dto.AlertResponse{
			ID:       a.ID,
			Type:     a.Type,
			Icon:     a.Icon,
			Title:    a.Title,
			Message:  a.Message,
			Severity: a.Severity,
		})
	}
	return c.JSON(out)
}

// Badge godoc
// @Summary      Contador para la campana de notificaciones
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  dto.AlertBadgeResponse
// @Router       /api/alerts/badge [get]
func (h *AlertHandler) Badge(c *fiber.Ctx) error {
	return c.JSON(dto.AlertBadgeResponse{Count: h.poller.Count()})
}

// Dismiss godoc
// @Summary      Descartar una alerta
// @Tags         alerts
// @Produce      json
// @Param        id  path  string  true  "ID de la alerta"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/alerts/{id}/dismiss [post]
func (h *AlertHandler) Dismiss(c *fiber.Ctx) error {
	if err := h.dismissed.Dismiss(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "alerta descartada"})
}

// DismissAll godoc
// @Summary      Descartar todas las alertas activas
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/alerts/dismiss-all [post]
func (h *AlertHandler) DismissAll(c *fiber.Ctx) error {
	active, err := h.activeAlerts(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	for _, a := range active {
		if err := h.dismissed.Dismiss(c.UserContext(), a.ID); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(dto.MessageResponse{Message: "alertas descartadas"})
}

// ClearDismissed godoc
// @Summary      Reactivar todas las alertas descartadas
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/alerts/clear-dismissed [post]
func (h *AlertHandler) ClearDismissed(c *fiber.Ctx) error {
	if err := h.dismissed.Clear(c.UserContext()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "descartes limpiados"})
}

func (h *AlertHandler) activeAlerts(c *fiber.Ctx) ([]entity.Alert, error) {
	all := h.engine.Generate(c.UserContext())
	hiddenIDs, err := h.dismissed.ListIDs(c.UserContext())
	if err != nil {
		return nil, err
	}
	hidden := make(map[string]bool, len(hiddenIDs))
	for _, id := range hiddenIDs {
		hidden[id] = true
	}
	active := make([]entity.Alert, 0, len(all))
	for _, a := range all {
		if !hidden[a.ID] {
			active = append(active, a)
		}
	}
	return active, nil
}

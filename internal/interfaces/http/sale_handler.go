package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billmate-pos/internal/application/billing"
	"github.com/jhoicas/billmate-pos/internal/application/dto"
	"github.com/jhoicas/billmate-pos/internal/domain"
)

// SaleHandler maneja las peticiones HTTP de ventas.
type SaleHandler struct {
	uc *billing.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *billing.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Checkout godoc
// @Summary      Cobrar el carrito
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Carrito y método de pago"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales/checkout [post]
func (h *SaleHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Checkout(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCart), errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Produce      json
// @Param        filter  query  string  false  "today | week | month | all | range"  default(all)
// @Param        from    query  string  false  "Inicio del rango (YYYY-MM-DD, solo filter=range)"
// @Param        to      query  string  false  "Fin del rango (YYYY-MM-DD, solo filter=range)"
// @Success      200  {array}  dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	filter := c.Query("filter", billing.FilterAll)
	var from, to time.Time
	if filter == "range" {
		var err error
		from, err = time.ParseInLocation("2006-01-02", c.Query("from"), time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido, se espera YYYY-MM-DD"})
		}
		to, err = time.ParseInLocation("2006-01-02", c.Query("to"), time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido, se espera YYYY-MM-DD"})
		}
	}
	out, err := h.uc.ListSales(c.UserContext(), filter, from, to)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// TodayStats godoc
// @Summary      Indicadores del día
// @Tags         sales
// @Produce      json
// @Success      200  {object}  dto.TodayStatsResponse
// @Router       /api/sales/stats/today [get]
func (h *SaleHandler) TodayStats(c *fiber.Ctx) error {
	out, err := h.uc.TodayStats(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Productos más vendidos
// @Tags         sales
// @Produce      json
// @Param        limit  query  int  false  "Máximo de entradas"  default(5)
// @Success      200  {array}  dto.TopProductResponse
// @Router       /api/sales/top-products [get]
func (h *SaleHandler) TopProducts(c *fiber.Ctx) error {
	out, err := h.uc.TopProducts(c.UserContext(), c.QueryInt("limit", 5))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta con sus líneas
// @Tags         sales
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetSale(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	return c.JSON(out)
}

// Refund godoc
// @Summary      Devolver una venta
// @Tags         sales
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/refund [post]
func (h *SaleHandler) Refund(c *fiber.Ctx) error {
	out, err := h.uc.Refund(c.UserContext(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		case errors.Is(err, domain.ErrAlreadyRefunded):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_REFUNDED", Message: "la venta ya fue devuelta"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billmate-pos/internal/application/dto"
	"github.com/jhoicas/billmate-pos/internal/application/usecase"
	"github.com/jhoicas/billmate-pos/internal/domain"
)

// ExpenseHandler maneja las peticiones HTTP de gastos.
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar gasto
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenseRequest  true  "Datos del gasto"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type y amount > 0 son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar gastos
// @Tags         expenses
// @Produce      json
// @Param        from  query  string  false  "Inicio del rango (YYYY-MM-DD)"
// @Param        to    query  string  false  "Fin del rango (YYYY-MM-DD)"
// @Success      200  {array}  dto.ExpenseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	fromRaw, toRaw := c.Query("from"), c.Query("to")
	if fromRaw == "" && toRaw == "" {
		out, err := h.uc.List(c.UserContext())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}
	from, err := time.ParseInLocation("2006-01-02", fromRaw, time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido, se espera YYYY-MM-DD"})
	}
	to, err := time.ParseInLocation("2006-01-02", toRaw, time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido, se espera YYYY-MM-DD"})
	}
	out, err := h.uc.ListByRange(c.UserContext(), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// TodayTotal godoc
// @Summary      Total gastado hoy
// @Tags         expenses
// @Produce      json
// @Success      200  {object}  dto.ExpenseTodayResponse
// @Router       /api/expenses/today/total [get]
func (h *ExpenseHandler) TodayTotal(c *fiber.Ctx) error {
	out, err := h.uc.TodayTotal(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar gasto
// @Tags         expenses
// @Produce      json
// @Param        id  path  string  true  "ID del gasto"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "gasto eliminado"})
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-ledger/internal/application/billing"
	"github.com/jhoicas/tienda-ledger/internal/application/dto"
)

// CashHandler maneja el libro de caja (protegido).
type CashHandler struct {
	uc *billing.CashUseCase
}

// NewCashHandler construye el handler.
func NewCashHandler(uc *billing.CashUseCase) *CashHandler {
	return &CashHandler{uc: uc}
}

// List GET /api/cash
func (h *CashHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetOwnerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Balance GET /api/cash/balance
func (h *CashHandler) Balance(c *fiber.Ctx) error {
	out, err := h.uc.Balance(c.UserContext(), GetOwnerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Add POST /api/cash (un pago de cliente o proveedor reduce su deuda)
func (h *CashHandler) Add(c *fiber.Ctx) error {
	var in dto.CashEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Add(c.UserContext(), GetOwnerID(c), GetEmployeeID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

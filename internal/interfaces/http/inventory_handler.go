package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-ledger/internal/application/dto"
	"github.com/jhoicas/tienda-ledger/internal/application/inventory"
)

// InventoryHandler maneja entradas de proveedor, bajas y el historial de transacciones (protegido).
type InventoryHandler struct {
	uc            *inventory.InventoryUseCase
	replenishment *inventory.ReplenishmentUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.InventoryUseCase, replenishment *inventory.ReplenishmentUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, replenishment: replenishment}
}

// ListTransactions GET /api/transactions?includeDeleted=true
func (h *InventoryHandler) ListTransactions(c *fiber.Ctx) error {
	list, err := h.uc.ListTransactions(c.UserContext(), GetOwnerID(c), c.QueryBool("includeDeleted", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// PostIntake godoc
// @Summary      Registrar entrada de proveedor
// @Description  Publica un lote de entradas: stock += cantidad, costo = último costo unitario,
//
//	deuda del proveedor += total cuando el pago es DEBT.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IntakeRequest  true  "proveedor, forma de pago y líneas"
// @Success      201   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transactions/intake [post]
func (h *InventoryHandler) PostIntake(c *fiber.Ctx) error {
	var in dto.IntakeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.PostIntake(c.UserContext(), GetOwnerID(c), GetEmployeeID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// PostWriteOff POST /api/transactions/write-off
func (h *InventoryHandler) PostWriteOff(c *fiber.Ctx) error {
	var in dto.WriteOffRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.PostWriteOff(c.UserContext(), GetOwnerID(c), GetEmployeeID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteTransaction DELETE /api/transactions/:id
func (h *InventoryHandler) DeleteTransaction(c *fiber.Ctx) error {
	if err := h.uc.DeleteTransaction(c.UserContext(), GetOwnerID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetReplenishmentList godoc
// @Summary      Lista de reposición
// @Description  Productos bajo su mínimo con la cantidad sugerida, ordenados por urgencia.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ReplenishmentSuggestionDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/products/replenishment [get]
func (h *InventoryHandler) GetReplenishmentList(c *fiber.Ctx) error {
	list, err := h.replenishment.GenerateReplenishmentList(c.UserContext(), GetOwnerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":          len(list),
		"replenishments": list,
	})
}

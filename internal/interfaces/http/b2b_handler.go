package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-ledger/internal/application/b2b"
	"github.com/jhoicas/tienda-ledger/internal/application/dto"
)

// B2BHandler importación y conciliación de envíos de otras tiendas (protegido).
type B2BHandler struct {
	uc *b2b.B2BUseCase
}

// NewB2BHandler construye el handler.
func NewB2BHandler(uc *b2b.B2BUseCase) *B2BHandler {
	return &B2BHandler{uc: uc}
}

// Pending GET /api/b2b/pending
func (h *B2BHandler) Pending(c *fiber.Ctx) error {
	out, err := h.uc.Pending(c.UserContext(), GetOwnerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Import POST /api/b2b/import
func (h *B2BHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Import(c.UserContext(), GetOwnerID(c), GetEmployeeID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Reconcile godoc
// @Summary      Conciliar pedido remoto
// @Description  Asigna cada línea pendiente a un producto local (existente o nuevo), guarda los
//
//	mapeos y publica un único lote de entradas.
//
// @Tags         b2b
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReconcileRequest  true  "decisiones por línea"
// @Success      201   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/b2b/reconcile [post]
func (h *B2BHandler) Reconcile(c *fiber.Ctx) error {
	var in dto.ReconcileRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Reconcile(c.UserContext(), GetOwnerID(c), GetEmployeeID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-ledger/internal/application/analytics"
	"github.com/jhoicas/tienda-ledger/internal/application/dto"
)

// AnalyticsHandler reportes de rentabilidad (protegido).
type AnalyticsHandler struct {
	uc *analytics.MarginsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.MarginsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetMargins godoc
// @Summary      Reporte de márgenes
// @Description  Margen por forma de pago y ranking de productos por margen bruto con corte Pareto 80/20.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "YYYY-MM-DD (default: primer día del mes)"
// @Param        endDate    query  string  false  "YYYY-MM-DD (default: hoy)"
// @Param        topN       query  int     false  "máx productos (default 20, max 200)"
// @Success      200  {object}  dto.MarginsReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/margins [get]
func (h *AnalyticsHandler) GetMargins(c *fiber.Ctx) error {
	var req dto.MarginsReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.GetMarginsReport(c.UserContext(), GetOwnerID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

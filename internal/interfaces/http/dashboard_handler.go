package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stocktake-pro/internal/application/analytics"
	"github.com/tu-usuario/stocktake-pro/internal/application/dto"
)

// DashboardHandler maneja el resumen ejecutivo del dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del dashboard de valorización
// @Description  Gran total del mes, variación contra el mes anterior con datos,
// @Description  serie de los últimos 6 meses, ranking de sucursales y avance de
// @Description  cierre. Sin mes explícito se usa el último con datos.
// @Tags         dashboard
// @Produce      json
// @Param        month  query  string  false  "Mes YYYY-MM"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Query("month"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestaoplug/erp-api/internal/application/usecase"
)

// DashboardHandler indicadores consolidados.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Totals godoc
// @Summary      Indicadores do painel (financeiro, estoque, atividade)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Totals(c *fiber.Ctx) error {
	out, err := h.uc.Totals()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

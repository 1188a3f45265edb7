package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/licencias-api/internal/application/usecase"
)

// StatsHandler expone los agregados operativos del negocio autenticado.
type StatsHandler struct {
	uc *usecase.StatsUseCase
}

// NewStatsHandler construye el handler inyectando el caso de uso.
func NewStatsHandler(uc *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// GetStats godoc
// @Summary      Estadísticas del negocio
// @Description  Ventas de hoy, productos activos, alertas de stock bajo y total de clientes, recalculados contra el estado actual.
// @Tags         stats
// @Produce      json
// @Success      200  {object}  dto.BusinessStatsResponse
// @Router       /api/stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	out, err := h.uc.GetBusinessStats(c.UserContext(), GetBusinessID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

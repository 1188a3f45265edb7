package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/licencias-api/internal/application/usecase"
)

// QuotaHandler expone los chequeos de cupo del plan.
type QuotaHandler struct {
	uc *usecase.QuotaUseCase
}

// NewQuotaHandler construye el handler inyectando el caso de uso.
func NewQuotaHandler(uc *usecase.QuotaUseCase) *QuotaHandler {
	return &QuotaHandler{uc: uc}
}

// CheckUsers godoc
// @Summary      Cupo de usuarios del plan
// @Description  Pre-verificación antes de crear un usuario: 200 si aún cabe, 409 si el cupo está alcanzado.
// @Tags         quota
// @Produce      json
// @Success      200  {object}  dto.QuotaCheckResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/quota/users [get]
func (h *QuotaHandler) CheckUsers(c *fiber.Ctx) error {
	out, err := h.uc.CheckUserLimit(c.UserContext(), GetBusinessID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CheckBranches godoc
// @Summary      Cupo de sucursales del plan
// @Tags         quota
// @Produce      json
// @Success      200  {object}  dto.QuotaCheckResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/quota/branches [get]
func (h *QuotaHandler) CheckBranches(c *fiber.Ctx) error {
	out, err := h.uc.CheckBranchLimit(c.UserContext(), GetBusinessID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

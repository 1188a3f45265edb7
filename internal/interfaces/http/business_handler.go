package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/licencias-api/internal/application/dto"
	"github.com/jhoicas/licencias-api/internal/application/usecase"
)

// BusinessHandler maneja las peticiones HTTP del ciclo de vida del negocio.
type BusinessHandler struct {
	uc *usecase.BusinessUseCase
}

// NewBusinessHandler construye el handler inyectando el caso de uso.
func NewBusinessHandler(uc *usecase.BusinessUseCase) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

// Create godoc
// @Summary      Dar de alta un negocio
// @Description  Crea el negocio bajo el plan indicado, genera su clave de licencia y su sucursal principal.
// @Tags         businesses
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBusinessRequest  true  "Datos del negocio"
// @Success      201   {object}  dto.BusinessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/businesses [post]
func (h *BusinessHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateSubscription godoc
// @Summary      Renovar o cambiar el plan de un negocio
// @Description  Recalcula el período de suscripción desde hoy y reactiva el negocio.
// @Tags         businesses
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del negocio"
// @Param        body  body  dto.UpdateSubscriptionRequest  true  "Nuevo plan"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/businesses/{id}/subscription [put]
func (h *BusinessHandler) UpdateSubscription(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateSubscriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateSubscription(c.UserContext(), id, in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetSubscriptionDetails godoc
// @Summary      Negocio con su plan vigente
// @Tags         businesses
// @Produce      json
// @Param        id   path  string  true  "ID del negocio"
// @Success      200  {object}  dto.SubscriptionDetailsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/businesses/{id}/subscription [get]
func (h *BusinessHandler) GetSubscriptionDetails(c *fiber.Ctx) error {
	out, err := h.uc.GetSubscriptionDetails(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetBranches godoc
// @Summary      Sucursales activas del negocio
// @Tags         branches
// @Produce      json
// @Param        id   path  string  true  "ID del negocio"
// @Success      200  {array}  dto.BranchResponse
// @Router       /api/businesses/{id}/branches [get]
func (h *BusinessHandler) GetBranches(c *fiber.Ctx) error {
	out, err := h.uc.GetBranches(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateBranch godoc
// @Summary      Abrir una sucursal adicional
// @Description  Verifica el cupo de sucursales del plan bajo bloqueo antes de crear.
// @Tags         branches
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del negocio"
// @Param        body  body  dto.CreateBranchRequest  true  "Datos de la sucursal"
// @Success      201  {object}  dto.BranchResponse
// @Failure      409  {object}  dto.ErrorResponse  "cupo del plan alcanzado"
// @Router       /api/businesses/{id}/branches [post]
func (h *BusinessHandler) CreateBranch(c *fiber.Ctx) error {
	var in dto.CreateBranchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateBranch(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

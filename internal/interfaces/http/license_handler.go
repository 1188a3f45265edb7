package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/licencias-api/internal/application/dto"
	"github.com/jhoicas/licencias-api/internal/application/usecase"
	"github.com/jhoicas/licencias-api/pkg/jwt"
)

// JWTConfig parámetros de emisión del token de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// LicenseHandler maneja la validación de licencias y la emisión de sesión.
type LicenseHandler struct {
	uc     *usecase.LicenseUseCase
	jwtCfg JWTConfig
}

// NewLicenseHandler construye el handler inyectando el caso de uso.
func NewLicenseHandler(uc *usecase.LicenseUseCase, jwtCfg JWTConfig) *LicenseHandler {
	return &LicenseHandler{uc: uc, jwtCfg: jwtCfg}
}

// Validate godoc
// @Summary      Validar clave de licencia
// @Description  Autentica la clave contra el estado del negocio y su suscripción. Si la suscripción venció, el negocio pasa a suspended en el acto. Devuelve un token de sesión para las rutas protegidas.
// @Tags         license
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidateLicenseRequest  true  "Clave de licencia"
// @Success      200  {object}  dto.LicenseSessionResponse
// @Failure      401  {object}  dto.ErrorResponse  "clave desconocida"
// @Failure      403  {object}  dto.ErrorResponse  "negocio no activo o suscripción vencida"
// @Router       /api/license/validate [post]
func (h *LicenseHandler) Validate(c *fiber.Ctx) error {
	var in dto.ValidateLicenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rec, err := h.uc.Validate(c.UserContext(), in.LicenseKey)
	if err != nil {
		return respondError(c, err)
	}
	token, err := jwt.Generate(h.jwtCfg.Secret, rec.Business.ID, rec.PlanName, h.jwtCfg.Issuer, h.jwtCfg.ExpMinutes)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(usecase.ToSession(rec, token))
}

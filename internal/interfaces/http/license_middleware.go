package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/licencias-api/internal/application/dto"
	"github.com/jhoicas/licencias-api/pkg/jwt"
)

// Locals keys para BusinessID y Plan en Fiber.
const (
	LocalBusinessID = "business_id"
	LocalPlan       = "plan"
)

// LicenseMiddleware valida el Bearer Token de sesión emitido al validar la
// licencia y carga BusinessID y Plan en c.Locals. Las rutas de negocio
// (sucursales, cupos, estadísticas) solo son accesibles con sesión vigente.
func LicenseMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		businessID, plan, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if businessID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_BUSINESS", Message: "token sin negocio asociado"})
		}
		c.Locals(LocalBusinessID, businessID)
		c.Locals(LocalPlan, plan)
		return c.Next()
	}
}

// GetBusinessID devuelve el BusinessID del contexto (después del middleware).
func GetBusinessID(c *fiber.Ctx) string {
	v := c.Locals(LocalBusinessID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetPlan devuelve el nombre del plan del contexto (después del middleware).
func GetPlan(c *fiber.Ctx) string {
	v := c.Locals(LocalPlan)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/licencias-api/internal/application/dto"
	"github.com/jhoicas/licencias-api/internal/domain"
)

// respondError traduce errores de dominio a respuestas HTTP. El mensaje
// conserva el texto del error (la capa de presentación decide cómo mostrarlo);
// los fallos de persistencia caen al 500 genérico sin filtrar detalles.
func respondError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: vErr.Error()})
	}
	var naErr *domain.NotActiveError
	if errors.As(err, &naErr) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "BUSINESS_NOT_ACTIVE", Message: naErr.Error()})
	}
	var limErr *domain.LimitError
	if errors.As(err, &limErr) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LIMIT_REACHED", Message: limErr.Error()})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidSubscription):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_SUBSCRIPTION", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidLicense):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_LICENSE", Message: err.Error()})
	case errors.Is(err, domain.ErrSubscriptionExpired):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "SUBSCRIPTION_EXPIRED", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

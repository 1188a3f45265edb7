package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidSubscription = errors.New("suscripción inválida")
	ErrInvalidLicense      = errors.New("clave de licencia inválida")
	ErrSubscriptionExpired = errors.New("la suscripción ha expirado")
	ErrDuplicateLicenseKey = errors.New("clave de licencia duplicada")
	ErrLicenseKeyExhausted = errors.New("no se pudo generar una clave de licencia única")
)

// ValidationError indica que falta un campo obligatorio en la entrada.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("el campo %s es obligatorio", e.Field)
}

// NotActiveError indica que el negocio no está activo. Conserva el estado
// actual (suspended, cancelled) para que la capa de presentación lo muestre.
type NotActiveError struct {
	Status string
}

func (e *NotActiveError) Error() string {
	return fmt.Sprintf("la cuenta del negocio está %s", e.Status)
}

// Clases de recurso sujetas a cupo por plan.
const (
	ResourceUsers    = "users"
	ResourceBranches = "branches"
)

// LimitError indica que se alcanzó el cupo del plan para un recurso.
type LimitError struct {
	Resource string // ResourceUsers | ResourceBranches
	Current  int
	Max      int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("cupo de %s alcanzado para la suscripción actual (%d/%d)", e.Resource, e.Current, e.Max)
}

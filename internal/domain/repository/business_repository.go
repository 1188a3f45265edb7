package repository

import (
	"context"
	"time"

	"github.com/jhoicas/licencias-api/internal/domain/entity"
)

// LicenseRecord es la fila de negocio unida a su plan, tal como la necesita
// la validación de licencia.
type LicenseRecord struct {
	Business entity.Business
	PlanName string
	Features []string
}

// SubscriptionDetails es el negocio unido a su plan completo.
type SubscriptionDetails struct {
	Business entity.Business
	Plan     entity.Subscription
}

// BusinessRepository define el puerto de persistencia para Business (DIP).
// La implementación vive en infrastructure. Los métodos Get* devuelven
// (nil, nil) cuando no hay fila.
type BusinessRepository interface {
	// Create devuelve domain.ErrDuplicateLicenseKey si la clave de licencia
	// ya existe (constraint UNIQUE), para que el caso de uso reintente.
	Create(ctx context.Context, business *entity.Business) error
	GetByID(ctx context.Context, id string) (*entity.Business, error)
	// GetForUpdate bloquea la fila del negocio (SELECT ... FOR UPDATE) para
	// serializar chequeos de cupo dentro de una transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Business, error)
	GetByLicenseKey(ctx context.Context, licenseKey string) (*LicenseRecord, error)
	GetSubscriptionDetails(ctx context.Context, id string) (*SubscriptionDetails, error)
	// UpdateStatus persiste una transición de estado (active/suspended/cancelled).
	UpdateStatus(ctx context.Context, id, status string) error
	// UpdateSubscription cambia el plan y recalcula el período; fuerza status
	// active. Devuelve domain.ErrNotFound si el negocio no existe.
	UpdateSubscription(ctx context.Context, id, subscriptionID string, start, end time.Time) error
}

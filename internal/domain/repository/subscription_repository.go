package repository

import (
	"context"

	"github.com/jhoicas/licencias-api/internal/domain/entity"
)

// SubscriptionRepository define el puerto de lectura del catálogo de planes.
// Create solo lo usa el seed; el core nunca modifica planes.
type SubscriptionRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Subscription, error)
	List(ctx context.Context) ([]*entity.Subscription, error)
	Create(ctx context.Context, plan *entity.Subscription) error
}

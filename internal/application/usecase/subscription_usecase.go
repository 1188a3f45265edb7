package usecase

import (
	"context"

	"github.com/jhoicas/licencias-api/internal/application/dto"
	"github.com/jhoicas/licencias-api/internal/domain/repository"
)

// SubscriptionUseCase expone el catálogo de planes (solo lectura).
type SubscriptionUseCase struct {
	planRepo repository.SubscriptionRepository
}

// NewSubscriptionUseCase construye el caso de uso con el puerto del catálogo.
func NewSubscriptionUseCase(planRepo repository.SubscriptionRepository) *SubscriptionUseCase {
	return &SubscriptionUseCase{planRepo: planRepo}
}

// List devuelve todos los planes contratables.
func (uc *SubscriptionUseCase) List(ctx context.Context) (*dto.SubscriptionListResponse, error) {
	plans, err := uc.planRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubscriptionResponse, 0, len(plans))
	for _, p := range plans {
		items = append(items, toSubscriptionResponse(p))
	}
	return &dto.SubscriptionListResponse{Items: items}, nil
}

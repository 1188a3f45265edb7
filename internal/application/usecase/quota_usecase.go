package usecase

import (
	"context"

	"github.com/jhoicas/licencias-api/internal/application/dto"
	"github.com/jhoicas/licencias-api/internal/domain"
	"github.com/jhoicas/licencias-api/internal/domain/repository"
)

// QuotaUseCase verifica cupos del plan antes de crear usuarios o sucursales.
// El chequeo es una pre-verificación sin efectos: la garantía fuerte para
// sucursales la da BusinessUseCase.CreateBranch bajo bloqueo de fila.
//
// Política de cupo cero: la consulta de uso siempre produce fila (LEFT JOIN),
// así que un negocio sin usuarios con max_users = 0 da 0 >= 0 y devuelve
// LimitError. El cupo del plan se respeta también cuando aún no hay uso.
type QuotaUseCase struct {
	quotaRepo repository.QuotaRepository
}

// NewQuotaUseCase construye el caso de uso con el puerto de consulta de cupos.
func NewQuotaUseCase(quotaRepo repository.QuotaRepository) *QuotaUseCase {
	return &QuotaUseCase{quotaRepo: quotaRepo}
}

// CheckUserLimit verifica el cupo de usuarios del negocio. Devuelve
// domain.LimitError si el uso actual ya alcanzó max_users.
func (uc *QuotaUseCase) CheckUserLimit(ctx context.Context, businessID string) (*dto.QuotaCheckResponse, error) {
	usage, err := uc.quotaRepo.UserUsage(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return check(domain.ResourceUsers, usage)
}

// CheckBranchLimit verifica el cupo de sucursales activas del negocio.
func (uc *QuotaUseCase) CheckBranchLimit(ctx context.Context, businessID string) (*dto.QuotaCheckResponse, error) {
	usage, err := uc.quotaRepo.BranchUsage(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return check(domain.ResourceBranches, usage)
}

func check(resource string, usage repository.QuotaUsage) (*dto.QuotaCheckResponse, error) {
	if usage.Current >= usage.Max {
		return nil, &domain.LimitError{Resource: resource, Current: usage.Current, Max: usage.Max}
	}
	return &dto.QuotaCheckResponse{
		Resource: resource,
		Current:  usage.Current,
		Max:      usage.Max,
		Allowed:  true,
	}, nil
}

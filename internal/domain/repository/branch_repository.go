package repository

import (
	"context"

	"github.com/jhoicas/licencias-api/internal/domain/entity"
)

// BranchRepository define el puerto de persistencia para Branch.
type BranchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	// ListActiveByBusiness devuelve las sucursales activas ordenadas por nombre ASC.
	ListActiveByBusiness(ctx context.Context, businessID string) ([]*entity.Branch, error)
	CountActive(ctx context.Context, businessID string) (int, error)
}

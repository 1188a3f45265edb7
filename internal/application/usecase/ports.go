package usecase

import (
	"context"

	"github.com/jhoicas/licencias-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que negocio y sucursal principal
// se escriban atómicamente, y serializa los chequeos de cupo de sucursales.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		businessRepo repository.BusinessRepository,
		branchRepo repository.BranchRepository,
	) error) error
}

package usecase

import (
	"context"

	"github.com/jhoicas/licencias-api/internal/application/dto"
	"github.com/jhoicas/licencias-api/internal/domain/repository"
)

// StatsUseCase calcula los agregados operativos del tablero de un negocio.
// Sin caché: cada llamada consulta el estado vivo de la base.
type StatsUseCase struct {
	statsRepo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso con el puerto de estadísticas.
func NewStatsUseCase(statsRepo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{statsRepo: statsRepo}
}

// GetBusinessStats devuelve ventas de hoy, productos activos, alertas de
// stock bajo y total de clientes. Un negocio sin actividad obtiene todos los
// campos en cero, nunca un error.
func (uc *StatsUseCase) GetBusinessStats(ctx context.Context, businessID string) (*dto.BusinessStatsResponse, error) {
	sales, err := uc.statsRepo.TodaySales(ctx, businessID)
	if err != nil {
		return nil, err
	}
	products, err := uc.statsRepo.ActiveProducts(ctx, businessID)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.statsRepo.LowStockProducts(ctx, businessID)
	if err != nil {
		return nil, err
	}
	customers, err := uc.statsRepo.TotalCustomers(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return &dto.BusinessStatsResponse{
		TodaySales:     sales,
		TotalProducts:  products,
		LowStockCount:  lowStock,
		TotalCustomers: customers,
	}, nil
}

package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StatsRepository consultas de solo lectura para los agregados operativos de
// un negocio. Cada consulta devuelve cero si no hay filas (COALESCE).
type StatsRepository interface {
	// TodaySales suma total_amount de las ventas con fecha de hoy (día
	// calendario del servidor de base de datos).
	TodaySales(ctx context.Context, businessID string) (decimal.Decimal, error)
	// ActiveProducts cuenta productos con status active.
	ActiveProducts(ctx context.Context, businessID string) (int, error)
	// LowStockProducts cuenta productos activos con current_stock <= min_stock.
	LowStockProducts(ctx context.Context, businessID string) (int, error)
	// TotalCustomers cuenta todos los clientes del negocio (sin filtro de status).
	TotalCustomers(ctx context.Context, businessID string) (int, error)
}

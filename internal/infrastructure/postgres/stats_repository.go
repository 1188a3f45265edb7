package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/licencias-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para los agregados del tablero.
// Usa COALESCE para devolver cero cuando no hay filas: un negocio recién
// creado nunca produce error, solo ceros.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// TodaySales suma total_amount de las ventas con fecha de hoy (día calendario
// del servidor de base de datos, vía CURRENT_DATE).
func (r *StatsRepo) TodaySales(ctx context.Context, businessID string) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM sales
		WHERE business_id = $1 AND created_at::date = CURRENT_DATE`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, businessID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("stats.TodaySales: %w", err)
	}
	return total, nil
}

// ActiveProducts cuenta productos con status active.
func (r *StatsRepo) ActiveProducts(ctx context.Context, businessID string) (int, error) {
	const query = `
		SELECT COUNT(*) FROM products
		WHERE business_id = $1 AND status = 'active'`
	var count int
	if err := r.q.QueryRow(ctx, query, businessID).Scan(&count); err != nil {
		return 0, fmt.Errorf("stats.ActiveProducts: %w", err)
	}
	return count, nil
}

// LowStockProducts cuenta productos activos con current_stock <= min_stock.
func (r *StatsRepo) LowStockProducts(ctx context.Context, businessID string) (int, error) {
	const query = `
		SELECT COUNT(*) FROM products
		WHERE business_id = $1 AND status = 'active' AND current_stock <= min_stock`
	var count int
	if err := r.q.QueryRow(ctx, query, businessID).Scan(&count); err != nil {
		return 0, fmt.Errorf("stats.LowStockProducts: %w", err)
	}
	return count, nil
}

// TotalCustomers cuenta todos los clientes del negocio, sin filtro de status.
func (r *StatsRepo) TotalCustomers(ctx context.Context, businessID string) (int, error) {
	const query = `SELECT COUNT(*) FROM customers WHERE business_id = $1`
	var count int
	if err := r.q.QueryRow(ctx, query, businessID).Scan(&count); err != nil {
		return 0, fmt.Errorf("stats.TotalCustomers: %w", err)
	}
	return count, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/licencias-api/internal/domain"
	"github.com/jhoicas/licencias-api/internal/domain/repository"
)

var _ repository.QuotaRepository = (*QuotaRepo)(nil)

// QuotaRepo consulta uso vs. cupo del plan en una sola pasada.
//
// El LEFT JOIN garantiza que siempre haya fila mientras el negocio exista:
// un negocio sin usuarios/sucursales reporta Current=0 en vez de "sin grupo",
// de modo que el cupo del plan se evalúa también con uso cero.
type QuotaRepo struct {
	q Querier
}

// NewQuotaRepository construye el adaptador de cupos.
func NewQuotaRepository(q Querier) *QuotaRepo {
	return &QuotaRepo{q: q}
}

// UserUsage devuelve (usuarios actuales, max_users del plan).
func (r *QuotaRepo) UserUsage(ctx context.Context, businessID string) (repository.QuotaUsage, error) {
	const query = `
		SELECT COUNT(u.id), s.max_users
		FROM businesses b
		JOIN subscriptions s ON s.id = b.subscription_id
		LEFT JOIN users u ON u.business_id = b.id
		WHERE b.id = $1
		GROUP BY s.max_users`
	return r.usage(ctx, query, businessID, "user usage")
}

// BranchUsage devuelve (sucursales activas, max_branches del plan).
func (r *QuotaRepo) BranchUsage(ctx context.Context, businessID string) (repository.QuotaUsage, error) {
	const query = `
		SELECT COUNT(br.id), s.max_branches
		FROM businesses b
		JOIN subscriptions s ON s.id = b.subscription_id
		LEFT JOIN branches br ON br.business_id = b.id AND br.status = 'active'
		WHERE b.id = $1
		GROUP BY s.max_branches`
	return r.usage(ctx, query, businessID, "branch usage")
}

func (r *QuotaRepo) usage(ctx context.Context, query, businessID, op string) (repository.QuotaUsage, error) {
	var u repository.QuotaUsage
	err := r.q.QueryRow(ctx, query, businessID).Scan(&u.Current, &u.Max)
	if err != nil {
		if isNoRows(err) {
			// sin fila solo si el negocio (o su plan) no existe
			return repository.QuotaUsage{}, domain.ErrNotFound
		}
		return repository.QuotaUsage{}, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

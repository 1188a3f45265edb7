package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/licencias-api/internal/domain/entity"
	"github.com/jhoicas/licencias-api/internal/domain/repository"
)

var _ repository.SubscriptionRepository = (*SubscriptionRepo)(nil)

// SubscriptionRepo lectura del catálogo de planes sobre PostgreSQL.
type SubscriptionRepo struct {
	q Querier
}

// NewSubscriptionRepository construye el adaptador del catálogo de planes.
func NewSubscriptionRepository(q Querier) *SubscriptionRepo {
	return &SubscriptionRepo{q: q}
}

// GetByID obtiene un plan por ID.
func (r *SubscriptionRepo) GetByID(ctx context.Context, id string) (*entity.Subscription, error) {
	query := `
		SELECT id, name, duration_months, max_users, max_branches, features
		FROM subscriptions WHERE id = $1`
	var s entity.Subscription
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.DurationMonths, &s.MaxUsers, &s.MaxBranches, &s.Features,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return &s, nil
}

// List devuelve el catálogo completo ordenado por duración y nombre.
func (r *SubscriptionRepo) List(ctx context.Context) ([]*entity.Subscription, error) {
	query := `
		SELECT id, name, duration_months, max_users, max_branches, features
		FROM subscriptions ORDER BY duration_months ASC, name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Subscription
	for rows.Next() {
		var s entity.Subscription
		if err := rows.Scan(&s.ID, &s.Name, &s.DurationMonths, &s.MaxUsers, &s.MaxBranches, &s.Features); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Create inserta un plan (solo lo usa el seed del catálogo).
func (r *SubscriptionRepo) Create(ctx context.Context, s *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (id, name, duration_months, max_users, max_branches, features)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Name, s.DurationMonths, s.MaxUsers, s.MaxBranches, s.Features,
	)
	if err != nil {
		return fmt.Errorf("insert subscription: %w", err)
	}
	return nil
}

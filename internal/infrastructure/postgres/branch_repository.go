package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/licencias-api/internal/domain/entity"
	"github.com/jhoicas/licencias-api/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementación del puerto BranchRepository sobre PostgreSQL.
type BranchRepo struct {
	q Querier
}

// NewBranchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

// Create persiste una nueva sucursal.
func (r *BranchRepo) Create(ctx context.Context, br *entity.Branch) error {
	query := `
		INSERT INTO branches (id, business_id, name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		br.ID, br.BusinessID, br.Name, br.Status, br.CreatedAt, br.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert branch: %w", err)
	}
	return nil
}

// ListActiveByBusiness devuelve las sucursales activas del negocio, por nombre ASC.
func (r *BranchRepo) ListActiveByBusiness(ctx context.Context, businessID string) ([]*entity.Branch, error) {
	query := `
		SELECT id, business_id, name, status, created_at, updated_at
		FROM branches
		WHERE business_id = $1 AND status = 'active'
		ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()

	var list []*entity.Branch
	for rows.Next() {
		var br entity.Branch
		if err := rows.Scan(&br.ID, &br.BusinessID, &br.Name, &br.Status, &br.CreatedAt, &br.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, &br)
	}
	return list, rows.Err()
}

// CountActive cuenta las sucursales activas del negocio.
func (r *BranchRepo) CountActive(ctx context.Context, businessID string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM branches WHERE business_id = $1 AND status = 'active'`,
		businessID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count branches: %w", err)
	}
	return count, nil
}

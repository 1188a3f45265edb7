package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/licencias-api/internal/domain"
	"github.com/jhoicas/licencias-api/internal/domain/entity"
	"github.com/jhoicas/licencias-api/internal/domain/repository"
)

// Asegura que BusinessRepo implementa repository.BusinessRepository.
var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo implementación del puerto BusinessRepository sobre PostgreSQL.
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

const businessColumns = `id, name, owner_id, subscription_id, license_key, status,
	subscription_start_date, subscription_end_date, created_at, updated_at`

// Create persiste un nuevo negocio. Devuelve domain.ErrDuplicateLicenseKey si
// la clave de licencia choca con el UNIQUE de la tabla, para que el caso de
// uso regenere y reintente.
func (r *BusinessRepo) Create(ctx context.Context, b *entity.Business) error {
	query := `
		INSERT INTO businesses (id, name, owner_id, subscription_id, license_key, status,
			subscription_start_date, subscription_end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.Name, b.OwnerID, b.SubscriptionID, b.LicenseKey, b.Status,
		b.SubscriptionStart, b.SubscriptionEnd, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateLicenseKey
		}
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

// GetByID obtiene un negocio por ID.
func (r *BusinessRepo) GetByID(ctx context.Context, id string) (*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`
	return r.scanBusiness(ctx, query, id)
}

// GetForUpdate obtiene el negocio y bloquea su fila (SELECT FOR UPDATE) para
// serializar los chequeos de cupo dentro de la transacción en curso.
func (r *BusinessRepo) GetForUpdate(ctx context.Context, id string) (*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1 FOR UPDATE`
	return r.scanBusiness(ctx, query, id)
}

func (r *BusinessRepo) scanBusiness(ctx context.Context, query, id string) (*entity.Business, error) {
	var b entity.Business
	err := r.q.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Name, &b.OwnerID, &b.SubscriptionID, &b.LicenseKey, &b.Status,
		&b.SubscriptionStart, &b.SubscriptionEnd, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business: %w", err)
	}
	return &b, nil
}

// GetByLicenseKey obtiene el negocio por clave de licencia unido a su plan
// (nombre y features), que es la forma que necesita la validación de licencia.
func (r *BusinessRepo) GetByLicenseKey(ctx context.Context, licenseKey string) (*repository.LicenseRecord, error) {
	query := `
		SELECT b.id, b.name, b.owner_id, b.subscription_id, b.license_key, b.status,
		       b.subscription_start_date, b.subscription_end_date, b.created_at, b.updated_at,
		       s.name, s.features
		FROM businesses b
		JOIN subscriptions s ON s.id = b.subscription_id
		WHERE b.license_key = $1`
	var rec repository.LicenseRecord
	b := &rec.Business
	err := r.q.QueryRow(ctx, query, licenseKey).Scan(
		&b.ID, &b.Name, &b.OwnerID, &b.SubscriptionID, &b.LicenseKey, &b.Status,
		&b.SubscriptionStart, &b.SubscriptionEnd, &b.CreatedAt, &b.UpdatedAt,
		&rec.PlanName, &rec.Features,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business by license key: %w", err)
	}
	return &rec, nil
}

// GetSubscriptionDetails obtiene el negocio unido a su plan completo.
func (r *BusinessRepo) GetSubscriptionDetails(ctx context.Context, id string) (*repository.SubscriptionDetails, error) {
	query := `
		SELECT b.id, b.name, b.owner_id, b.subscription_id, b.license_key, b.status,
		       b.subscription_start_date, b.subscription_end_date, b.created_at, b.updated_at,
		       s.id, s.name, s.duration_months, s.max_users, s.max_branches, s.features
		FROM businesses b
		JOIN subscriptions s ON s.id = b.subscription_id
		WHERE b.id = $1`
	var d repository.SubscriptionDetails
	b, p := &d.Business, &d.Plan
	err := r.q.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Name, &b.OwnerID, &b.SubscriptionID, &b.LicenseKey, &b.Status,
		&b.SubscriptionStart, &b.SubscriptionEnd, &b.CreatedAt, &b.UpdatedAt,
		&p.ID, &p.Name, &p.DurationMonths, &p.MaxUsers, &p.MaxBranches, &p.Features,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscription details: %w", err)
	}
	return &d, nil
}

// UpdateStatus persiste una transición de estado del negocio.
func (r *BusinessRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE businesses SET status = $2, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update business status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateSubscription cambia el plan, recalcula el período y fuerza status
// active (la vía de reactivación de un negocio suspendido).
func (r *BusinessRepo) UpdateSubscription(ctx context.Context, id, subscriptionID string, start, end time.Time) error {
	query := `
		UPDATE businesses
		SET subscription_id = $2, subscription_start_date = $3, subscription_end_date = $4,
		    status = 'active', updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, id, subscriptionID, start, end)
	if err != nil {
		return fmt.Errorf("update business subscription: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

package usecase_test

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/licencias-api/internal/domain"
	"github.com/jhoicas/licencias-api/internal/domain/entity"
	"github.com/jhoicas/licencias-api/internal/domain/repository"
)

// fakeStore es una base en memoria compartida por los repos falsos. Permite
// simular colisiones de clave de licencia y fallos de escritura para probar
// el reintento acotado y el rollback transaccional.
type fakeStore struct {
	businesses map[string]*entity.Business
	branches   map[string]*entity.Branch
	plans      map[string]*entity.Subscription
	userCount  map[string]int

	// licencias que ya "existen" y provocan ErrDuplicateLicenseKey
	takenKeys map[string]bool
	// cuántas inserciones de negocio fallan por clave duplicada antes de pasar
	forcedKeyCollisions int
	// siguiente Create de sucursal falla con este error
	branchCreateErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		businesses: make(map[string]*entity.Business),
		branches:   make(map[string]*entity.Branch),
		plans:      make(map[string]*entity.Subscription),
		userCount:  make(map[string]int),
		takenKeys:  make(map[string]bool),
	}
}

func (s *fakeStore) addPlan(p *entity.Subscription) { s.plans[p.ID] = p }

func (s *fakeStore) activeBranches(businessID string) []*entity.Branch {
	var out []*entity.Branch
	for _, br := range s.branches {
		if br.BusinessID == businessID && br.Status == entity.BranchStatusActive {
			out = append(out, br)
		}
	}
	return out
}

// clone copia superficial de los mapas para simular el aislamiento de una tx.
func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for k, v := range s.businesses {
		b := *v
		c.businesses[k] = &b
	}
	for k, v := range s.branches {
		br := *v
		c.branches[k] = &br
	}
	c.plans = s.plans
	c.userCount = s.userCount
	c.takenKeys = s.takenKeys
	c.forcedKeyCollisions = s.forcedKeyCollisions
	c.branchCreateErr = s.branchCreateErr
	return c
}

// ── BusinessRepository falso ─────────────────────────────────────────────────

type fakeBusinessRepo struct{ s *fakeStore }

var _ repository.BusinessRepository = (*fakeBusinessRepo)(nil)

func (r *fakeBusinessRepo) Create(_ context.Context, b *entity.Business) error {
	if r.s.forcedKeyCollisions > 0 {
		r.s.forcedKeyCollisions--
		return domain.ErrDuplicateLicenseKey
	}
	if r.s.takenKeys[b.LicenseKey] {
		return domain.ErrDuplicateLicenseKey
	}
	cp := *b
	r.s.businesses[b.ID] = &cp
	r.s.takenKeys[b.LicenseKey] = true
	return nil
}

func (r *fakeBusinessRepo) GetByID(_ context.Context, id string) (*entity.Business, error) {
	b, ok := r.s.businesses[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBusinessRepo) GetForUpdate(ctx context.Context, id string) (*entity.Business, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeBusinessRepo) GetByLicenseKey(_ context.Context, key string) (*repository.LicenseRecord, error) {
	for _, b := range r.s.businesses {
		if b.LicenseKey == key {
			plan := r.s.plans[b.SubscriptionID]
			cp := *b
			return &repository.LicenseRecord{
				Business: cp,
				PlanName: plan.Name,
				Features: plan.Features,
			}, nil
		}
	}
	return nil, nil
}

func (r *fakeBusinessRepo) GetSubscriptionDetails(_ context.Context, id string) (*repository.SubscriptionDetails, error) {
	b, ok := r.s.businesses[id]
	if !ok {
		return nil, nil
	}
	plan, ok := r.s.plans[b.SubscriptionID]
	if !ok {
		return nil, nil
	}
	return &repository.SubscriptionDetails{Business: *b, Plan: *plan}, nil
}

func (r *fakeBusinessRepo) UpdateStatus(_ context.Context, id, status string) error {
	b, ok := r.s.businesses[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.Status = status
	b.UpdatedAt = time.Now()
	return nil
}

func (r *fakeBusinessRepo) UpdateSubscription(_ context.Context, id, subscriptionID string, start, end time.Time) error {
	b, ok := r.s.businesses[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.SubscriptionID = subscriptionID
	b.SubscriptionStart = start
	b.SubscriptionEnd = end
	b.Status = entity.StatusActive
	b.UpdatedAt = time.Now()
	return nil
}

// ── BranchRepository falso ───────────────────────────────────────────────────

type fakeBranchRepo struct{ s *fakeStore }

var _ repository.BranchRepository = (*fakeBranchRepo)(nil)

func (r *fakeBranchRepo) Create(_ context.Context, br *entity.Branch) error {
	if r.s.branchCreateErr != nil {
		err := r.s.branchCreateErr
		r.s.branchCreateErr = nil
		return err
	}
	cp := *br
	r.s.branches[br.ID] = &cp
	return nil
}

func (r *fakeBranchRepo) ListActiveByBusiness(_ context.Context, businessID string) ([]*entity.Branch, error) {
	return r.s.activeBranches(businessID), nil
}

func (r *fakeBranchRepo) CountActive(_ context.Context, businessID string) (int, error) {
	return len(r.s.activeBranches(businessID)), nil
}

// ── SubscriptionRepository falso ─────────────────────────────────────────────

type fakePlanRepo struct{ s *fakeStore }

var _ repository.SubscriptionRepository = (*fakePlanRepo)(nil)

func (r *fakePlanRepo) GetByID(_ context.Context, id string) (*entity.Subscription, error) {
	p, ok := r.s.plans[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *fakePlanRepo) List(_ context.Context) ([]*entity.Subscription, error) {
	var out []*entity.Subscription
	for _, p := range r.s.plans {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePlanRepo) Create(_ context.Context, p *entity.Subscription) error {
	r.s.plans[p.ID] = p
	return nil
}

// ── QuotaRepository falso ────────────────────────────────────────────────────

type fakeQuotaRepo struct{ s *fakeStore }

var _ repository.QuotaRepository = (*fakeQuotaRepo)(nil)

func (r *fakeQuotaRepo) usage(businessID string, current func(*entity.Subscription) int, max func(*entity.Subscription) int) (repository.QuotaUsage, error) {
	b, ok := r.s.businesses[businessID]
	if !ok {
		return repository.QuotaUsage{}, domain.ErrNotFound
	}
	plan := r.s.plans[b.SubscriptionID]
	return repository.QuotaUsage{Current: current(plan), Max: max(plan)}, nil
}

func (r *fakeQuotaRepo) UserUsage(_ context.Context, businessID string) (repository.QuotaUsage, error) {
	return r.usage(businessID,
		func(*entity.Subscription) int { return r.s.userCount[businessID] },
		func(p *entity.Subscription) int { return p.MaxUsers })
}

func (r *fakeQuotaRepo) BranchUsage(_ context.Context, businessID string) (repository.QuotaUsage, error) {
	return r.usage(businessID,
		func(*entity.Subscription) int { return len(r.s.activeBranches(businessID)) },
		func(p *entity.Subscription) int { return p.MaxBranches })
}

// ── TxRunner falso ───────────────────────────────────────────────────────────

// fakeTxRunner ejecuta fn sobre un clon del store y solo vuelca los cambios
// si fn termina sin error: mismo contrato commit-or-rollback que el real.
type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.BusinessRepository, repository.BranchRepository) error) error {
	snapshot := t.s.clone()
	if err := fn(&fakeBusinessRepo{s: snapshot}, &fakeBranchRepo{s: snapshot}); err != nil {
		// rollback: el store original queda intacto, pero los contadores de
		// fallo inyectado sí avanzan para no repetir el fallo eternamente
		t.s.forcedKeyCollisions = snapshot.forcedKeyCollisions
		t.s.branchCreateErr = snapshot.branchCreateErr
		return err
	}
	*t.s = *snapshot
	return nil
}

var errInfra = errors.New("fallo de infraestructura simulado")

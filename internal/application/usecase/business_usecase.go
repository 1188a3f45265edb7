package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/licencias-api/internal/application/dto"
	"github.com/jhoicas/licencias-api/internal/domain"
	"github.com/jhoicas/licencias-api/internal/domain/entity"
	"github.com/jhoicas/licencias-api/internal/domain/license"
	"github.com/jhoicas/licencias-api/internal/domain/repository"
	"github.com/jhoicas/licencias-api/internal/domain/subscription"
)

// BusinessUseCase orquesta el ciclo de vida del negocio: alta con sucursal
// principal, renovación/cambio de plan y apertura de sucursales adicionales.
type BusinessUseCase struct {
	tx           TxRunner
	businessRepo repository.BusinessRepository
	branchRepo   repository.BranchRepository
	planRepo     repository.SubscriptionRepository
	keyAttempts  int
}

// NewBusinessUseCase construye el caso de uso. keyAttempts acota los
// reintentos de generación de clave de licencia ante colisión (<=0 usa 5).
func NewBusinessUseCase(
	tx TxRunner,
	businessRepo repository.BusinessRepository,
	branchRepo repository.BranchRepository,
	planRepo repository.SubscriptionRepository,
	keyAttempts int,
) *BusinessUseCase {
	if keyAttempts <= 0 {
		keyAttempts = 5
	}
	return &BusinessUseCase{
		tx:           tx,
		businessRepo: businessRepo,
		branchRepo:   branchRepo,
		planRepo:     planRepo,
		keyAttempts:  keyAttempts,
	}
}

// Create da de alta un negocio bajo un plan: valida campos, resuelve el plan,
// calcula el período de suscripción (meses calendario desde hoy), genera la
// clave de licencia y persiste negocio + sucursal principal en UNA transacción.
// Ante colisión de clave (UNIQUE) reintenta con una clave nueva, acotado.
func (uc *BusinessUseCase) Create(ctx context.Context, in dto.CreateBusinessRequest) (*dto.BusinessResponse, error) {
	switch {
	case in.Name == "":
		return nil, &domain.ValidationError{Field: "name"}
	case in.OwnerID == "":
		return nil, &domain.ValidationError{Field: "owner_id"}
	case in.SubscriptionID == "":
		return nil, &domain.ValidationError{Field: "subscription_id"}
	}

	plan, err := uc.planRepo.GetByID(ctx, in.SubscriptionID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrInvalidSubscription
	}

	now := time.Now()
	start := now
	end := subscription.PeriodEnd(start, plan.DurationMonths)

	for attempt := 0; attempt < uc.keyAttempts; attempt++ {
		key, err := license.NewKey()
		if err != nil {
			return nil, err
		}
		business := &entity.Business{
			ID:                uuid.New().String(),
			Name:              in.Name,
			OwnerID:           in.OwnerID,
			SubscriptionID:    plan.ID,
			LicenseKey:        key,
			Status:            entity.StatusActive,
			SubscriptionStart: start,
			SubscriptionEnd:   end,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		err = uc.tx.Run(ctx, func(businessRepo repository.BusinessRepository, branchRepo repository.BranchRepository) error {
			if err := businessRepo.Create(ctx, business); err != nil {
				return err
			}
			return branchRepo.Create(ctx, principalBranch(business, now))
		})
		if errors.Is(err, domain.ErrDuplicateLicenseKey) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return toBusinessResponse(business), nil
	}
	return nil, domain.ErrLicenseKeyExhausted
}

// principalBranch arma la sucursal por defecto del alta.
func principalBranch(b *entity.Business, now time.Time) *entity.Branch {
	return &entity.Branch{
		ID:         uuid.New().String(),
		BusinessID: b.ID,
		Name:       fmt.Sprintf("Sucursal Principal - %s", b.Name),
		Status:     entity.BranchStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// UpdateSubscription renueva o cambia el plan: recalcula el período desde hoy
// y fuerza status active sin importar el estado previo. Es la vía prevista
// para reactivar un negocio suspendido.
func (uc *BusinessUseCase) UpdateSubscription(ctx context.Context, businessID string, in dto.UpdateSubscriptionRequest) error {
	if in.SubscriptionID == "" {
		return &domain.ValidationError{Field: "subscription_id"}
	}
	plan, err := uc.planRepo.GetByID(ctx, in.SubscriptionID)
	if err != nil {
		return err
	}
	if plan == nil {
		return domain.ErrInvalidSubscription
	}
	start := time.Now()
	end := subscription.PeriodEnd(start, plan.DurationMonths)
	return uc.businessRepo.UpdateSubscription(ctx, businessID, plan.ID, start, end)
}

// GetBranches devuelve las sucursales activas del negocio, por nombre ASC.
func (uc *BusinessUseCase) GetBranches(ctx context.Context, businessID string) ([]dto.BranchResponse, error) {
	branches, err := uc.branchRepo.ListActiveByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BranchResponse, 0, len(branches))
	for _, br := range branches {
		out = append(out, dto.BranchResponse{
			ID:         br.ID,
			BusinessID: br.BusinessID,
			Name:       br.Name,
			Status:     br.Status,
			CreatedAt:  br.CreatedAt,
		})
	}
	return out, nil
}

// GetSubscriptionDetails devuelve el negocio unido a su plan.
func (uc *BusinessUseCase) GetSubscriptionDetails(ctx context.Context, businessID string) (*dto.SubscriptionDetailsResponse, error) {
	details, err := uc.businessRepo.GetSubscriptionDetails(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.SubscriptionDetailsResponse{
		Business: *toBusinessResponse(&details.Business),
		Plan:     toSubscriptionResponse(&details.Plan),
	}, nil
}

// CreateBranch abre una sucursal adicional con el cupo del plan verificado
// bajo bloqueo de la fila del negocio (SELECT FOR UPDATE), de modo que dos
// altas concurrentes no puedan exceder max_branches.
func (uc *BusinessUseCase) CreateBranch(ctx context.Context, businessID string, in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	if in.Name == "" {
		return nil, &domain.ValidationError{Field: "name"}
	}
	now := time.Now()
	branch := &entity.Branch{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Name:       in.Name,
		Status:     entity.BranchStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err := uc.tx.Run(ctx, func(businessRepo repository.BusinessRepository, branchRepo repository.BranchRepository) error {
		business, err := businessRepo.GetForUpdate(ctx, businessID)
		if err != nil {
			return err
		}
		if business == nil {
			return domain.ErrNotFound
		}
		plan, err := uc.planRepo.GetByID(ctx, business.SubscriptionID)
		if err != nil {
			return err
		}
		if plan == nil {
			return domain.ErrInvalidSubscription
		}
		count, err := branchRepo.CountActive(ctx, businessID)
		if err != nil {
			return err
		}
		if count >= plan.MaxBranches {
			return &domain.LimitError{Resource: domain.ResourceBranches, Current: count, Max: plan.MaxBranches}
		}
		return branchRepo.Create(ctx, branch)
	})
	if err != nil {
		return nil, err
	}
	return &dto.BranchResponse{
		ID:         branch.ID,
		BusinessID: branch.BusinessID,
		Name:       branch.Name,
		Status:     branch.Status,
		CreatedAt:  branch.CreatedAt,
	}, nil
}

func toBusinessResponse(b *entity.Business) *dto.BusinessResponse {
	if b == nil {
		return nil
	}
	return &dto.BusinessResponse{
		ID:                b.ID,
		Name:              b.Name,
		OwnerID:           b.OwnerID,
		SubscriptionID:    b.SubscriptionID,
		LicenseKey:        b.LicenseKey,
		Status:            b.Status,
		SubscriptionStart: b.SubscriptionStart,
		SubscriptionEnd:   b.SubscriptionEnd,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func toSubscriptionResponse(s *entity.Subscription) dto.SubscriptionResponse {
	return dto.SubscriptionResponse{
		ID:             s.ID,
		Name:           s.Name,
		DurationMonths: s.DurationMonths,
		MaxUsers:       s.MaxUsers,
		MaxBranches:    s.MaxBranches,
		Features:       s.Features,
	}
}

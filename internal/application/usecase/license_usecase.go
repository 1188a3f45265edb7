package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/licencias-api/internal/application/dto"
	"github.com/jhoicas/licencias-api/internal/domain"
	"github.com/jhoicas/licencias-api/internal/domain/entity"
	"github.com/jhoicas/licencias-api/internal/domain/repository"
)

// LicenseUseCase autentica la clave de licencia de un negocio contra su
// estado y su suscripción vigente. Es el punto de control de uso de la
// aplicación: cada validación es también el momento en que se detecta y
// persiste el vencimiento de la suscripción.
type LicenseUseCase struct {
	businessRepo repository.BusinessRepository
}

// NewLicenseUseCase construye el caso de uso con el puerto de persistencia.
func NewLicenseUseCase(businessRepo repository.BusinessRepository) *LicenseUseCase {
	return &LicenseUseCase{businessRepo: businessRepo}
}

// Validate autentica una clave de licencia. El orden de los chequeos importa:
//  1. la clave debe corresponder a un negocio (domain.ErrInvalidLicense);
//  2. el negocio debe estar active (domain.NotActiveError con el estado
//     actual) — un negocio ya suspendido reporta "no activo", no expiración;
//  3. la suscripción no debe estar vencida: si subscription_end_date ya pasó,
//     se persiste la transición a suspended y se devuelve
//     domain.ErrSubscriptionExpired.
//
// Devuelve el registro del negocio unido a su plan si todo pasa.
func (uc *LicenseUseCase) Validate(ctx context.Context, licenseKey string) (*repository.LicenseRecord, error) {
	if licenseKey == "" {
		return nil, &domain.ValidationError{Field: "license_key"}
	}
	rec, err := uc.businessRepo.GetByLicenseKey(ctx, licenseKey)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrInvalidLicense
	}
	if rec.Business.Status != entity.StatusActive {
		return nil, &domain.NotActiveError{Status: rec.Business.Status}
	}
	if rec.Business.SubscriptionEnd.Before(time.Now()) {
		if err := uc.businessRepo.UpdateStatus(ctx, rec.Business.ID, entity.StatusSuspended); err != nil {
			return nil, err
		}
		return nil, domain.ErrSubscriptionExpired
	}
	return rec, nil
}

// ToSession arma la respuesta de sesión a partir de un registro validado y
// el token ya firmado por la capa HTTP.
func ToSession(rec *repository.LicenseRecord, token string) *dto.LicenseSessionResponse {
	return &dto.LicenseSessionResponse{
		Token:    token,
		Business: *toBusinessResponse(&rec.Business),
		PlanName: rec.PlanName,
		Features: rec.Features,
	}
}

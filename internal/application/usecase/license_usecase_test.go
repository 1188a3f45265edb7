package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/licencias-api/internal/application/usecase"
	"github.com/jhoicas/licencias-api/internal/domain"
	"github.com/jhoicas/licencias-api/internal/domain/entity"
)

// seedBusiness inserta un negocio directo en el store con el plan básico.
func seedBusiness(s *fakeStore, id, key, status string, end time.Time) *entity.Business {
	if _, ok := s.plans["plan-basico"]; !ok {
		s.addPlan(planMensual())
	}
	b := &entity.Business{
		ID:                id,
		Name:              "Negocio " + id,
		OwnerID:           "o",
		SubscriptionID:    "plan-basico",
		LicenseKey:        key,
		Status:            status,
		SubscriptionStart: end.AddDate(0, -1, 0),
		SubscriptionEnd:   end,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	s.businesses[id] = b
	s.takenKeys[key] = true
	return b
}

func TestValidate_LicenciaValida(t *testing.T) {
	s := newFakeStore()
	seedBusiness(s, "b1", "AAAA-BBBB-CCCC-DDDD", entity.StatusActive, time.Now().AddDate(0, 1, 0))
	uc := usecase.NewLicenseUseCase(&fakeBusinessRepo{s: s})

	rec, err := uc.Validate(context.Background(), "AAAA-BBBB-CCCC-DDDD")
	require.NoError(t, err)
	assert.Equal(t, "b1", rec.Business.ID)
	assert.Equal(t, "Básico", rec.PlanName)
	assert.Equal(t, []string{"pos", "inventory"}, rec.Features)
}

func TestValidate_ClaveDesconocida(t *testing.T) {
	s := newFakeStore()
	seedBusiness(s, "b1", "AAAA-BBBB-CCCC-DDDD", entity.StatusActive, time.Now().AddDate(0, 1, 0))
	uc := usecase.NewLicenseUseCase(&fakeBusinessRepo{s: s})

	_, err := uc.Validate(context.Background(), "ZZZZ-ZZZZ-ZZZZ-ZZZZ")
	assert.ErrorIs(t, err, domain.ErrInvalidLicense)
}

func TestValidate_ClaveVacia(t *testing.T) {
	uc := usecase.NewLicenseUseCase(&fakeBusinessRepo{s: newFakeStore()})
	_, err := uc.Validate(context.Background(), "")
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "license_key", vErr.Field)
}

// El chequeo de estado precede al de expiración: un negocio suspendido
// reporta "no activo" aun con la suscripción vigente, y uno suspendido con
// suscripción vencida NO vuelve a disparar la lógica de expiración.
func TestValidate_SuspendidoPrecedeAExpiracion(t *testing.T) {
	s := newFakeStore()
	// suspendido con suscripción futura
	seedBusiness(s, "b1", "AAAA-0000-0000-0001", entity.StatusSuspended, time.Now().AddDate(0, 2, 0))
	// cancelado con suscripción vencida
	seedBusiness(s, "b2", "AAAA-0000-0000-0002", entity.StatusCancelled, time.Now().AddDate(0, -1, 0))
	uc := usecase.NewLicenseUseCase(&fakeBusinessRepo{s: s})

	for _, tc := range []struct {
		key    string
		status string
	}{
		{"AAAA-0000-0000-0001", entity.StatusSuspended},
		{"AAAA-0000-0000-0002", entity.StatusCancelled},
	} {
		_, err := uc.Validate(context.Background(), tc.key)
		var naErr *domain.NotActiveError
		require.ErrorAs(t, err, &naErr, "clave %s", tc.key)
		assert.Equal(t, tc.status, naErr.Status, "el error debe conservar el estado actual")
	}
	// el estado del cancelado no fue tocado por la rama de expiración
	assert.Equal(t, entity.StatusCancelled, s.businesses["b2"].Status)
}

// Suscripción vencida en negocio activo: la validación es una lectura con
// efecto — persiste la transición a suspended además de devolver el error.
func TestValidate_ExpiracionSuspendeYPersiste(t *testing.T) {
	s := newFakeStore()
	seedBusiness(s, "b1", "AAAA-BBBB-CCCC-DDDD", entity.StatusActive, time.Now().AddDate(0, 0, -1))
	uc := usecase.NewLicenseUseCase(&fakeBusinessRepo{s: s})

	_, err := uc.Validate(context.Background(), "AAAA-BBBB-CCCC-DDDD")
	assert.ErrorIs(t, err, domain.ErrSubscriptionExpired)
	assert.Equal(t, entity.StatusSuspended, s.businesses["b1"].Status,
		"la transición a suspended debe quedar persistida")

	// lecturas posteriores ven el negocio como no activo
	_, err = uc.Validate(context.Background(), "AAAA-BBBB-CCCC-DDDD")
	var naErr *domain.NotActiveError
	require.ErrorAs(t, err, &naErr)
	assert.Equal(t, entity.StatusSuspended, naErr.Status)
}

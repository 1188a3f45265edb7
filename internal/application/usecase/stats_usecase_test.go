package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/licencias-api/internal/application/usecase"
	"github.com/jhoicas/licencias-api/internal/domain/repository"
)

// fakeStatsRepo devuelve agregados fijos, o un error en la consulta indicada.
type fakeStatsRepo struct {
	sales     decimal.Decimal
	products  int
	lowStock  int
	customers int
	failOn    string // "" | "sales" | "products" | "lowstock" | "customers"
}

var _ repository.StatsRepository = (*fakeStatsRepo)(nil)

func (r *fakeStatsRepo) TodaySales(context.Context, string) (decimal.Decimal, error) {
	if r.failOn == "sales" {
		return decimal.Zero, errInfra
	}
	return r.sales, nil
}

func (r *fakeStatsRepo) ActiveProducts(context.Context, string) (int, error) {
	if r.failOn == "products" {
		return 0, errInfra
	}
	return r.products, nil
}

func (r *fakeStatsRepo) LowStockProducts(context.Context, string) (int, error) {
	if r.failOn == "lowstock" {
		return 0, errInfra
	}
	return r.lowStock, nil
}

func (r *fakeStatsRepo) TotalCustomers(context.Context, string) (int, error) {
	if r.failOn == "customers" {
		return 0, errInfra
	}
	return r.customers, nil
}

// Un negocio sin actividad obtiene todos los campos en cero, nunca un error.
func TestGetBusinessStats_NegocioSinActividad(t *testing.T) {
	uc := usecase.NewStatsUseCase(&fakeStatsRepo{sales: decimal.Zero})

	out, err := uc.GetBusinessStats(context.Background(), "b1")
	require.NoError(t, err)
	assert.True(t, out.TodaySales.IsZero())
	assert.Zero(t, out.TotalProducts)
	assert.Zero(t, out.LowStockCount)
	assert.Zero(t, out.TotalCustomers)
}

func TestGetBusinessStats_ComponeLosCuatroAgregados(t *testing.T) {
	uc := usecase.NewStatsUseCase(&fakeStatsRepo{
		sales:     decimal.NewFromFloat(125_500.50),
		products:  42,
		lowStock:  3,
		customers: 180,
	})

	out, err := uc.GetBusinessStats(context.Background(), "b1")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(125_500.50).Equal(out.TodaySales))
	assert.Equal(t, 42, out.TotalProducts)
	assert.Equal(t, 3, out.LowStockCount)
	assert.Equal(t, 180, out.TotalCustomers)
}

// Un fallo del gateway de persistencia se propaga siempre, nunca se silencia.
func TestGetBusinessStats_PropagaFallosDePersistencia(t *testing.T) {
	for _, failOn := range []string{"sales", "products", "lowstock", "customers"} {
		t.Run(failOn, func(t *testing.T) {
			uc := usecase.NewStatsUseCase(&fakeStatsRepo{failOn: failOn})
			_, err := uc.GetBusinessStats(context.Background(), "b1")
			assert.ErrorIs(t, err, errInfra)
		})
	}
}

package subscription_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/licencias-api/internal/domain/subscription"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// La suma de meses es calendario, no de 30 días fijos: el día se ajusta al
// último del mes destino cuando no existe (nunca se desborda al mes siguiente).
func TestPeriodEnd_MesesCalendario(t *testing.T) {
	cases := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"un mes simple", date(2024, time.March, 15), 1, date(2024, time.April, 15)},
		{"31 ene + 1 mes en bisiesto", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"31 ene + 1 mes en no bisiesto", date(2023, time.January, 31), 1, date(2023, time.February, 28)},
		{"31 mar + 1 mes", date(2024, time.March, 31), 1, date(2024, time.April, 30)},
		{"30 nov + 3 meses", date(2024, time.November, 30), 3, date(2025, time.February, 28)},
		{"cruce de año", date(2024, time.December, 15), 1, date(2025, time.January, 15)},
		{"doce meses", date(2024, time.February, 29), 12, date(2025, time.February, 28)},
		{"cero meses", date(2024, time.June, 10), 0, date(2024, time.June, 10)},
		{"seis meses", date(2024, time.August, 31), 6, date(2025, time.February, 28)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := subscription.PeriodEnd(tc.start, tc.months)
			assert.True(t, tc.want.Equal(got), "esperado %s, obtenido %s", tc.want, got)
		})
	}
}

// El fin de período nunca puede ser anterior al inicio con duraciones válidas.
func TestPeriodEnd_NoRetrocede(t *testing.T) {
	start := date(2024, time.January, 31)
	for months := 1; months <= 24; months++ {
		end := subscription.PeriodEnd(start, months)
		assert.False(t, end.Before(start), "fin %s anterior al inicio %s (d=%d)", end, start, months)
	}
}

// Se conservan hora y zona del instante de inicio.
func TestPeriodEnd_ConservaHoraYZona(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	start := time.Date(2024, time.May, 31, 13, 45, 30, 0, loc)
	end := subscription.PeriodEnd(start, 1)
	assert.Equal(t, 13, end.Hour())
	assert.Equal(t, 45, end.Minute())
	assert.Equal(t, loc.String(), end.Location().String())
	assert.Equal(t, 30, end.Day(), "junio tiene 30 días")
}

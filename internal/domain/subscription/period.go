// Package subscription contiene la aritmética de períodos de suscripción.
package subscription

import "time"

// PeriodEnd suma months meses calendario a start, ajustando al último día del
// mes cuando el día de inicio no existe en el mes destino (31 ene + 1 mes =
// 29 feb en año bisiesto, nunca 2 mar). time.AddDate no sirve aquí porque
// normaliza el desborde hacia el mes siguiente.
func PeriodEnd(start time.Time, months int) time.Time {
	firstOfTarget := time.Date(start.Year(), start.Month()+time.Month(months), 1,
		start.Hour(), start.Minute(), start.Second(), start.Nanosecond(), start.Location())
	day := start.Day()
	if last := lastDay(firstOfTarget); day > last {
		day = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		start.Hour(), start.Minute(), start.Second(), start.Nanosecond(), start.Location())
}

// lastDay devuelve el último día del mes de t.
func lastDay(t time.Time) int {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).
		AddDate(0, 1, -1).Day()
}

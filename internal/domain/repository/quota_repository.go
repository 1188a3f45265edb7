package repository

import "context"

// QuotaUsage es el par (uso actual, máximo del plan) de una clase de recurso.
// Derivado, nunca persistido.
type QuotaUsage struct {
	Current int
	Max     int
}

// QuotaRepository consulta uso vs. cupo del plan en una sola pasada.
// Las implementaciones devuelven domain.ErrNotFound si el negocio no existe;
// con el negocio existente siempre hay fila (LEFT JOIN), de modo que cero
// uso se reporta como Current=0 y no como ausencia de grupo.
type QuotaRepository interface {
	UserUsage(ctx context.Context, businessID string) (QuotaUsage, error)
	BranchUsage(ctx context.Context, businessID string) (QuotaUsage, error)
}

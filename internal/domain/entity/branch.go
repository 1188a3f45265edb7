package entity

import "time"

// Estados válidos para Branch.
const (
	BranchStatusActive   = "active"
	BranchStatusInactive = "inactive"
)

// Branch representa una sucursal de un negocio. Todo negocio tiene al menos
// una sucursal desde su creación (la "Sucursal Principal").
type Branch struct {
	ID         string
	BusinessID string
	Name       string
	Status     string // active, inactive
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

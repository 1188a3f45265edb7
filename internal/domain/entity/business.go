package entity

import "time"

// Estados válidos para Business.
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
	StatusCancelled = "cancelled"
)

// Business representa un negocio/tenant de la plataforma POS. Cada negocio
// tiene una clave de licencia única e inmutable que autentica su derecho de
// uso de la aplicación, y una suscripción vigente que define sus cupos.
type Business struct {
	ID                string
	Name              string
	OwnerID           string
	SubscriptionID    string
	LicenseKey        string // única, formato XXXX-XXXX-XXXX-XXXX
	Status            string // active, suspended, cancelled
	SubscriptionStart time.Time
	SubscriptionEnd   time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

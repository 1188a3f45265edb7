package dto

import "time"

// CreateBusinessRequest entrada para dar de alta un negocio.
type CreateBusinessRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=200"`
	OwnerID        string `json:"owner_id" validate:"required"`
	SubscriptionID string `json:"subscription_id" validate:"required"`
}

// UpdateSubscriptionRequest entrada para renovar o cambiar el plan.
type UpdateSubscriptionRequest struct {
	SubscriptionID string `json:"subscription_id" validate:"required"`
}

// CreateBranchRequest entrada para abrir una sucursal adicional.
type CreateBranchRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// BusinessResponse salida de un negocio.
type BusinessResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	OwnerID           string    `json:"owner_id"`
	SubscriptionID    string    `json:"subscription_id"`
	LicenseKey        string    `json:"license_key"`
	Status            string    `json:"status"`
	SubscriptionStart time.Time `json:"subscription_start_date"`
	SubscriptionEnd   time.Time `json:"subscription_end_date"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// BranchResponse salida de una sucursal.
type BranchResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// SubscriptionDetailsResponse negocio unido a su plan completo.
type SubscriptionDetailsResponse struct {
	Business BusinessResponse     `json:"business"`
	Plan     SubscriptionResponse `json:"plan"`
}

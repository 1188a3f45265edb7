package dto

// ValidateLicenseRequest entrada de validación de licencia.
type ValidateLicenseRequest struct {
	LicenseKey string `json:"license_key" validate:"required"`
}

// LicenseSessionResponse resultado de una validación exitosa: el negocio, el
// plan vigente y un token de sesión firmado que el POS presenta en las
// llamadas siguientes.
type LicenseSessionResponse struct {
	Token    string           `json:"token"`
	Business BusinessResponse `json:"business"`
	PlanName string           `json:"plan_name"`
	Features []string         `json:"features"`
}

package dto

// QuotaCheckResponse resultado de un chequeo de cupo. Allowed=true significa
// que aún cabe un recurso más bajo el plan vigente.
type QuotaCheckResponse struct {
	Resource string `json:"resource"` // users | branches
	Current  int    `json:"current"`
	Max      int    `json:"max"`
	Allowed  bool   `json:"allowed"`
}

package dto

// SubscriptionResponse salida de un plan del catálogo.
type SubscriptionResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	DurationMonths int      `json:"duration_months"`
	MaxUsers       int      `json:"max_users"`
	MaxBranches    int      `json:"max_branches"`
	Features       []string `json:"features"`
}

// SubscriptionListResponse catálogo de planes.
type SubscriptionListResponse struct {
	Items []SubscriptionResponse `json:"items"`
}

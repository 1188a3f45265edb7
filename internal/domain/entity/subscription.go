package entity

// Subscription representa un plan de suscripción contratable. Datos de
// referencia inmutables: el core solo los lee.
type Subscription struct {
	ID             string
	Name           string
	DurationMonths int
	MaxUsers       int
	MaxBranches    int
	Features       []string // capacidades habilitadas por el plan
}

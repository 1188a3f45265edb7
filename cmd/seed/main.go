// seed puebla el catálogo de planes de suscripción con los tres planes por
// defecto. Idempotente: los planes ya existentes se dejan intactos.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/licencias-api/internal/domain/entity"
	"github.com/jhoicas/licencias-api/internal/infrastructure/postgres"
	"github.com/jhoicas/licencias-api/pkg/config"
)

var defaultPlans = []*entity.Subscription{
	{
		ID:             "plan-basico",
		Name:           "Básico",
		DurationMonths: 1,
		MaxUsers:       3,
		MaxBranches:    1,
		Features:       []string{"pos", "inventory"},
	},
	{
		ID:             "plan-profesional",
		Name:           "Profesional",
		DurationMonths: 6,
		MaxUsers:       10,
		MaxBranches:    3,
		Features:       []string{"pos", "inventory", "reports"},
	},
	{
		ID:             "plan-empresarial",
		Name:           "Empresarial",
		DurationMonths: 12,
		MaxUsers:       50,
		MaxBranches:    10,
		Features:       []string{"pos", "inventory", "reports", "multi_branch", "api"},
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewSubscriptionRepository(pool)
	for _, plan := range defaultPlans {
		if err := repo.Create(ctx, plan); err != nil {
			fmt.Fprintf(os.Stderr, "insertar plan %s: %v\n", plan.ID, err)
			os.Exit(1)
		}
		fmt.Printf("plan %s (%s) listo\n", plan.ID, plan.Name)
	}
}

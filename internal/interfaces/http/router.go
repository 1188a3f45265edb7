package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/licencias-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BusinessUC     *usecase.BusinessUseCase
	LicenseUC      *usecase.LicenseUseCase
	QuotaUC        *usecase.QuotaUseCase
	StatsUC        *usecase.StatsUseCase
	SubscriptionUC *usecase.SubscriptionUseCase
	JWT            JWTConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Validación de licencia (público: es la puerta de entrada)
	licenseHandler := NewLicenseHandler(deps.LicenseUC, deps.JWT)
	api.Post("/license/validate", licenseHandler.Validate)

	// Catálogo de planes (público: el alta necesita elegir plan)
	subscriptionHandler := NewSubscriptionHandler(deps.SubscriptionUC)
	api.Get("/subscriptions", subscriptionHandler.List)

	// Ciclo de vida del negocio (lo consume el panel de administración)
	businessHandler := NewBusinessHandler(deps.BusinessUC)
	businesses := api.Group("/businesses")
	businesses.Post("/", businessHandler.Create)
	businesses.Get("/:id/subscription", businessHandler.GetSubscriptionDetails)
	businesses.Put("/:id/subscription", businessHandler.UpdateSubscription)
	businesses.Get("/:id/branches", businessHandler.GetBranches)
	businesses.Post("/:id/branches", businessHandler.CreateBranch)

	// Rutas del POS autenticado por sesión de licencia
	session := api.Group("/", LicenseMiddleware(deps.JWT.Secret))
	quotaHandler := NewQuotaHandler(deps.QuotaUC)
	session.Get("/quota/users", quotaHandler.CheckUsers)
	session.Get("/quota/branches", quotaHandler.CheckBranches)
	statsHandler := NewStatsHandler(deps.StatsUC)
	session.Get("/stats", statsHandler.GetStats)
}

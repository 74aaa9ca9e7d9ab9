package enrichment

import (
	"go-contacthub/internal/common/api"
	"go-contacthub/internal/config"
	"go-contacthub/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type EnrichmentApi struct {
	controller *EnrichmentController
	config     *config.Config
}

func NewEnrichmentApi(controller *EnrichmentController, config *config.Config) api.Route {
	return &EnrichmentApi{
		controller: controller,
		config:     config,
	}
}

// Setup registers all enrichment routes
func (h *EnrichmentApi) Setup(app *fiber.App) {
	group := app.Group("/api/enrichment", middleware.AuthMiddleware(h.config.SkipAuth))

	group.Get("/profiles", h.controller.ListProfiles)
	group.Get("/profiles/:id/insights", h.controller.GetInsights)
	group.Get("/profiles/:id/interactions", h.controller.GetInteractions)
	group.Get("/actions", h.controller.GetRecommendedActions)
}

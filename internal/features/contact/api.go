package contact

import (
	"go-contacthub/internal/common/api"
	"go-contacthub/internal/config"
	"go-contacthub/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ContactApi struct {
	controller *ContactController
	config     *config.Config
}

func NewContactApi(controller *ContactController, config *config.Config) api.Route {
	return &ContactApi{
		controller: controller,
		config:     config,
	}
}

// Setup registers all contact routes
func (h *ContactApi) Setup(app *fiber.App) {
	contactGroup := app.Group("/api/contacts", middleware.AuthMiddleware(h.config.SkipAuth))

	contactGroup.Get("/", h.controller.ListContacts)
	contactGroup.Get("/count", h.controller.CountContacts)
	contactGroup.Get("/types", h.controller.ListOriginCounts)
}

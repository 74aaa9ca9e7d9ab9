package gsync

import (
	"go-contacthub/internal/common/api"
	"go-contacthub/internal/config"
	"go-contacthub/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type SyncApi struct {
	controller *SyncController
	config     *config.Config
}

func NewSyncApi(controller *SyncController, config *config.Config) api.Route {
	return &SyncApi{
		controller: controller,
		config:     config,
	}
}

// Setup registers all sync routes
func (h *SyncApi) Setup(app *fiber.App) {
	syncGroup := app.Group("/api/sync", middleware.AuthMiddleware(h.config.SkipAuth))

	syncGroup.Get("/authorize-url", h.controller.GetAuthorizeURL)
	syncGroup.Post("/trigger", h.controller.TriggerSync)
	syncGroup.Get("/preview", h.controller.PreviewContacts)
	syncGroup.Post("/import-selected", h.controller.ImportSelected)
	syncGroup.Post("/push", h.controller.PushContacts)
	syncGroup.Get("/auto", h.controller.GetAutoSync)
	syncGroup.Put("/auto", h.controller.UpdateAutoSync)
	syncGroup.Get("/logs", h.controller.ListLogs)
	syncGroup.Get("/:id/status", h.controller.GetSyncStatus)
	syncGroup.Post("/:id/wait", h.controller.WaitForSync)
}

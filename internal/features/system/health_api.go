package system

import (
	"go-contacthub/internal/common/api"
	"go-contacthub/internal/database"

	"github.com/gofiber/fiber/v2"
)

type HealthApi struct {
	mongodb  *database.MongodbDB
	originDB *database.OriginDB
	hub      *ProgressHub
}

func NewHealthApi(mongodb *database.MongodbDB, originDB *database.OriginDB, hub *ProgressHub) api.Route {
	return &HealthApi{
		mongodb:  mongodb,
		originDB: originDB,
		hub:      hub,
	}
}

func (h *HealthApi) Setup(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		originStatus := "ok"
		if err := h.originDB.DB.PingContext(c.Context()); err != nil {
			originStatus = "unreachable"
		}

		mongoStatus := "ok"
		if err := h.mongodb.DB.Client().Ping(c.Context(), nil); err != nil {
			mongoStatus = "unreachable"
		}

		status := fiber.StatusOK
		if originStatus != "ok" || mongoStatus != "ok" {
			status = fiber.StatusServiceUnavailable
		}

		return c.Status(status).JSON(fiber.Map{
			"status":            "up",
			"origin_db":         originStatus,
			"operational_db":    mongoStatus,
			"websocket_clients": h.hub.ClientCount(),
		})
	})
}

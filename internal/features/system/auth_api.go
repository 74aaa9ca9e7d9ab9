package system

import (
	"go-contacthub/internal/common/api"
	"go-contacthub/internal/config"
	"go-contacthub/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthApi struct {
	cfg *config.Config
}

func NewAuthApi(cfg *config.Config) api.Route {
	return &AuthApi{cfg: cfg}
}

type devTokenRequest struct {
	UserID      string `json:"user_id"`
	WorkspaceID string `json:"workspace_id"`
}

// Setup registers a token mint endpoint for local development. It is only
// available when auth is disabled, so a deployed instance never exposes it.
func (a *AuthApi) Setup(app *fiber.App) {
	if !a.cfg.SkipAuth {
		return
	}

	app.Post("/api/auth/dev-token", func(c *fiber.Ctx) error {
		var req devTokenRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "invalid request body",
				})
			}
		}

		if req.UserID == "" {
			req.UserID = "dev-admin-id"
		}
		if req.WorkspaceID == "" {
			req.WorkspaceID = "dev-workspace"
		}

		token, err := utils.GenerateToken(req.UserID, req.WorkspaceID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to generate token",
			})
		}

		return c.JSON(fiber.Map{
			"token":        token,
			"user_id":      req.UserID,
			"workspace_id": req.WorkspaceID,
		})
	})
}

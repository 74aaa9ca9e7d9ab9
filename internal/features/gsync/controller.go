package gsync

import (
	"errors"

	"go-contacthub/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type SyncController struct {
	Service   SyncService
	Scheduler *AutoSyncScheduler
}

func NewSyncController(service SyncService, scheduler *AutoSyncScheduler) *SyncController {
	return &SyncController{
		Service:   service,
		Scheduler: scheduler,
	}
}

// workspaceID resolves the workspace from the explicit header first, then the
// authenticated claims.
func workspaceID(c *fiber.Ctx) string {
	if id := c.Get("X-Workspace-Id"); id != "" {
		return id
	}
	if claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims); ok {
		return claims.WorkspaceID
	}
	return ""
}

// respondProviderError maps a provider failure onto the HTTP surface. An
// auth-required failure carries the re-authorization URL so the client can
// send the user straight back through the OAuth flow.
func (ctrl *SyncController) respondProviderError(c *fiber.Ctx, err error) error {
	if IsAuthRequired(err) {
		reauthorizeURL, urlErr := ctrl.Service.AuthorizeURL(c.Context(), workspaceID(c))
		body := fiber.Map{
			"error": "google authorization required",
			"code":  string(KindAuthRequired),
		}
		if urlErr == nil && reauthorizeURL != "" {
			body["reauthorize_url"] = reauthorizeURL
		}
		return c.Status(fiber.StatusUnauthorized).JSON(body)
	}

	if errors.Is(err, ErrPollTimeout) {
		return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var pe *ProviderError
	if errors.As(err, &pe) {
		status := fiber.StatusBadGateway
		if pe.Kind == KindInvalid {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{
			"error": pe.Message,
			"code":  string(pe.Kind),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// GetAuthorizeURL godoc
func (ctrl *SyncController) GetAuthorizeURL(c *fiber.Ctx) error {
	authURL, err := ctrl.Service.AuthorizeURL(c.Context(), workspaceID(c))
	if err != nil {
		return ctrl.respondProviderError(c, err)
	}

	return c.JSON(fiber.Map{
		"url": authURL,
	})
}

// TriggerSync godoc
func (ctrl *SyncController) TriggerSync(c *fiber.Ctx) error {
	var req TriggerRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.WorkspaceID == "" {
		req.WorkspaceID = workspaceID(c)
	}

	job, err := ctrl.Service.TriggerSync(c.Context(), req)
	if err != nil {
		return ctrl.respondProviderError(c, err)
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"data": job,
	})
}

// GetSyncStatus godoc
func (ctrl *SyncController) GetSyncStatus(c *fiber.Ctx) error {
	job, err := ctrl.Service.GetStatus(c.Context(), c.Params("id"))
	if err != nil {
		return ctrl.respondProviderError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": job,
	})
}

// WaitForSync blocks until the sync reaches a terminal status or the poll
// budget runs out.
func (ctrl *SyncController) WaitForSync(c *fiber.Ctx) error {
	job, err := ctrl.Service.WaitForCompletion(c.Context(), c.Params("id"))
	if err != nil {
		return ctrl.respondProviderError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": job,
	})
}

// PreviewContacts godoc
func (ctrl *SyncController) PreviewContacts(c *fiber.Ctx) error {
	candidates, err := ctrl.Service.PreviewContacts(c.Context(), workspaceID(c))
	if err != nil {
		return ctrl.respondProviderError(c, err)
	}

	return c.JSON(fiber.Map{
		"data":  candidates,
		"count": len(candidates),
	})
}

// ImportSelected godoc
func (ctrl *SyncController) ImportSelected(c *fiber.Ctx) error {
	var req struct {
		SelectedIDs []string `json:"selected_ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if len(req.SelectedIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "selected_ids is required",
		})
	}

	result, err := ctrl.Service.ImportSelected(c.Context(), workspaceID(c), req.SelectedIDs)
	if err != nil {
		return ctrl.respondProviderError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": result,
	})
}

// PushContacts godoc
func (ctrl *SyncController) PushContacts(c *fiber.Ctx) error {
	result, err := ctrl.Service.PushToGoogle(c.Context(), workspaceID(c))
	if err != nil {
		return ctrl.respondProviderError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": result,
	})
}

// GetAutoSync godoc
func (ctrl *SyncController) GetAutoSync(c *fiber.Ctx) error {
	cfg, err := ctrl.Service.GetAutoSync(c.Context(), workspaceID(c))
	if err != nil {
		return ctrl.respondProviderError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": cfg,
	})
}

// UpdateAutoSync expects the full configuration triple on every call.
func (ctrl *SyncController) UpdateAutoSync(c *fiber.Ctx) error {
	var cfg AutoSyncConfig
	if err := c.BodyParser(&cfg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	wsID := workspaceID(c)
	updated, err := ctrl.Service.UpdateAutoSync(c.Context(), wsID, cfg)
	if err != nil {
		return ctrl.respondProviderError(c, err)
	}

	if err := ctrl.Scheduler.Apply(wsID, updated.Enabled, updated.IntervalHours); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"data": updated,
	})
}

// ListLogs godoc
func (ctrl *SyncController) ListLogs(c *fiber.Ctx) error {
	limit := int64(c.QueryInt("limit", 20))

	logs, err := ctrl.Service.ListLogs(c.Context(), workspaceID(c), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"data":  logs,
		"count": len(logs),
	})
}

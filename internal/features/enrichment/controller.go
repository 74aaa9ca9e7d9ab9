package enrichment

import (
	"github.com/gofiber/fiber/v2"
)

type EnrichmentController struct {
	Service EnrichmentService
}

func NewEnrichmentController(service EnrichmentService) *EnrichmentController {
	return &EnrichmentController{
		Service: service,
	}
}

// ListProfiles godoc
func (ctrl *EnrichmentController) ListProfiles(c *fiber.Ctx) error {
	opts := FetchOptions{
		Limit:        c.QueryInt("limit", 100),
		Offset:       c.QueryInt("offset", 0),
		IncludeScore: c.QueryBool("include_score", true),
		IncludeTrend: c.QueryBool("include_trend", true),
	}

	profiles, fallback, err := ctrl.Service.ListProfiles(c.Context(), opts)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"data":     profiles,
		"fallback": fallback,
	})
}

// GetInsights godoc
func (ctrl *EnrichmentController) GetInsights(c *fiber.Ctx) error {
	profileID := c.Params("id")

	insights, err := ctrl.Service.GetInsights(c.Context(), profileID)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if insights == nil {
		// No insights generated yet; not an error.
		return c.JSON(fiber.Map{"data": nil})
	}

	return c.JSON(fiber.Map{"data": insights})
}

// GetInteractions godoc
func (ctrl *EnrichmentController) GetInteractions(c *fiber.Ctx) error {
	profileID := c.Params("id")
	limit := c.QueryInt("limit", 10)
	days := c.QueryInt("days", 90)

	interactions, err := ctrl.Service.GetInteractions(c.Context(), profileID, limit, days)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"data": interactions})
}

// GetRecommendedActions godoc
func (ctrl *EnrichmentController) GetRecommendedActions(c *fiber.Ctx) error {
	actions, fallback, err := ctrl.Service.GetRecommendedActions(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"data":     actions,
		"fallback": fallback,
	})
}

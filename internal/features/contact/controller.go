package contact

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// Enricher overlays relationship intelligence onto a contact list. Satisfied
// by the enrichment service; kept as a local interface so the packages don't
// import each other.
type Enricher interface {
	Overlay(ctx context.Context, contacts []UnifiedContact) []UnifiedContact
}

type ContactController struct {
	Service  ContactService
	Enricher Enricher
}

func NewContactController(service ContactService, enricher Enricher) *ContactController {
	return &ContactController{
		Service:  service,
		Enricher: enricher,
	}
}

// ListContacts godoc
func (ctrl *ContactController) ListContacts(c *fiber.Ctx) error {
	originType := c.Query("type", OriginAll)

	contacts, err := ctrl.Service.GetByType(c.Context(), originType)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if c.QueryBool("enrich", false) {
		contacts = ctrl.Enricher.Overlay(c.Context(), contacts)
	}

	return c.JSON(fiber.Map{
		"data":  contacts,
		"count": len(contacts),
	})
}

// CountContacts godoc
func (ctrl *ContactController) CountContacts(c *fiber.Ctx) error {
	originType := c.Query("type", OriginAll)

	count, err := ctrl.Service.GetCountByType(c.Context(), originType)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"count": count,
	})
}

// ListOriginCounts godoc
func (ctrl *ContactController) ListOriginCounts(c *fiber.Ctx) error {
	counts, err := ctrl.Service.CountsByOrigin(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"data": counts,
	})
}

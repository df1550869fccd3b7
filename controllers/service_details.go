package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kunalsharma05/garagehub/models"
	"github.com/kunalsharma05/garagehub/services"
	"github.com/kunalsharma05/garagehub/utils"
)

type ServiceDetailsController struct {
	timeline *services.TimelineService
}

func NewServiceDetailsController(timeline *services.TimelineService) *ServiceDetailsController {
	return &ServiceDetailsController{timeline: timeline}
}

// GetByUsername handles GET /api/services/:username — the customer's service
// progress view, derived from appointments when nothing is persisted yet.
func (ctl *ServiceDetailsController) GetByUsername(c *fiber.Ctx) error {
	details, err := ctl.timeline.GetServiceTimeline(c.Context(), c.Params("username"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(details)
}

// Create handles POST /api/services/create
func (ctl *ServiceDetailsController) Create(c *fiber.Ctx) error {
	var details models.ServiceDetails
	if err := c.BodyParser(&details); err != nil {
		return utils.SendError(c, utils.InvalidInputf("cannot parse request body"))
	}
	saved, err := ctl.timeline.Save(c.Context(), &details)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kunalsharma05/garagehub/models"
	"github.com/kunalsharma05/garagehub/repository"
	"github.com/kunalsharma05/garagehub/utils"
)

type FeedbackController struct {
	feedback repository.FeedbackRepository
}

func NewFeedbackController(feedback repository.FeedbackRepository) *FeedbackController {
	return &FeedbackController{feedback: feedback}
}

// Create handles POST /api/feedback
func (ctl *FeedbackController) Create(c *fiber.Ctx) error {
	var feedback models.Feedback
	if err := c.BodyParser(&feedback); err != nil {
		return utils.SendError(c, utils.InvalidInputf("cannot parse request body"))
	}
	if feedback.Feedback == "" {
		return utils.SendError(c, utils.InvalidInputf("feedback text is required"))
	}
	if err := ctl.feedback.Create(c.Context(), &feedback); err != nil {
		return utils.SendError(c, utils.Internal("failed to save feedback", err))
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Feedback submitted successfully"})
}

// GetAll handles GET /api/feedback/all
func (ctl *FeedbackController) GetAll(c *fiber.Ctx) error {
	feedback, err := ctl.feedback.FindAll(c.Context())
	if err != nil {
		return utils.SendError(c, utils.Internal("failed to fetch feedback", err))
	}
	return c.JSON(feedback)
}
